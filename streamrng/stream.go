// Package streamrng implements the deterministic RNG discipline described
// in spec §3.4/§C9: the mechanic core never touches an ambient random
// source. A Stream is a seekable generator that yields a value for a given
// set of integer indices, deterministically from a seed — replay requires
// recording only the seed, since (seed, indices) -> value is a pure
// function.
//
// Draws for the uniform leg use stdlib math/rand seeded per-index (the
// teacher's own randomvariate package exposes named distributions only, not
// a seedable uniform primitive); Poisson draws for transmission-size-style
// strategies go through randomvariate, exactly as the teacher's
// transmission_model.go poissonTransmitter does.
package streamrng

import (
	"math/rand"

	rv "github.com/kentwait/randomvariate"
)

// Stream is a seekable deterministic draw source. Uniform is pure given
// (seed, tick, subjectID, edgeID): two Streams built from the same seed
// return identical values for identical index tuples.
type Stream struct {
	seed int64
}

// New returns a Stream rooted at seed.
func New(seed int64) *Stream {
	return &Stream{seed: seed}
}

// Seed returns the stream's root seed, the only state a host needs to
// record for replay.
func (s *Stream) Seed() int64 { return s.seed }

// index folds the draw coordinates into a single per-draw seed. It is not
// cryptographic; it only needs to scatter distinct (tick, subjectID,
// edgeID) tuples across the generator's state space deterministically.
func (s *Stream) index(tick uint64, subjectID, edgeID string) int64 {
	h := uint64(s.seed)
	h = h*1099511628211 ^ tick
	for _, c := range subjectID {
		h = h*1099511628211 ^ uint64(c)
	}
	h = h*1099511628211 ^ 0x9e3779b97f4a7c15
	for _, c := range edgeID {
		h = h*1099511628211 ^ uint64(c)
	}
	return int64(h)
}

// Uniform returns a deterministic draw in [0, 1) for the given
// (tick, subjectID, edgeID) coordinates. subjectID is typically a
// contagion or entity id; edgeID may be empty when the draw is not
// edge-scoped (e.g. a per-node infection trigger roll, spec §4.4 step 3).
func (s *Stream) Uniform(tick uint64, subjectID, edgeID string) float64 {
	src := rand.New(rand.NewSource(s.index(tick, subjectID, edgeID)))
	return src.Float64()
}

// Poisson returns a Poisson(lambda) draw for the given coordinates, used by
// transmission-size-style strategies (grounded on the teacher's
// poissonTransmitter.TransmissionSize, which calls rv.Poisson(s.size)
// against the package's ambient generator). randomvariate exposes named
// distributions against its own internal generator rather than a seedable
// handle, so determinism is obtained the same way the teacher gets
// reproducible runs: reseed math/rand's global source from the draw's
// index immediately before calling into randomvariate. Callers that need
// Poisson draws on a hot concurrent path should serialize them the way the
// teacher's single-threaded generation loop does.
func (s *Stream) Poisson(tick uint64, subjectID, edgeID string, lambda float64) int {
	rand.Seed(s.index(tick, subjectID, edgeID))
	return rv.Poisson(lambda)
}

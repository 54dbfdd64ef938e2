package mechanic

// ExecutionHint is a compile-time tag describing a mechanic's scheduling
// preference to a host scheduler. It carries no runtime data; hosts type
// switch on it (or, more commonly, inspect it via the Kind method) when
// deciding how to batch Step calls across entities.
type ExecutionHint interface {
	Kind() ExecutionKind
}

// ExecutionKind enumerates the three scheduling preferences a mechanic can
// declare.
type ExecutionKind int

const (
	// KindParallelSafe marks a mechanic whose Step calls on disjoint State
	// instances with disjoint Inputs may run concurrently with no
	// synchronization; two concurrent calls produce results equivalent to
	// any sequential interleaving.
	KindParallelSafe ExecutionKind = iota
	// KindSequentialAfter marks a mechanic that must run after some named
	// predecessor mechanic has completed for the same tick.
	KindSequentialAfter
	// KindTransactional marks a mechanic that reads snapshots of multiple
	// entities at once; the host should hold a lock spanning the step.
	KindTransactional
)

// ParallelSafe is the execution hint for mechanics with no cross-entity
// reads: any two Step calls on disjoint state may be scheduled freely.
type ParallelSafe struct{}

// Kind implements ExecutionHint.
func (ParallelSafe) Kind() ExecutionKind { return KindParallelSafe }

// SequentialAfter is the execution hint for a mechanic that must run after
// the mechanic named by Predecessor has completed for the current tick.
// Predecessor is a free-form name (e.g. a package path or mechanic name);
// the core makes no attempt to validate it, it is advisory to the host.
type SequentialAfter struct {
	Predecessor string
}

// Kind implements ExecutionHint.
func (SequentialAfter) Kind() ExecutionKind { return KindSequentialAfter }

// Transactional is the execution hint for mechanics that read snapshots of
// multiple entities in one step (e.g. contagion, which walks every active
// node of a contagion in a single Step call). Hosts should hold a lock
// spanning the call.
type Transactional struct{}

// Kind implements ExecutionHint.
func (Transactional) Kind() ExecutionKind { return KindTransactional }

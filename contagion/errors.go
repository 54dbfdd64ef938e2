package contagion

// Templated diagnostic message constants, grounded on the teacher's
// errors.go (IntKeyNotFoundError, InvalidFloatParameterError, ...). They
// are message templates, not Go errors: the hot step path never returns an
// error (§4.1, §4.6). No code in this package formats them; Rejected and
// PolicyReturnedInvalid carry structured fields instead of a message.
const (
	unknownNodeError      = "contagion: unknown node id %q"
	unknownEdgeError      = "contagion: unknown edge id %q"
	unknownContagionError = "contagion: unknown contagion id %q"
	policyInvalidError    = "contagion: policy %s.%s returned a non-finite or out-of-range value"
)

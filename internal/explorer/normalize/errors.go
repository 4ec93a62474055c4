package normalize

import "errors"

var (
	// ErrInvalidAmount reports a node value that cannot be represented in smallest units.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrUnresolvableAddress reports a value-bearing script without an owning address.
	ErrUnresolvableAddress = errors.New("unresolvable address")
	// ErrMissingPrevOutput reports an input spending an output its transaction does not have.
	ErrMissingPrevOutput = errors.New("missing previous output")
	// ErrNegativeFee reports a transaction whose outputs exceed its inputs.
	ErrNegativeFee = errors.New("negative fee")
)

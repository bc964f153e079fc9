package lattice

import "errors"

var (
	// ErrConfiguration indicates construction parameters that cannot describe a valid lattice.
	ErrConfiguration = errors.New("lattice: invalid configuration")
	// ErrInvariantViolation indicates an attempted mutation that would corrupt occupancy.
	ErrInvariantViolation = errors.New("lattice: invariant violation")
)

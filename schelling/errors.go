// SPDX-License-Identifier: MIT
// Package: schelling
//
// errors.go: sentinel errors for the engine.
//
// Error policy:
//   • Callers branch with errors.Is; messages are not part of the contract.
//   • Configuration problems surface from New or at the start of Run, before
//     any state is touched.
//   • Invariant violations are returned, never panicked, and leave the Model
//     in a terminal failed state.

package schelling

import (
	"errors"

	"github.com/katalvlaran/schelling/lattice"
)

// ErrConfiguration indicates invalid construction or run parameters:
// non-positive sizes, population above capacity, threshold count different
// from the number of types, thresholds outside [0,1], maxIter or layers < 1.
// It is the same value as lattice.ErrConfiguration.
var ErrConfiguration = lattice.ErrConfiguration

// ErrInvariantViolation indicates the engine detected corrupted state, such as
// an empty-cell pool whose size drifted or a move onto an occupied cell.
// It is the same value as lattice.ErrInvariantViolation.
var ErrInvariantViolation = lattice.ErrInvariantViolation

// ErrAlreadyRun is returned by Run on a Model that has already run.
var ErrAlreadyRun = errors.New("schelling: model has already run")

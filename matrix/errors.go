// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public accessors return these sentinels (wrapped with call-site
// context) and tests MUST check them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("ctx: %w", ErrX)
// so callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape (construction) -> column index -> row index -> dimension mismatch.

var (
	// ErrOutOfRange indicates that an index (row or column) or a requested
	// dimension is outside its valid bounds. It is the single "range error"
	// kind of the package: a contract violation by the caller.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// It wraps ErrOutOfRange, so errors.Is(err, ErrOutOfRange) also holds.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrOutOfRange)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. left.Cols() != right.Rows(), or a result of the wrong shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidRange is returned by generators when min > max.
	ErrInvalidRange = errors.New("matrix: invalid value range")

	// ErrNilSource is returned by generators when no random source is supplied.
	ErrNilSource = errors.New("matrix: nil random source")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

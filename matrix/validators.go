// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for multiplication shape checks.
//   - Keep multipliers minimal by delegating nil/shape checks here.
//   - Return plain sentinel errors wrapped with the validator tag.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// VerifyMultiplication reports the shape of left×right.
// ok is true only when left.Cols() == right.Rows(); then rows = left.Rows()
// and cols = right.Cols(). On failure it returns (0, 0, false).
// Assumes non-nil operands; use ValidateMulCompatible when nil is possible.
// Complexity: O(1).
func VerifyMultiplication(left, right *Dense) (rows, cols int, ok bool) {
	if left.c != right.r {
		return 0, 0, false
	}

	return left.r, right.c, true
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if _, _, ok := VerifyMultiplication(a, b); !ok {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateProductShape is the full pre-multiplication check: left and right
// are compatible and result already has shape left.Rows()×right.Cols().
// Multipliers call it before touching any storage.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateProductShape(left, right, result *Dense) error {
	if err := ValidateMulCompatible(left, right); err != nil {
		return validatorErrorf("ValidateProductShape", err)
	}
	if err := ValidateNotNil(result); err != nil {
		return validatorErrorf("ValidateProductShape", err)
	}
	rows, cols, _ := VerifyMultiplication(left, right)
	if result.r != rows {
		return validatorErrorf("ValidateProductShape: Rows", ErrDimensionMismatch)
	}
	if result.c != cols {
		return validatorErrorf("ValidateProductShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// SPDX-License-Identifier: MIT

package multiply

import (
	"fmt"

	"github.com/katalvlaran/matmul/matrix"
)

// operands caches row views of both inputs so the inner loop indexes plain
// slices. Views are read-only for the whole call and safe to share across
// workers.
type operands struct {
	left  [][]int32 // left.Rows() views of length n
	right [][]int32 // n views of length right.Cols()
}

// newOperands collects row views. Callers validate shapes first; Row cannot
// fail for indices in [0, Rows()).
func newOperands(left, right *matrix.Dense) operands {
	return operands{left: rowViews(left), right: rowViews(right)}
}

func rowViews(m *matrix.Dense) [][]int32 {
	views := make([][]int32, m.Rows())
	for i := range views {
		views[i], _ = m.Row(i) // index in range by construction
	}

	return views
}

// dot returns Σ_k left[row,k]·right[k,col] with int32 wraparound.
func (o operands) dot(row, col int) int32 {
	var acc int32
	for k, lv := range o.left[row] {
		acc += lv * o.right[k][col]
	}

	return acc
}

// fillRow overwrites out (the result row view for row) cell by cell.
func (o operands) fillRow(row int, out []int32) {
	for col := range out {
		out[col] = o.dot(row, col)
	}
}

// ScalarProduct returns the value one result cell receives:
// Σ_k left[row,k]·right[k,col], accumulated in int32 (wraparound on overflow).
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch for incompatible operands.
//   - matrix.ErrOutOfRange when row or col is outside the product shape.
func ScalarProduct(left, right *matrix.Dense, row, col int) (int32, error) {
	if err := matrix.ValidateMulCompatible(left, right); err != nil {
		return 0, fmt.Errorf("ScalarProduct: %w", err)
	}
	lrow, err := left.Row(row)
	if err != nil {
		return 0, fmt.Errorf("ScalarProduct: %w", err)
	}
	if col < 0 || col >= right.Cols() {
		return 0, fmt.Errorf("ScalarProduct(%d,%d): %w", row, col, matrix.ErrOutOfRange)
	}

	var acc int32
	for k, lv := range lrow {
		rv, _ := right.At(k, col) // k < left.Cols() == right.Rows()
		acc += lv * rv
	}

	return acc, nil
}

// SPDX-License-Identifier: MIT

package multiply

import "github.com/katalvlaran/matmul/matrix"

// Serial is the single-goroutine reference multiplier. The zero value is ready to use.
type Serial struct{}

// Multiply stores left×right into result.
// Implementation:
//   - Stage 1: ValidateProductShape; on failure return false before any write.
//   - Stage 2: for r in [0,rows), c in [0,cols): result[r,c] = dot(r,c).
//
// Determinism:
//   - Fixed r→c→k loop order; int32 accumulation.
//
// Complexity:
//   - Time O(r·n·c), Space O(r+n) for row views.
func (Serial) Multiply(left, right, result *matrix.Dense) bool {
	if err := matrix.ValidateProductShape(left, right, result); err != nil {
		return false
	}

	ops := newOperands(left, right)
	for r := range ops.left {
		out, _ := result.Row(r) // result.Rows() == left.Rows() after validation
		ops.fillRow(r, out)
	}

	return true
}

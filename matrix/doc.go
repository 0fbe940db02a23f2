// Package matrix offers a dense, row-major matrix of int32 values and the
// helpers integer matrix multiplication is built on.
//
// The matrix package provides:
//
//   - Dense: fixed-shape storage with bounds-checked Row, At, Set and Ref.
//     Row returns a view into the owning matrix (writes alias, never copy).
//   - VerifyMultiplication / ValidateProductShape: the shape-compatibility
//     check shared by every multiplier (left.Cols() == right.Rows()).
//   - GenerateMatrix / GenerateFull / Identity: deterministic fixtures driven
//     by a caller-supplied math/rand/v2 source.
//
// Index and dimension violations are reported as ErrOutOfRange (wrapped with
// the method name and coordinates). Arithmetic on stored values uses native
// int32 wraparound; there is no overflow checking.
//
// See the multiply package for the serial and parallel algorithms.
package matrix

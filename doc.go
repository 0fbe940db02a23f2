// Package matmul multiplies dense int32 matrices with a serial or a parallel
// algorithm that are guaranteed to produce identical results.
//
// What is in matmul?
//
//	• matrix/     Dense row-major storage, bounds-checked Row/At/Set/Ref,
//	              the multiplication shape check and seeded generators
//	• multiply/   the Multiplier interface with Serial and Parallel
//	              implementations (mutex-guarded row queue + worker pool)
//	• cmd/matmul: CLI driver: run, verify, info, version
//
// Quick example:
//
//	left, _ := matrix.GenerateFull(128, 64, matrix.NewSource(42))
//	right, _ := matrix.Identity(64, 64)
//	result := matrix.MustDense(128, 64)
//	ok := multiply.NewParallel().Multiply(left, right, result) // result == left
//
// Shape mismatches are reported by Multiply returning false; index and
// dimension violations surface as matrix.ErrOutOfRange.
//
//	go get github.com/katalvlaran/matmul
package matmul

// SPDX-License-Identifier: MIT
// Package matrix: fixture generators.
//
// Purpose:
//   - Build random and identity matrices for tests, benchmarks and the CLI.
//   - Keep randomness explicit: every random generator consumes a caller-owned
//     *rand.Rand, so a fixed seed and a fixed call order reproduce the data.
//
// Determinism & Policy:
//   - Elements are drawn in row-major order, one draw per element.
//   - Bounds are inclusive on both ends; the full int32 range is allowed.

package matrix

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	// DefaultMin is the lower bound GenerateFull uses.
	DefaultMin int32 = math.MinInt32
	// DefaultMax is the upper bound GenerateFull uses.
	DefaultMax int32 = math.MaxInt32
)

// pcgStream is the fixed PCG increment paired with the caller's seed.
const pcgStream uint64 = 0x9e3779b97f4a7c15

// NewSource returns a deterministic PCG-backed generator for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgStream))
}

// GenerateMatrix returns a rows×cols matrix whose elements are independent,
// uniform draws from [min, max] (inclusive) taken from rng.
// Implementation:
//   - Stage 1: validate rng != nil and min ≤ max; allocate via NewDense.
//   - Stage 2: fill row-major with min + Int64N(max-min+1); the span is
//     computed in int64 so the full int32 range (2^32 values) cannot overflow.
//
// Errors:
//   - ErrNilSource, ErrInvalidRange, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func GenerateMatrix(rows, cols int, rng *rand.Rand, min, max int32) (*Dense, error) {
	if rng == nil {
		return nil, fmt.Errorf("GenerateMatrix: %w", ErrNilSource)
	}
	if min > max {
		return nil, fmt.Errorf("GenerateMatrix(min=%d,max=%d): %w", min, max, ErrInvalidRange)
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("GenerateMatrix: %w", err)
	}

	lo := int64(min)
	span := int64(max) - lo + 1
	for i := range m.data {
		m.data[i] = int32(lo + rng.Int64N(span))
	}

	return m, nil
}

// GenerateFull is GenerateMatrix over the whole int32 range.
func GenerateFull(rows, cols int, rng *rand.Rand) (*Dense, error) {
	return GenerateMatrix(rows, cols, rng, DefaultMin, DefaultMax)
}

// Identity returns a rows×cols matrix with 1 at (i,i) for i < min(rows, cols)
// and 0 elsewhere. Non-square shapes are allowed.
//
// Errors:
//   - ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c) zeroing + O(min(r,c)) writes.
func Identity(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	for i := range min(rows, cols) {
		m.data[i*cols+i] = 1
	}

	return m, nil
}

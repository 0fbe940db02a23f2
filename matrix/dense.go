// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major int32 buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: Row/At/Set/Ref return errors instead of panicking.
//   - Expose rows as no-copy views so row-scan kernels avoid per-element bounds checks.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; Row/At/Set/Ref: O(1); Clone/Equal: O(r*c).

package matrix

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxRow = "Row" // method tag used in error wrappers
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRef = "Ref" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of int32 values.
//   - r,c hold dimensions (rows, cols); both are > 0 and never change.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int     // row and column counts
	data []int32 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 and cols>0 independently; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (matches ErrOutOfRange via errors.Is).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): rows: %w", rows, cols, ErrInvalidDimensions)
	}
	if cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): cols: %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]int32, rows*cols)}, nil
}

// MustDense is NewDense that panics on invalid dimensions.
// Intended for fixtures whose shape is known to be valid.
func MustDense(rows, cols int) *Dense {
	m, err := NewDense(rows, cols)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Row returns row i as a view into the matrix storage.
// Implementation:
//   - Stage 1: validate 0 ≤ i < Rows().
//   - Stage 2: slice data[i*c : (i+1)*c] with capacity capped at c.
//
// Behavior highlights:
//   - Writes through the returned slice are writes to the matrix (aliasing).
//   - The capacity cap makes append reallocate instead of spilling into row i+1.
//
// Errors:
//   - ErrOutOfRange when i is negative or ≥ Rows().
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Row(i int) ([]int32, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}

// offset validates the column, then the row, and returns the flat offset.
// The column is checked first; the row check is the same one Row applies.
func (m *Dense) offset(method string, row, col int) (int, error) {
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int32, error) {
	off, err := m.offset(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int32) error {
	off, err := m.offset(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// Ref returns a pointer to the slot at (row, col) so callers can read and
// update a cell through one accessor (e.g. *p += x).
// The pointer aliases matrix storage and stays valid for the matrix lifetime.
// Complexity: O(1).
func (m *Dense) Ref(row, col int) (*int32, error) {
	off, err := m.offset(ctxRef, row, col)
	if err != nil {
		return nil, err
	}

	return &m.data[off], nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	return &Dense{r: m.r, c: m.c, data: slices.Clone(m.data)}
}

// Equal reports whether o has the same shape and elements as m.
// A nil operand is equal only to another nil.
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.r == o.r && m.c == o.c && slices.Equal(m.data, o.data)
}

// RowEqual reports whether row i of m and row i of o hold identical values.
// Errors:
//   - ErrOutOfRange when i is invalid for either matrix.
//
// Complexity: O(c).
func (m *Dense) RowEqual(o *Dense, i int) (bool, error) {
	a, err := m.Row(i)
	if err != nil {
		return false, err
	}
	b, err := o.Row(i)
	if err != nil {
		return false, err
	}

	return slices.Equal(a, b), nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v int32) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// String renders rows as lines with comma-separated values, for diagnostics.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatInt(int64(m.data[base+j]), 10))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

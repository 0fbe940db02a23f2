// SPDX-License-Identifier: MIT

// Package multiply defines the Multiplier capability, the algorithm kinds and
// the functional options of the parallel engine.
package multiply

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/sirupsen/logrus"
)

var (
	// ErrUnknownKind is returned by ParseKind and New for an unsupported algorithm name.
	ErrUnknownKind = errors.New("multiply: unknown multiplier kind")
)

// Multiplier multiplies two matrices into a caller-supplied result.
//
// Multiply returns true when left.Cols() == right.Rows(), result.Rows() ==
// left.Rows() and result.Cols() == right.Cols(); the product is then stored
// in result. Otherwise it returns false and result is left untouched.
type Multiplier interface {
	Multiply(left, right, result *matrix.Dense) bool
}

// Compile-time assertions.
var (
	_ Multiplier = Serial{}
	_ Multiplier = (*Parallel)(nil)
)

// Kind selects a Multiplier implementation.
type Kind int

const (
	// KindSerial selects the single-goroutine algorithm.
	KindSerial Kind = iota
	// KindParallel selects the worker-pool algorithm.
	KindParallel
)

// kind names, shared by String and ParseKind.
const (
	nameSerial   = "serial"
	nameParallel = "parallel"
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindSerial:
		return nameSerial
	case KindParallel:
		return nameParallel
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "serial" / "parallel" (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case nameSerial:
		return KindSerial, nil
	case nameParallel:
		return KindParallel, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
	}
}

// New returns the Multiplier for kind. Options configure the parallel engine
// and are ignored by the serial one.
func New(kind Kind, opts ...Option) (Multiplier, error) {
	switch kind {
	case KindSerial:
		return Serial{}, nil
	case KindParallel:
		return NewParallel(opts...), nil
	default:
		return nil, fmt.Errorf("New(%s): %w", kind, ErrUnknownKind)
	}
}

// ---------- Options ----------

// Option configures the parallel engine.
type Option func(*Options)

// Options holds the effective parallel configuration.
type Options struct {
	// Workers is the pool size; values ≤ 0 mean runtime.GOMAXPROCS(0).
	// The effective count is further clamped to the number of result rows.
	Workers int

	// Logger receives one Debug entry per Multiply call. Defaults to a
	// logger that discards everything.
	Logger logrus.FieldLogger
}

// discardLogger is the zero-configuration logger: library code stays silent
// unless the caller injects a logger.
var discardLogger logrus.FieldLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// WithWorkers sets the worker pool size (≤ 0 restores the default).
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger routes per-call diagnostics to l. A nil l keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{Logger: discardLogger}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

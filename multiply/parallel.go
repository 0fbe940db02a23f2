// SPDX-License-Identifier: MIT

package multiply

import (
	"runtime"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Parallel multiplies with a pool of worker goroutines that share one queue
// of result rows. The zero value uses the defaults; it holds no per-call
// state, so one Parallel may serve concurrent Multiply calls on disjoint
// result matrices.
type Parallel struct {
	opts Options
}

// NewParallel returns a Parallel configured by opts.
func NewParallel(opts ...Option) *Parallel {
	return &Parallel{opts: gatherOptions(opts...)}
}

// Workers reports the pool size a call producing rows result rows would use.
func (p *Parallel) Workers(rows int) int {
	n := p.opts.Workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	return max(1, min(n, rows))
}

func (p *Parallel) logger() logrus.FieldLogger {
	if p.opts.Logger == nil {
		return discardLogger
	}

	return p.opts.Logger
}

// Multiply stores left×right into result using the worker pool.
// Implementation:
//   - Stage 1: ValidateProductShape; on failure return false before any write.
//   - Stage 2: queue one workload per result row, ascending.
//   - Stage 3: start Workers(rows) goroutines; each pops rows until the queue
//     is empty and fills the popped row of result.
//   - Stage 4: wait for every worker, then return true.
//
// Behavior highlights:
//   - Output is bit-identical to Serial (same dot product, int32 wraparound).
//   - Rows are disjoint per worker, so result needs no locking.
//
// Complexity:
//   - Time O(r·n·c / workers) wall clock, Space O(r+n).
func (p *Parallel) Multiply(left, right, result *matrix.Dense) bool {
	log := p.logger()
	if err := matrix.ValidateProductShape(left, right, result); err != nil {
		log.WithError(err).Debug("parallel multiply rejected")
		return false
	}

	ops := newOperands(left, right)
	rows := len(ops.left)
	queue := newRowQueue(rows)
	workers := p.Workers(rows)
	processed := make([]int, workers) // slot i is written only by worker i

	var g errgroup.Group
	for id := range workers {
		g.Go(func() error {
			for {
				w, ok := queue.pop()
				if !ok {
					return nil
				}
				out, _ := result.Row(w.row) // w.row < result.Rows() after validation
				ops.fillRow(w.row, out)
				processed[id]++
			}
		})
	}
	_ = g.Wait() // workers never return an error

	log.WithFields(logrus.Fields{
		"rows":      rows,
		"inner":     left.Cols(),
		"cols":      right.Cols(),
		"workers":   workers,
		"processed": processed,
	}).Debug("parallel multiply done")

	return true
}

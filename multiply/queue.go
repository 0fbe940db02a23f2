// SPDX-License-Identifier: MIT

package multiply

import "sync"

// workload is one unit of parallel work: the index of a result row.
type workload struct {
	row int
}

// workQueue is a FIFO of pending workloads shared by all workers of one
// Multiply call. pop is the only operation used concurrently.
type workQueue struct {
	mu    sync.Mutex // guards items and head
	items []workload
	head  int // index of the next workload to hand out
}

// newRowQueue returns a queue holding rows 0..rows-1 in ascending order.
func newRowQueue(rows int) *workQueue {
	items := make([]workload, rows)
	for i := range items {
		items[i] = workload{row: i}
	}

	return &workQueue{items: items}
}

// pop removes and returns the next workload. ok is false once the queue is
// drained. Each workload is returned to exactly one caller.
func (q *workQueue) pop() (w workload, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head >= len(q.items) {
		return workload{}, false
	}
	w = q.items[q.head]
	q.head++

	return w, true
}

// remaining reports how many workloads have not been popped yet.
func (q *workQueue) remaining() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items) - q.head
}

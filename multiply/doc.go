// Package multiply implements dense int32 matrix multiplication with a
// serial and a parallel algorithm behind one Multiplier interface.
//
// What:
//
//   - Serial: reference single-goroutine algorithm. For every result cell
//     (r,c) it stores the dot product Σ_k left[r,k]·right[k,c].
//   - Parallel: fills a shared work queue with one workload per result row,
//     starts a fixed pool of workers (default runtime.GOMAXPROCS(0)) that pop
//     rows under a mutex and compute them with the same dot product, and
//     blocks until every worker has returned.
//
// Both variants accumulate in int32, so overflow wraps identically and the
// results are bit-for-bit equal for every compatible input.
//
// Contract:
//
//   - Multiply(left, right, result) returns false, and writes nothing, when
//     left.Cols() != right.Rows() or result is not left.Rows()×right.Cols().
//     A shape mismatch is an ordinary outcome, never a panic.
//   - Callers own all three matrices; multipliers keep no reference to them
//     after Multiply returns and never reallocate them.
//
// Concurrency:
//
//   - The work queue is the only shared mutable state; pop is the single
//     critical section. Each worker writes only the result row it popped and
//     only reads left/right, so the arithmetic needs no locking. The final
//     join makes every write visible to the caller.
//   - There is no cancellation: once the shape check passes the call runs
//     to completion.
//
// Complexity:
//
//   - Time O(r·n·c) for both variants, Memory O(r + n) extra (row views and
//     the queue).
package multiply

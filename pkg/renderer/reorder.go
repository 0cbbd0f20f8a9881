package renderer

import (
	"container/heap"
	"fmt"
)

// rowHeap is a min-heap of rows keyed by enumeration index
type rowHeap []Row

func (h rowHeap) Len() int           { return len(h) }
func (h rowHeap) Less(i, j int) bool { return h[i].Index < h[j].Index }
func (h rowHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *rowHeap) Push(x any) {
	*h = append(*h, x.(Row))
}

func (h *rowHeap) Pop() any {
	old := *h
	n := len(old)
	row := old[n-1]
	*h = old[:n-1]
	return row
}

// RowReorderBuffer restores ascending row order from rows that arrive in any order.
// It is not safe for concurrent use; only the consuming goroutine touches it.
type RowReorderBuffer struct {
	next       int
	pending    rowHeap
	buffered   map[int]struct{}
	maxPending int
}

// NewRowReorderBuffer creates an empty buffer expecting row 0 first
func NewRowReorderBuffer() *RowReorderBuffer {
	return &RowReorderBuffer{buffered: make(map[int]struct{})}
}

// Push adds a row and returns every row that is now ready, in ascending order.
// Rows that were already released or are already buffered are rejected.
func (b *RowReorderBuffer) Push(row Row) ([]Row, error) {
	if _, dup := b.buffered[row.Index]; dup || row.Index < b.next {
		return nil, fmt.Errorf("%w: index %d (next expected %d)", ErrDuplicateRow, row.Index, b.next)
	}

	heap.Push(&b.pending, row)
	b.buffered[row.Index] = struct{}{}
	b.maxPending = max(b.maxPending, len(b.pending))

	var ready []Row
	for len(b.pending) > 0 && b.pending[0].Index == b.next {
		r := heap.Pop(&b.pending).(Row)
		delete(b.buffered, r.Index)
		ready = append(ready, r)
		b.next++
	}
	return ready, nil
}

// Next returns the index of the next row to be released
func (b *RowReorderBuffer) Next() int {
	return b.next
}

// Pending returns the number of rows waiting for a predecessor
func (b *RowReorderBuffer) Pending() int {
	return len(b.pending)
}

// MaxPending returns the largest number of rows buffered at once
func (b *RowReorderBuffer) MaxPending() int {
	return b.maxPending
}

// Close verifies that all expected rows were released and nothing is left buffered
func (b *RowReorderBuffer) Close(expected int) error {
	if len(b.pending) > 0 {
		return fmt.Errorf("%w: %d rows buffered, lowest index %d, next expected %d",
			ErrRowsLost, len(b.pending), b.pending[0].Index, b.next)
	}
	if b.next != expected {
		return fmt.Errorf("%w: released %d of %d rows", ErrRowsLost, b.next, expected)
	}
	return nil
}

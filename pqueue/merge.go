package pqueue

import (
	"container/heap"

	"github.com/katalvlaran/zmorton/zstream"
)

// lane is one source heap's current head together with the rest of
// that heap, so the k-way merge can advance whichever lane yielded
// the minimum without touching the others.
type lane[T any] struct {
	head zstream.Pair[T]
	rest Heap[T]
}

// laneHeap implements container/heap.Interface over the current heads
// of several lanes, ordered by ascending Morton code. This is the
// same Len/Less/Swap/Push/Pop shape as the teacher's dijkstra.nodePQ.
type laneHeap[T any] []lane[T]

func (h laneHeap[T]) Len() int { return len(h) }
func (h laneHeap[T]) Less(i, j int) bool {
	return h[i].head.Key.Code < h[j].head.Key.Code
}
func (h laneHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *laneHeap[T]) Push(x any)   { *h = append(*h, x.(lane[T])) }
func (h *laneHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Merge is the k-way generalization of Mix: it interleaves any number
// of heaps whose key ranges may overlap into one ascending sequence,
// without coalescing duplicate keys. Empty heaps are skipped.
// Complexity: O(log k) per pop, where k is the number of still-live
// lanes; O(1) to skip an exhausted or empty input.
func Merge[T any](heaps ...Heap[T]) Heap[T] {
	lh := make(laneHeap[T], 0, len(heaps))
	for _, h := range heaps {
		p, rest, ok := h.Pop()
		if ok {
			lh = append(lh, lane[T]{head: p, rest: rest})
		}
	}
	heap.Init(&lh)
	return mergeFromLanes(lh)
}

func mergeFromLanes[T any](lh laneHeap[T]) Heap[T] {
	// The first Pop advances lh in place; its result is kept so that a
	// repeated Pop of this same Heap value returns the same pair.
	var (
		done bool
		head zstream.Pair[T]
		next Heap[T]
		ok   bool
	)
	var h Heap[T]
	h.pop = func() (zstream.Pair[T], Heap[T], bool) {
		if !done {
			done = true
			if lh.Len() > 0 {
				min := heap.Pop(&lh).(lane[T])
				if p, rest, ok := min.rest.Pop(); ok {
					heap.Push(&lh, lane[T]{head: p, rest: rest})
				}
				head, next, ok = min.head, mergeFromLanes(lh), true
			}
		}
		return head, next, ok
	}
	return h
}

// Package pqueue implements component D: a lazy min-heap merge of
// partial-product streams produced by the recursive multiplication
// kernel in zmat. A Heap is either empty or a head Pair plus a
// closure producing the rest; Mix interleaves two heaps whose key
// ranges may overlap by lane-merging their current heads through a
// container/heap.Interface (the same min-heap discipline the teacher
// uses in its dijkstra package), while Fby concatenates two heaps
// already known to be disjoint and correctly ordered without any
// comparison at all. Drain walks a single Heap to completion, folding
// runs of equal keys with a Ring's Add and dropping runs that sum to
// zero.
package pqueue

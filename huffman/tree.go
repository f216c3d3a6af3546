package huffman

import (
	"container/heap"
	"errors"
)

// ErrEmptyProbabilities is a contract violation: a tree cannot be built from
// zero symbols.
var ErrEmptyProbabilities = errors.New("huffman: no probabilities given")

// node is a binary tree node: a leaf carries a symbol and its insertion
// index (for deterministic code assignment); an internal node carries only
// its two children.
type node struct {
	left, right *node
	symbol      byte
	isLeaf      bool
	index       int // meaningful only when isLeaf
}

// item is a priority-queue entry. seq is assigned in creation order across
// both leaves and internal nodes, and breaks probability ties so that the
// heap's behavior is fully deterministic, matching the tie-break invariant
// the builder must honor to reproduce fixed test scenarios exactly.
type item struct {
	n    *node
	prob float64
	seq  int
}

type priorityQueue []*item

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].prob != pq[j].prob {
		return pq[i].prob < pq[j].prob
	}
	return pq[i].seq < pq[j].seq
}
func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x any)   { *pq = append(*pq, x.(*item)) }
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

// buildTree constructs the Huffman tree for the given per-symbol
// probabilities, in the same order as symbols will be assigned (index i
// corresponds to probabilities[i]). Leaves are extracted two at a time in
// ascending (probability, insertion order) and united under a fresh
// internal node until one node remains.
func buildTree(probabilities []float64) *node {
	if len(probabilities) == 0 {
		panic(ErrEmptyProbabilities)
	}

	seq := 0
	pq := make(priorityQueue, 0, len(probabilities))
	for i, p := range probabilities {
		heap.Push(&pq, &item{n: &node{isLeaf: true, index: i}, prob: p, seq: seq})
		seq++
	}

	if pq.Len() == 1 {
		only := heap.Pop(&pq).(*item).n
		return &node{left: only}
	}

	for pq.Len() > 1 {
		a := heap.Pop(&pq).(*item)
		b := heap.Pop(&pq).(*item)
		merged := &node{left: a.n, right: b.n}
		heap.Push(&pq, &item{n: merged, prob: a.prob + b.prob, seq: seq})
		seq++
	}

	return heap.Pop(&pq).(*item).n
}

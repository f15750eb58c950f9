package search

import "container/heap"

// node is a frontier entry. seq is assigned on first insertion and kept
// across decrease-key so equal scores pop in insertion order.
type node struct {
	cell  int
	score float64
	seq   int
}

// frontier is an indexed min-heap over cell indexes. Each cell appears at
// most once; where[cell] is its heap slot or -1.
type frontier struct {
	nodes []node
	where []int
	next  int
}

func newFrontier(cells int) *frontier {
	f := &frontier{where: make([]int, cells)}
	for i := range f.where {
		f.where[i] = -1
	}
	return f
}

// Len returns the number of items in the heap.
func (f *frontier) Len() int { return len(f.nodes) }

// Less orders by score, then by first insertion.
func (f *frontier) Less(i, j int) bool {
	a, b := f.nodes[i], f.nodes[j]
	if a.score != b.score {
		return a.score < b.score
	}
	return a.seq < b.seq
}

// Swap exchanges two entries and keeps where in sync.
func (f *frontier) Swap(i, j int) {
	f.nodes[i], f.nodes[j] = f.nodes[j], f.nodes[i]
	f.where[f.nodes[i].cell] = i
	f.where[f.nodes[j].cell] = j
}

// Push appends a node; used by container/heap only.
func (f *frontier) Push(x any) {
	n := x.(node)
	f.where[n.cell] = len(f.nodes)
	f.nodes = append(f.nodes, n)
}

// Pop removes the last node; used by container/heap only.
func (f *frontier) Pop() any {
	last := len(f.nodes) - 1
	n := f.nodes[last]
	f.nodes = f.nodes[:last]
	f.where[n.cell] = -1
	return n
}

func (f *frontier) contains(cell int) bool { return f.where[cell] >= 0 }

func (f *frontier) score(cell int) float64 { return f.nodes[f.where[cell]].score }

// add inserts cell with a fresh sequence number.
func (f *frontier) add(cell int, score float64) {
	heap.Push(f, node{cell: cell, score: score, seq: f.next})
	f.next++
}

// lower decreases the score of a queued cell.
func (f *frontier) lower(cell int, score float64) {
	i := f.where[cell]
	f.nodes[i].score = score
	heap.Fix(f, i)
}

// take pops the best cell.
func (f *frontier) take() int {
	return heap.Pop(f).(node).cell
}

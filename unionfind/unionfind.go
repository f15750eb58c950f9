// Package unionfind implements a dense disjoint-set forest over the integers
// 0..n-1 with path compression and union by rank.
//
// Complexity
//
//   - New: O(n).
//   - Find, Union, Connected: amortized O(α(n)).
//
// Elements are plain ints so callers can use a grid's row-major cell index
// directly as the element.
package unionfind

// UnionFind partitions 0..n-1 into disjoint sets.
// The zero value is an empty forest; use New.
type UnionFind struct {
	parent []int
	rank   []uint8
	sets   int
}

// New returns a forest of n singleton sets. n < 0 is treated as 0.
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]uint8, n),
		sets:   n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Sets returns the current number of disjoint sets.
func (uf *UnionFind) Sets() int { return uf.sets }

// Find returns the root of the set containing x.
// Iterative with path halving, so no recursion depth concerns on large grids.
func (uf *UnionFind) Find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// Union merges the sets of x and y and reports whether they were distinct.
func (uf *UnionFind) Union(x, y int) bool {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return false
	}
	switch {
	case uf.rank[rx] < uf.rank[ry]:
		uf.parent[rx] = ry
	case uf.rank[rx] > uf.rank[ry]:
		uf.parent[ry] = rx
	default:
		uf.parent[ry] = rx
		uf.rank[rx]++
	}
	uf.sets--
	return true
}

// Connected reports whether x and y share a root.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// Components groups members by root. Each member list is ascending and the
// outer slice is ordered by its smallest member.
func (uf *UnionFind) Components() [][]int {
	slot := make(map[int]int, uf.sets)
	var out [][]int
	for x := range uf.parent {
		r := uf.Find(x)
		i, ok := slot[r]
		if !ok {
			i = len(out)
			slot[r] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], x)
	}
	return out
}

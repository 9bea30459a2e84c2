// SPDX-License-Identifier: MIT
package chain

// Chain is a mutable mapping from [0,n) to [0,n) where every index
// eventually resolves, via its parent pointers, to a fixpoint — the
// minimum index in its equivalence class. Chain is not safe for concurrent
// use; each rank-descent call owns a private Chain (spec §5).
type Chain struct {
	parent []int
}

// New builds a discrete Chain of length n: every element starts as its own
// class, i.e. Root(i) == i for all i.
//
// Complexity: O(n) time and memory.
func New(n int) *Chain {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &Chain{parent: parent}
}

// Root returns the minimum element of the equivalence class containing i,
// compressing every node visited along the way so it points directly at
// the root. Iterative by construction (no recursion) so deep chains on
// large grids never grow the call stack.
//
// Complexity: amortised ~O(α(n)) per call.
func (c *Chain) Root(i int) int {
	root := i
	for c.parent[root] != root {
		root = c.parent[root]
	}
	// Second pass: compress every node on the path directly to root.
	for c.parent[i] != root {
		c.parent[i], i = root, c.parent[i]
	}
	return root
}

// Link unifies the equivalence classes of a and b. The resulting class's
// root is min(Root(a), Root(b)); a no-op if a and b are already linked.
//
// Complexity: amortised ~O(α(n)) per call.
func (c *Chain) Link(a, b int) {
	x, y := c.Root(a), c.Root(b)
	if x > y {
		x, y = y, x
	}
	if x == y {
		return
	}
	c.parent[y] = x
}

// Len returns the number of elements the Chain was constructed with.
func (c *Chain) Len() int {
	return len(c.parent)
}

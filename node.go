package hbtree

// min returns the leftmost node of n's subtree.
func (n *node) min() *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost node of n's subtree.
func (n *node) max() *node {
	for n.right != nil {
		n = n.right
	}
	return n
}

// next returns the in-order successor, or nil past the maximum. With a
// right child that is its leftmost descendant; otherwise the walk
// climbs until it leaves some subtree through a left-child link.
func (n *node) next() *node {
	if n.right != nil {
		return n.right.min()
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

// prev is the mirror of next.
func (n *node) prev() *node {
	if n.left != nil {
		return n.left.max()
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}

// relink puts repl where n is attached, either the parent's child slot
// or the root.
func (t *tree) relink(n, repl *node) {
	p := n.parent
	if repl != nil {
		repl.parent = p
	}
	switch {
	case p == nil:
		t.root = repl
	case p.left == n:
		p.left = repl
	default:
		p.right = repl
	}
}

// rotateLeft lifts n's right child into n's place:
//
//	  n            p
//	 / \          / \
//	a   p   =>   n   c
//	   / \      / \
//	  b   c    a   b
//
// The balance updates are exact for any integer balances, so the same
// primitive serves single rotations, both halves of a double rotation,
// and both the insertion and deletion retrace. It reports whether the
// subtree height changed, which the deletion retrace consumes to
// decide whether to keep climbing.
func (t *tree) rotateLeft(n *node) bool {
	p := n.right
	t.relink(n, p)

	n.right = p.left
	if n.right != nil {
		n.right.parent = n
	}
	p.left = n
	n.parent = p

	heightChanged := p.balance != 0
	n.balance -= 1 + max(p.balance, 0)
	p.balance -= 1 - min(n.balance, 0)
	t.rotations++
	return heightChanged
}

// rotateRight is the mirror of rotateLeft.
func (t *tree) rotateRight(n *node) bool {
	p := n.left
	t.relink(n, p)

	n.left = p.right
	if n.left != nil {
		n.left.parent = n
	}
	p.right = n
	n.parent = p

	heightChanged := p.balance != 0
	n.balance += 1 - min(p.balance, 0)
	p.balance += 1 + max(n.balance, 0)
	t.rotations++
	return heightChanged
}

// height counts edges on the longest downward path. A lone node has
// height zero. Recursion depth is bounded by the balance invariant.
func (n *node) height() int {
	l, r := 0, 0
	if n.left != nil {
		l = n.left.height() + 1
	}
	if n.right != nil {
		r = n.right.height() + 1
	}
	return max(l, r)
}

// minHeight counts edges on the shortest downward path.
func (n *node) minHeight() int {
	l, r := 0, 0
	if n.left != nil {
		l = n.left.minHeight() + 1
	}
	if n.right != nil {
		r = n.right.minHeight() + 1
	}
	return min(l, r)
}

// pathLength sums the depths of all nodes below n, with n itself at
// depth level-1.
func (n *node) pathLength(level int) int {
	total := 0
	if n.left != nil {
		total += level + n.left.pathLength(level+1)
	}
	if n.right != nil {
		total += level + n.right.pathLength(level+1)
	}
	return total
}

// checkNode recomputes subtree heights bottom-up and checks the stored
// balance and the parent back-link at every node. Returns the subtree
// height in edges plus one, or ok=false on the first violation.
func checkNode(parent, n *node) (int, bool) {
	if n == nil {
		return 0, true
	}
	if n.parent != parent {
		return 0, false
	}
	if n.balance < -1 || n.balance > 1 {
		return 0, false
	}
	lh, ok := checkNode(n, n.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkNode(n, n.right)
	if !ok {
		return 0, false
	}
	if n.balance != rh-lh {
		return 0, false
	}
	return max(lh, rh) + 1, true
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

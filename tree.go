package hbtree

func (t *tree) Count() int {
	return t.count
}

func (t *tree) Insert(key Key) (*Value, bool) {
	cmp := 0
	n := t.root
	var parent, q *node
	for n != nil {
		cmp = t.cmp(key, n.key)
		if cmp == 0 {
			return &n.datum, false
		}
		parent = n
		if cmp < 0 {
			n = n.left
		} else {
			n = n.right
		}
		// q ends up as the deepest ancestor that is not perfectly
		// balanced: the only place the retrace can overflow.
		if parent.balance != 0 {
			q = parent
		}
	}

	add := t.newNode(key)
	add.parent = parent
	if parent == nil {
		t.root = add
		t.count++
		return &add.datum, true
	}
	if cmp < 0 {
		parent.left = add
	} else {
		parent.right = add
	}

	// Every node strictly below q was balance 0 and its subtree just
	// grew by one, so the new balances are a pure function of which
	// side the path came up through. No rotation can trigger here.
	n = add
	for parent != q {
		if parent.right == n {
			parent.balance = 1
		} else {
			parent.balance = -1
		}
		n = parent
		parent = n.parent
	}

	// At q the insertion is either absorbed (balance moves toward 0,
	// height above is unchanged) or overflows to ±2 and one single or
	// double rotation restores the invariant without changing the
	// height above q. Either way the retrace is done.
	if q != nil {
		if q.left == n {
			q.balance--
			if q.balance == -2 {
				if q.left.balance > 0 {
					t.rotateLeft(q.left)
				}
				t.rotateRight(q)
			}
		} else {
			q.balance++
			if q.balance == 2 {
				if q.right.balance < 0 {
					t.rotateRight(q.right)
				}
				t.rotateLeft(q)
			}
		}
	}
	t.count++
	return &add.datum, true
}

func (t *tree) Remove(key Key) (Key, Value, bool) {
	n := t.root
	for n != nil {
		cmp := t.cmp(key, n.key)
		if cmp == 0 {
			break
		}
		if cmp < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	if n == nil {
		return nil, nil, false
	}

	if n.left != nil && n.right != nil {
		// Swap with the nearest neighbour on the side that is not
		// shorter, so the splice shortens the subtree that can better
		// afford it.
		var out *node
		if n.balance >= 0 {
			out = n.right.min()
		} else {
			out = n.left.max()
		}
		n.key, out.key = out.key, n.key
		n.datum, out.datum = out.datum, n.datum
		n = out
	}

	removedKey, removedDatum := n.key, n.datum
	parent := n.parent
	child := n.left
	if child == nil {
		child = n.right
	}
	if child != nil {
		child.parent = parent
	}
	if parent == nil {
		t.root = child
		t.freeNode(n)
		t.count--
		return removedKey, removedDatum, true
	}

	left := parent.left == n
	if left {
		parent.left = child
	} else {
		parent.right = child
	}
	t.freeNode(n)

	for {
		if left {
			parent.balance++
			if parent.balance == 0 {
				// this subtree got shorter, keep climbing
				n = parent
				goto higher
			}
			if parent.balance != 2 {
				// went 0 -> +1: height unchanged, done
				break
			}
			if parent.right.balance < 0 {
				t.rotateRight(parent.right)
				t.rotateLeft(parent)
			} else if !t.rotateLeft(parent) {
				break
			}
		} else {
			parent.balance--
			if parent.balance == 0 {
				n = parent
				goto higher
			}
			if parent.balance != -2 {
				break
			}
			if parent.left.balance > 0 {
				t.rotateLeft(parent.left)
				t.rotateRight(parent)
			} else if !t.rotateRight(parent) {
				break
			}
		}

		// Only reached after a rotation that shortened the subtree;
		// its new root sits where parent used to.
		n = parent.parent
	higher:
		parent = n.parent
		if parent == nil {
			break
		}
		left = parent.left == n
	}

	t.count--
	return removedKey, removedDatum, true
}

// lookup returns the node holding key, or nil.
func (t *tree) lookup(key Key) *node {
	n := t.root
	for n != nil {
		cmp := t.cmp(key, n.key)
		if cmp == 0 {
			return n
		}
		if cmp < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}

// lookupLE returns the node with the largest key <= key, or nil.
func (t *tree) lookupLE(key Key) *node {
	var best *node
	n := t.root
	for n != nil {
		cmp := t.cmp(key, n.key)
		if cmp == 0 {
			return n
		}
		if cmp < 0 {
			n = n.left
		} else {
			best = n
			n = n.right
		}
	}
	return best
}

// lookupLT returns the node with the largest key < key, or nil.
func (t *tree) lookupLT(key Key) *node {
	var best *node
	n := t.root
	for n != nil {
		if t.cmp(key, n.key) <= 0 {
			n = n.left
		} else {
			best = n
			n = n.right
		}
	}
	return best
}

// lookupGE returns the node with the smallest key >= key, or nil.
func (t *tree) lookupGE(key Key) *node {
	var best *node
	n := t.root
	for n != nil {
		cmp := t.cmp(key, n.key)
		if cmp == 0 {
			return n
		}
		if cmp < 0 {
			best = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return best
}

// lookupGT returns the node with the smallest key > key, or nil.
func (t *tree) lookupGT(key Key) *node {
	var best *node
	n := t.root
	for n != nil {
		if t.cmp(key, n.key) < 0 {
			best = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return best
}

func datumOf(n *node) *Value {
	if n == nil {
		return nil
	}
	return &n.datum
}

func (t *tree) Search(key Key) *Value   { return datumOf(t.lookup(key)) }
func (t *tree) SearchLE(key Key) *Value { return datumOf(t.lookupLE(key)) }
func (t *tree) SearchLT(key Key) *Value { return datumOf(t.lookupLT(key)) }
func (t *tree) SearchGE(key Key) *Value { return datumOf(t.lookupGE(key)) }
func (t *tree) SearchGT(key Key) *Value { return datumOf(t.lookupGT(key)) }

// Clear tears the tree down iteratively, leaf first, so the work is
// O(n) with O(1) extra space whatever the tree's size.
func (t *tree) Clear(dispose DisposeFunc) int {
	cleared := t.count
	n := t.root
	for n != nil {
		if n.left != nil {
			n = n.left
			continue
		}
		if n.right != nil {
			n = n.right
			continue
		}
		if dispose != nil {
			dispose(n.key, n.datum)
		}
		parent := n.parent
		if parent != nil {
			if parent.left == n {
				parent.left = nil
			} else {
				parent.right = nil
			}
		}
		t.freeNode(n)
		n = parent
	}
	t.root = nil
	t.count = 0
	return cleared
}

func (t *tree) Traverse(visit VisitFunc) int {
	if t.root == nil {
		return 0
	}
	visited := 0
	for n := t.root.min(); n != nil; n = n.next() {
		visited++
		if !visit(n.key, n.datum) {
			break
		}
	}
	return visited
}

func (t *tree) Min() (Key, bool) {
	if t.root == nil {
		return nil, false
	}
	return t.root.min().key, true
}

func (t *tree) Max() (Key, bool) {
	if t.root == nil {
		return nil, false
	}
	return t.root.max().key, true
}

func (t *tree) Height() int {
	if t.root == nil {
		return 0
	}
	return t.root.height()
}

func (t *tree) MinHeight() int {
	if t.root == nil {
		return 0
	}
	return t.root.minHeight()
}

func (t *tree) PathLength() int {
	if t.root == nil {
		return 0
	}
	return t.root.pathLength(1)
}

func (t *tree) RotationCount() uint64 {
	return t.rotations
}

func (t *tree) Verify() bool {
	if t.root == nil {
		return t.count == 0
	}
	if t.root.parent != nil {
		return false
	}
	if _, ok := checkNode(nil, t.root); !ok {
		return false
	}
	// key order and reachable count in one in-order pass
	seen := 0
	var prev *node
	for n := t.root.min(); n != nil; n = n.next() {
		if prev != nil && t.cmp(prev.key, n.key) >= 0 {
			return false
		}
		prev = n
		seen++
	}
	return seen == t.count
}

func (t *tree) Iterator() Iterator {
	return &iterator{tree: t}
}

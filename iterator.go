package hbtree

// iterator is a non-owning cursor. It remembers the generation stamp of
// the node it parks on; if that node is reclaimed the stamps disagree
// and the cursor reports ErrStalePosition instead of walking freed
// links.
type iterator struct {
	tree *tree
	node *node
	gen  uint64
	err  error
}

func (it *iterator) Valid() bool {
	return it.node != nil
}

func (it *iterator) Invalidate() {
	it.node = nil
	it.err = nil
}

// park records a position, or clears it when n is nil.
func (it *iterator) park(n *node) bool {
	it.err = nil
	it.node = n
	if n != nil {
		it.gen = n.gen
	}
	return n != nil
}

// live reports whether the recorded position can still be trusted.
func (it *iterator) live() bool {
	if it.node == nil {
		return false
	}
	if it.node.gen != it.gen {
		it.node = nil
		it.err = ErrStalePosition
		return false
	}
	return true
}

func (it *iterator) First() bool {
	if it.tree.root == nil {
		return it.park(nil)
	}
	return it.park(it.tree.root.min())
}

func (it *iterator) Last() bool {
	if it.tree.root == nil {
		return it.park(nil)
	}
	return it.park(it.tree.root.max())
}

func (it *iterator) Next() bool {
	if it.node == nil {
		return it.First()
	}
	if !it.live() {
		return false
	}
	return it.park(it.node.next())
}

func (it *iterator) Prev() bool {
	if it.node == nil {
		return it.Last()
	}
	if !it.live() {
		return false
	}
	return it.park(it.node.prev())
}

func (it *iterator) NextN(count int) bool {
	for ; count > 0; count-- {
		if !it.Next() {
			return false
		}
	}
	return it.node != nil
}

func (it *iterator) PrevN(count int) bool {
	for ; count > 0; count-- {
		if !it.Prev() {
			return false
		}
	}
	return it.node != nil
}

func (it *iterator) Search(key Key) bool   { return it.park(it.tree.lookup(key)) }
func (it *iterator) SearchLE(key Key) bool { return it.park(it.tree.lookupLE(key)) }
func (it *iterator) SearchLT(key Key) bool { return it.park(it.tree.lookupLT(key)) }
func (it *iterator) SearchGE(key Key) bool { return it.park(it.tree.lookupGE(key)) }
func (it *iterator) SearchGT(key Key) bool { return it.park(it.tree.lookupGT(key)) }

func (it *iterator) Key() (Key, bool) {
	if !it.live() {
		return nil, false
	}
	return it.node.key, true
}

func (it *iterator) Datum() (*Value, bool) {
	if !it.live() {
		return nil, false
	}
	return &it.node.datum, true
}

func (it *iterator) Err() error {
	return it.err
}

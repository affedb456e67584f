package hbtree

import (
	"errors"
)

var (
	// ErrStalePosition reports that the node an iterator was parked on
	// has since been removed from its tree.
	ErrStalePosition = errors.New("hbtree: iterator position was deleted")
)

type (
	// Key is an opaque comparable value; its ordering comes entirely
	// from the tree's CompareFunc. A stored key is never mutated by
	// the tree.
	Key interface{}

	// Value is the payload stored alongside a key.
	Value interface{}

	tree struct {
		root      *node
		count     int
		cmp       CompareFunc
		rotations uint64
		free      *node // reclaimed nodes, chained through parent
	}

	node struct {
		parent *node
		left   *node
		right  *node
		key    Key
		datum  Value

		// balance is height(right) - height(left), kept in -1..+1
		// between public operations.
		balance int

		// gen is bumped every time the node is reclaimed, so a cursor
		// that recorded an older stamp knows its position is gone.
		gen uint64
	}
)

// newNode takes from the free list when possible; a node comes back
// zeroed apart from its generation stamp.
func (t *tree) newNode(key Key) *node {
	n := t.free
	if n == nil {
		return &node{key: key}
	}
	t.free = n.parent
	n.parent = nil
	n.key = key
	return n
}

// freeNode clears a detached node and chains it onto the free list.
func (t *tree) freeNode(n *node) {
	n.left = nil
	n.right = nil
	n.key = nil
	n.datum = nil
	n.balance = 0
	n.gen++
	n.parent = t.free // free list link
	t.free = n
}

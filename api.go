// Package hbtree implements an ordered map backed by a height-balanced
// (AVL) binary search tree: O(log n) insert, remove and exact or
// relational lookup, plus ordered iteration through parent links with
// no auxiliary storage.
//
// A tree is not safe for concurrent use; callers sharing one across
// goroutines must serialise access themselves.
package hbtree

// CompareFunc defines a total order over keys: negative when a sorts
// before b, zero when equal, positive when after. It must be consistent
// and free of side effects observable by the tree; the tree calls it on
// every descent.
type CompareFunc func(a, b Key) int

// VisitFunc receives entries during an in-order walk. Returning false
// stops the walk.
type VisitFunc func(key Key, datum Value) bool

// DisposeFunc is called once per entry dropped by Clear.
type DisposeFunc func(key Key, datum Value)

type Tree interface {
	// Insert reserves a slot for key and reports whether the entry is
	// new. For an already present key the existing slot is returned
	// unchanged; writing through the slot updates the payload in place.
	Insert(key Key) (*Value, bool)

	// Search returns the slot holding key, or nil.
	Search(key Key) *Value
	// SearchLE returns the slot of the largest key <= key, or nil.
	SearchLE(key Key) *Value
	// SearchLT returns the slot of the largest key < key, or nil.
	SearchLT(key Key) *Value
	// SearchGE returns the slot of the smallest key >= key, or nil.
	SearchGE(key Key) *Value
	// SearchGT returns the slot of the smallest key > key, or nil.
	SearchGT(key Key) *Value

	// Remove deletes key and returns the removed entry. An absent key
	// is not an error: (nil, nil, false).
	Remove(key Key) (Key, Value, bool)

	// Clear drops every entry, handing each to dispose when non-nil,
	// and returns the number removed.
	Clear(dispose DisposeFunc) int

	// Traverse walks the entries in key order until visit returns
	// false, and returns the number visited.
	Traverse(visit VisitFunc) int

	Count() int
	Min() (Key, bool)
	Max() (Key, bool)

	// Height is the longest root-to-leaf edge count, MinHeight the
	// shortest; PathLength is the sum of all node depths.
	Height() int
	MinHeight() int
	PathLength() int
	RotationCount() uint64

	// Verify checks the ordering, balance and link invariants; it
	// exists for tests and never runs on a mutation path.
	Verify() bool

	Iterator() Iterator
}

// Iterator is a bidirectional cursor over a Tree. It starts without a
// position; Next and Prev from there behave like First and Last. An
// iterator does not pin its tree: removing the node a cursor is parked
// on makes the position stale, which the cursor detects and reports
// through Err.
type Iterator interface {
	Valid() bool
	// Invalidate drops the current position; the iterator stays usable
	// for later seeks.
	Invalidate()

	First() bool
	Last() bool
	Next() bool
	Prev() bool
	// NextN and PrevN take count steps in their respective directions,
	// reporting whether a position remains.
	NextN(count int) bool
	PrevN(count int) bool

	Search(key Key) bool
	SearchLE(key Key) bool
	SearchLT(key Key) bool
	SearchGE(key Key) bool
	SearchGT(key Key) bool

	// Key and Datum report absent results while the iterator holds no
	// usable position.
	Key() (Key, bool)
	Datum() (*Value, bool)

	// Err returns ErrStalePosition after the cursor tripped on a
	// deleted node, until the next positioning call.
	Err() error
}

// New creates an empty tree ordered by cmp. A nil cmp is a broken
// caller contract and panics.
func New(cmp CompareFunc) Tree {
	if cmp == nil {
		panic("hbtree: nil compare function")
	}
	return &tree{cmp: cmp}
}

// CompareInts orders int keys.
func CompareInts(a, b Key) int {
	x, y := a.(int), b.(int)
	if x < y {
		return -1
	}
	if x > y {
		return 1
	}
	return 0
}

// CompareStrings orders string keys.
func CompareStrings(a, b Key) int {
	x, y := a.(string), b.(string)
	if x < y {
		return -1
	}
	if x > y {
		return 1
	}
	return 0
}

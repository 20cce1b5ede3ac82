// Package bst implements an unbalanced binary search tree with order
// statistics. Values equal to an existing element are kept, and are stored to
// its right.
//
// A Tree is not safe for concurrent use; see package locked for a wrapper
// that is.
package bst

import (
	"cmp"
	"fmt"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

type Tree[V any] struct {
	root    *node[V]
	count   uint64
	compare func(a, b V) int
	// key renders a value for Hash; nil for trees built with NewFunc
	key func(V) string
}

// New returns an empty tree ordered by the natural order of V.
func New[V cmp.Ordered]() *Tree[V] {
	t := NewFunc(cmp.Compare[V])
	t.key = func(v V) string {
		// -0.0 compares equal to 0.0
		var zero V
		if v == zero {
			v = zero
		}
		return fmt.Sprint(v)
	}
	return t
}

// NewFunc returns an empty tree ordered by compare, which must be a total
// order returning a negative number when a < b, zero when a == b, and a
// positive number when a > b.
func NewFunc[V any](compare func(a, b V) int) *Tree[V] {
	return &Tree[V]{compare: compare}
}

// check asserts that the tracked count agrees with the nodes reachable from
// the root.
func (t *Tree[V]) check() {
	primitive.Assert(t.root.size() == t.count)
}

// Insert adds value to the tree. Every call adds a new element, including for
// values already present.
func (t *Tree[V]) Insert(value V) {
	t.root = t.root.insert(value, t.compare)
	t.count = std.SumAssumeNoOverflow(t.count, 1)
	t.check()
}

// Delete removes one element equal to value. It reports whether an element was
// found; the size only changes if it was.
func (t *Tree[V]) Delete(value V) bool {
	if t.root == nil {
		return false
	}
	var removed bool
	t.root, removed = t.root.delete(value, t.compare)
	if removed {
		t.count--
	}
	t.check()
	return removed
}

// delete removes the first node equal to value on the search path and returns
// the new root of the subtree.
func (n *node[V]) delete(value V, compare func(a, b V) int) (*node[V], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	c := compare(value, n.value)
	if c < 0 {
		n.left, removed = n.left.delete(value, compare)
	} else if c > 0 {
		n.right, removed = n.right.delete(value, compare)
	} else {
		return n.unlink(compare), true
	}
	if removed {
		n.fix()
	}
	return n, removed
}

// unlink returns the subtree that replaces n once n itself is removed.
func (n *node[V]) unlink(compare func(a, b V) int) *node[V] {
	if n.isLeaf() {
		return nil
	}
	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}
	// Rebuild n around its predecessor, the rightmost node of the left
	// subtree. If the predecessor's value is repeated, a copy would stay in
	// the left subtree of the new node, so use the successor instead.
	if !n.left.maxRepeated(compare) {
		left, pred := n.left.deleteMax()
		return newNode(pred.value, left, n.right)
	}
	right, succ := n.right.deleteMin()
	return newNode(succ.value, n.left, right)
}

// maxRepeated reports whether another node of n holds a value equal to its
// rightmost one. Such a copy can only be the rightmost node's parent.
func (n *node[V]) maxRepeated(compare func(a, b V) int) bool {
	for n.right != nil {
		if n.right.right == nil {
			return compare(n.value, n.right.value) == 0
		}
		n = n.right
	}
	return false
}

// deleteMax detaches the rightmost node of n. It returns the remaining subtree
// and the detached node.
func (n *node[V]) deleteMax() (*node[V], *node[V]) {
	if n.right == nil {
		return n.left, n
	}
	var detached *node[V]
	n.right, detached = n.right.deleteMax()
	n.fix()
	return n, detached
}

func (n *node[V]) deleteMin() (*node[V], *node[V]) {
	if n.left == nil {
		return n.right, n
	}
	var detached *node[V]
	n.left, detached = n.left.deleteMin()
	n.fix()
	return n, detached
}

// Contains reports whether some element compares equal to value.
func (t *Tree[V]) Contains(value V) bool {
	return t.root.contains(value, t.compare)
}

// Size returns the number of elements in the tree.
func (t *Tree[V]) Size() uint64 {
	return t.count
}

// IsBalanced reports whether, at every node, the heights of the two subtrees
// differ by at most one. The tree never rebalances itself; this is only an
// inspection.
func (t *Tree[V]) IsBalanced() bool {
	if t.root == nil {
		return true
	}
	return t.root.isBalanced()
}

// Height returns the number of edges on the longest root-to-leaf path, or -1
// for an empty tree.
func (t *Tree[V]) Height() int {
	return t.root.height()
}

// Clear removes all elements.
func (t *Tree[V]) Clear() {
	t.root = nil
	t.count = 0
}

package bst

import (
	"github.com/goose-lang/primitive"
	"github.com/pkg/errors"
)

// kthMin returns the node at 1-indexed position k of an ascending walk of n,
// or nil if n has fewer than k nodes.
func (n *node[V]) kthMin(k uint64) *node[V] {
	if n == nil {
		return nil
	}
	// rank of n within its own subtree
	r := 1 + n.left.size()
	if r == k {
		return n
	}
	if r > k {
		return n.left.kthMin(k)
	}
	return n.right.kthMin(k - r)
}

// kthMax is kthMin with the sides swapped.
func (n *node[V]) kthMax(k uint64) *node[V] {
	if n == nil {
		return nil
	}
	r := 1 + n.right.size()
	if r == k {
		return n
	}
	if r > k {
		return n.right.kthMax(k)
	}
	return n.left.kthMax(k - r)
}

func (t *Tree[V]) checkRank(k uint64) error {
	if t.root == nil {
		return ErrEmptyTree
	}
	if k == 0 || k > t.count {
		return errors.Wrapf(ErrRankOutOfRange, "rank %d of %d", k, t.count)
	}
	return nil
}

// KthMin returns the element at position k (starting from 1) of the tree in
// ascending order. Duplicates occupy one position each.
//
// It fails with ErrEmptyTree on an empty tree and with ErrRankOutOfRange when
// k is 0 or larger than Size().
func (t *Tree[V]) KthMin(k uint64) (V, error) {
	if err := t.checkRank(k); err != nil {
		var zero V
		return zero, err
	}
	n := t.root.kthMin(k)
	primitive.Assert(n != nil)
	return n.value, nil
}

// KthMax is KthMin in descending order: KthMax(1) is the largest element.
func (t *Tree[V]) KthMax(k uint64) (V, error) {
	if err := t.checkRank(k); err != nil {
		var zero V
		return zero, err
	}
	n := t.root.kthMax(k)
	primitive.Assert(n != nil)
	return n.value, nil
}

// Min returns the smallest element, or ErrEmptyTree.
func (t *Tree[V]) Min() (V, error) {
	return t.KthMin(1)
}

// Max returns the largest element, or ErrEmptyTree.
func (t *Tree[V]) Max() (V, error) {
	return t.KthMax(1)
}

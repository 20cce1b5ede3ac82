package bst

import "fmt"

// CheckInvariants walks the whole tree and returns an error describing the
// first broken ordering or size invariant.
func CheckInvariants[V any](t *Tree[V]) error {
	if (t.root == nil) != (t.count == 0) {
		return fmt.Errorf("root is %v but count is %d", t.root, t.count)
	}
	n, err := t.root.checkSubtree(t.compare)
	if err != nil {
		return err
	}
	if n != t.count {
		return fmt.Errorf("count is %d but %d nodes are reachable", t.count, n)
	}
	return nil
}

// checkSubtree returns the number of nodes in n.
func (n *node[V]) checkSubtree(compare func(a, b V) int) (uint64, error) {
	if n == nil {
		return 0, nil
	}
	if n.left != nil && compare(n.left.rightmost().value, n.value) >= 0 {
		return 0, fmt.Errorf("left subtree of %v holds %v", n.value, n.left.rightmost().value)
	}
	if n.right != nil && compare(n.right.leftmost().value, n.value) < 0 {
		return 0, fmt.Errorf("right subtree of %v holds %v", n.value, n.right.leftmost().value)
	}
	l, err := n.left.checkSubtree(compare)
	if err != nil {
		return 0, err
	}
	r, err := n.right.checkSubtree(compare)
	if err != nil {
		return 0, err
	}
	if n.sz != 1+l+r {
		return 0, fmt.Errorf("node %v has size %d, want %d", n.value, n.sz, 1+l+r)
	}
	return n.sz, nil
}

func (n *node[V]) leftmost() *node[V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

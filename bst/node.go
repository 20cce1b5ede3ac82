package bst

// node is one element of a Tree. Each node owns its children exclusively: no
// node is reachable from two parents, and nothing outside the package holds
// a *node.
//
// Every value in left compares less than value, and every value in right
// compares greater than or equal to it. sz caches 1 + left.size() +
// right.size() and is refreshed by fix on every node whose subtree changed.
type node[V any] struct {
	value V
	left  *node[V]
	right *node[V]
	sz    uint64
}

func leaf[V any](value V) *node[V] {
	return &node[V]{value: value, sz: 1}
}

// newNode takes ownership of left and right.
func newNode[V any](value V, left *node[V], right *node[V]) *node[V] {
	n := &node[V]{value: value, left: left, right: right}
	n.fix()
	return n
}

// size works on a nil node, which is the empty subtree.
func (n *node[V]) size() uint64 {
	if n == nil {
		return 0
	}
	return n.sz
}

func (n *node[V]) fix() {
	n.sz = 1 + n.left.size() + n.right.size()
}

func (n *node[V]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// height of the empty subtree is -1, so a leaf has height 0.
func (n *node[V]) height() int {
	if n == nil {
		return -1
	}
	return 1 + max(n.left.height(), n.right.height())
}

// isBalanced reports whether the heights of the two subtrees differ by at most
// one at every node of n.
func (n *node[V]) isBalanced() bool {
	_, ok := n.balancedHeight()
	return ok
}

func (n *node[V]) balancedHeight() (int, bool) {
	if n == nil {
		return -1, true
	}
	lh, ok := n.left.balancedHeight()
	if !ok {
		return 0, false
	}
	rh, ok := n.right.balancedHeight()
	if !ok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return 1 + max(lh, rh), true
}

func (n *node[V]) rightmost() *node[V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

func (n *node[V]) insert(value V, compare func(a, b V) int) *node[V] {
	if n == nil {
		return leaf(value)
	}
	// equal values go right
	if compare(value, n.value) < 0 {
		n.left = n.left.insert(value, compare)
	} else {
		n.right = n.right.insert(value, compare)
	}
	n.fix()
	return n
}

func (n *node[V]) contains(value V, compare func(a, b V) int) bool {
	if n == nil {
		return false
	}
	c := compare(value, n.value)
	if c == 0 {
		return true
	}
	if c < 0 {
		return n.left.contains(value, compare)
	}
	return n.right.contains(value, compare)
}

// equal compares n and o structurally: same shape, and values at the same
// positions compare equal.
func (n *node[V]) equal(o *node[V], compare func(a, b V) int) bool {
	if n == nil || o == nil {
		return n == o
	}
	if compare(n.value, o.value) != 0 {
		return false
	}
	return n.left.equal(o.left, compare) && n.right.equal(o.right, compare)
}

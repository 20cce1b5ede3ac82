package bst

// pushLeft pushes n and its chain of left children.
func pushLeft[V any](s *stack[*node[V]], n *node[V]) {
	for ; n != nil; n = n.left {
		s.Push(n)
	}
}

func pushRight[V any](s *stack[*node[V]], n *node[V]) {
	for ; n != nil; n = n.right {
		s.Push(n)
	}
}

// Ascend calls fn on every element in ascending order until fn returns false.
// The tree must not be modified while Ascend runs.
func (t *Tree[V]) Ascend(fn func(value V) bool) {
	s := newStack[*node[V]]()
	pushLeft(s, t.root)
	for {
		n, ok := s.Pop()
		if !ok || !fn(n.value) {
			return
		}
		pushLeft(s, n.right)
	}
}

// Descend is Ascend in descending order.
func (t *Tree[V]) Descend(fn func(value V) bool) {
	s := newStack[*node[V]]()
	pushRight(s, t.root)
	for {
		n, ok := s.Pop()
		if !ok || !fn(n.value) {
			return
		}
		pushRight(s, n.left)
	}
}

// Values returns the elements in ascending order.
func (t *Tree[V]) Values() []V {
	vals := make([]V, 0, t.count)
	t.Ascend(func(v V) bool {
		vals = append(vals, v)
		return true
	})
	return vals
}

type leveled[V any] struct {
	n     *node[V]
	depth int
}

// Levels returns the elements grouped by depth, root first, each level read
// left to right. It is meant for inspecting the shape of the tree.
func (t *Tree[V]) Levels() [][]V {
	var levels [][]V
	q := newQueue[leveled[V]]()
	if t.root != nil {
		q.Push(leveled[V]{n: t.root})
	}
	for {
		e, ok := q.Pop()
		if !ok {
			break
		}
		if e.depth == len(levels) {
			levels = append(levels, nil)
		}
		levels[e.depth] = append(levels[e.depth], e.n.value)
		if e.n.left != nil {
			q.Push(leveled[V]{n: e.n.left, depth: e.depth + 1})
		}
		if e.n.right != nil {
			q.Push(leveled[V]{n: e.n.right, depth: e.depth + 1})
		}
	}
	return levels
}

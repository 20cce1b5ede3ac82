// Package locked wraps bst.Tree with a mutex so it can be shared between
// goroutines.
package locked

import (
	"cmp"
	"sync"

	"bst_code/bst"
)

// Tree holds its lock for the whole of every call, so each operation is atomic
// with respect to the others.
type Tree[V any] struct {
	mu   *sync.Mutex
	tree *bst.Tree[V]
}

func New[V cmp.Ordered]() *Tree[V] {
	return Wrap(bst.New[V]())
}

// Wrap takes ownership of t; the caller must not use t directly afterwards.
func Wrap[V any](t *bst.Tree[V]) *Tree[V] {
	return &Tree[V]{mu: new(sync.Mutex), tree: t}
}

func (t *Tree[V]) Insert(value V) {
	t.mu.Lock()
	t.tree.Insert(value)
	t.mu.Unlock()
}

func (t *Tree[V]) Delete(value V) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Delete(value)
}

func (t *Tree[V]) Contains(value V) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Contains(value)
}

func (t *Tree[V]) Min() (V, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Min()
}

func (t *Tree[V]) Max() (V, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Max()
}

func (t *Tree[V]) KthMin(k uint64) (V, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.KthMin(k)
}

func (t *Tree[V]) KthMax(k uint64) (V, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.KthMax(k)
}

func (t *Tree[V]) Size() uint64 {
	t.mu.Lock()
	n := t.tree.Size()
	t.mu.Unlock()
	return n
}

func (t *Tree[V]) IsBalanced() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.IsBalanced()
}

func (t *Tree[V]) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.String()
}

// Snapshot returns the elements in ascending order as of one instant.
func (t *Tree[V]) Snapshot() []V {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Values()
}

// PopMin removes and returns the smallest element. The lookup and the removal
// happen under one lock, so concurrent callers never receive the same element.
func (t *Tree[V]) PopMin() (V, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	x, err := t.tree.Min()
	if err != nil {
		return x, err
	}
	t.tree.Delete(x)
	return x, nil
}

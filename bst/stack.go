package bst

type stack[T any] struct {
	elements []T
}

func newStack[T any]() *stack[T] {
	return &stack[T]{
		elements: []T{},
	}
}

func (s *stack[T]) Push(x T) {
	s.elements = append(s.elements, x)
}

// Pop returns the most recently pushed element. The boolean indicates success,
// which is false if the stack was empty.
func (s *stack[T]) Pop() (T, bool) {
	if len(s.elements) == 0 {
		var zero T
		return zero, false
	}
	x := s.elements[len(s.elements)-1]
	s.elements = s.elements[:len(s.elements)-1]
	return x, true
}

// queue is a FIFO built from two stacks: pushes go to back, and front is
// refilled from back only when it runs dry.
type queue[T any] struct {
	back  *stack[T]
	front *stack[T]
}

func newQueue[T any]() queue[T] {
	return queue[T]{
		back:  newStack[T](),
		front: newStack[T](),
	}
}

func (q queue[T]) Push(x T) {
	q.back.Push(x)
}

func (q queue[T]) emptyBack() {
	for {
		x, ok := q.back.Pop()
		if !ok {
			break
		}
		q.front.Push(x)
	}
}

func (q queue[T]) Pop() (T, bool) {
	x, ok := q.front.Pop()
	if ok {
		return x, true
	}
	q.emptyBack()
	return q.front.Pop()
}

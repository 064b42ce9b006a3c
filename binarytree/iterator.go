package binarytree

// Iterator is a finite, non restartable in order sequence over a tree.
// It keeps an explicit stack instead of recursing, so its depth does not
// depend on the goroutine stack.
type Iterator[T any] struct {
	stack []*node[T]
	value T
}

func (it *Iterator[T]) pushLeft(n *node[T]) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.left.root
	}
}

// Next advances to the next label and reports whether there was one
func (it *Iterator[T]) Next() bool {
	if len(it.stack) == 0 {
		var zero T
		it.value = zero
		return false
	}

	last := len(it.stack) - 1
	n := it.stack[last]
	it.stack[last] = nil
	it.stack = it.stack[:last]

	it.value = n.label
	it.pushLeft(n.right.root)
	return true
}

// Value is the label reached by the last successful call to Next
func (it *Iterator[T]) Value() T {
	return it.value
}

package binarytree

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

var ErrEmptyTree = errors.New("binary tree is empty")

type (
	// Tree is either empty or a single node that owns its left and right
	// subtrees. Subtrees are never shared between nodes or trees.
	Tree[T any] struct {
		root *node[T]
		fl   *FreeList[T]
	}

	node[T any] struct {
		label  T
		left   Tree[T]
		right  Tree[T]
		size   int
		height int
	}
)

func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// NewWithFreeList creates an empty tree that recycles its nodes through fl
func NewWithFreeList[T any](fl *FreeList[T]) *Tree[T] {
	return &Tree[T]{fl: fl}
}

// NewEmpty returns an empty tree sharing the free list of t.
func (t *Tree[T]) NewEmpty() Tree[T] {
	return Tree[T]{fl: t.fl}
}

func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Size is the number of labels in the tree.
//
// Complexity: O(1)
func (t *Tree[T]) Size() int {
	if t.IsEmpty() {
		return 0
	}
	return t.root.size
}

// Height is 0 for an empty tree and 1 for a single node.
//
// Complexity: O(1)
func (t *Tree[T]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	return t.root.height
}

// Root returns the root label, false when the tree is empty
func (t *Tree[T]) Root() (T, bool) {
	if t.IsEmpty() {
		var zero T
		return zero, false
	}
	return t.root.label, true
}

// Left is a read only view of the left subtree, nil for an empty tree.
// The view must not be disassembled or assembled by the caller.
func (t *Tree[T]) Left() *Tree[T] {
	if t.IsEmpty() {
		return nil
	}
	return &t.root.left
}

// Right is a read only view of the right subtree, nil for an empty tree.
func (t *Tree[T]) Right() *Tree[T] {
	if t.IsEmpty() {
		return nil
	}
	return &t.root.right
}

// Disassemble splits a non-empty tree into its root label and its two
// subtrees. The subtrees replace the contents of left and right and t is
// left empty. It panics on an empty tree.
func (t *Tree[T]) Disassemble(left, right *Tree[T]) T {
	if t.IsEmpty() {
		panic(errors.Wrap(ErrEmptyTree, "disassemble"))
	}

	n := t.root
	t.root = nil

	label := n.label
	left.root, right.root = n.left.root, n.right.root
	t.fl.freeNode(n)

	return label
}

// Assemble makes t the tree with the given root label and subtrees,
// replacing whatever t held before. Left and right are left empty.
func (t *Tree[T]) Assemble(label T, left, right *Tree[T]) {
	n := t.fl.newNode()
	n.label = label
	n.left.root, n.right.root = left.root, right.root
	left.root, right.root = nil, nil

	n.size = 1 + n.left.Size() + n.right.Size()
	n.height = 1 + max(n.left.Height(), n.right.Height())
	t.root = n
}

// TransferFrom moves the whole content of src into t and leaves src empty
func (t *Tree[T]) TransferFrom(src *Tree[T]) {
	if t == src {
		return
	}
	t.root = src.root
	src.root = nil
}

func (t *Tree[T]) Clear() {
	t.root = nil
}

// Iterator walks the tree in order. The tree must not be modified
// while the iterator is in use.
func (t *Tree[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{}
	if !t.IsEmpty() {
		it.stack = make([]*node[T], 0, t.root.height)
		it.pushLeft(t.root)
	}
	return it
}

func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := t.Iterator()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Items returns the labels in order
func (t *Tree[T]) Items() []T {
	items := make([]T, 0, t.Size())
	for item := range t.All() {
		items = append(items, item)
	}
	return items
}

// String renders the shape of the tree, e.g. "m(a,z)" or "b(,c)".
func (t *Tree[T]) String() string {
	var b strings.Builder
	t.writeTo(&b)
	return b.String()
}

func (t *Tree[T]) writeTo(b *strings.Builder) {
	if t.IsEmpty() {
		return
	}

	fmt.Fprint(b, t.root.label)
	if t.root.left.IsEmpty() && t.root.right.IsEmpty() {
		return
	}

	b.WriteByte('(')
	t.root.left.writeTo(b)
	b.WriteByte(',')
	t.root.right.writeTo(b)
	b.WriteByte(')')
}

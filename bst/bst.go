// Package bst keeps a binarytree.Tree ordered as a binary search tree:
// for every node the labels of its left subtree compare less than its
// label, the labels of its right subtree compare greater, and no label
// occurs twice. The tree is never rebalanced, so its height depends on
// the insertion order and may reach the number of labels.
//
// Insert, RemoveMin and Remove recurse once per level of the tree.
// A contract error always leaves the tree exactly as it was.
package bst

import (
	"github.com/denismitr/bstset/binarytree"
	"github.com/denismitr/bstset/utils"
	"github.com/pkg/errors"
)

// Contains reports whether x is a label of t. It walks down from the root
// without modifying the tree.
//
// Complexity: O(h)
func Contains[T any](t *binarytree.Tree[T], x T, cmp utils.CompareFn[T]) bool {
	for !t.IsEmpty() {
		root, _ := t.Root()
		switch c := cmp(x, root); {
		case c == 0:
			return true
		case c < 0:
			t = t.Left()
		default:
			t = t.Right()
		}
	}

	return false
}

// Insert adds x to t. It returns ErrDuplicate when x is already present.
//
// Complexity: O(h)
func Insert[T any](t *binarytree.Tree[T], x T, cmp utils.CompareFn[T]) error {
	left, right := t.NewEmpty(), t.NewEmpty()
	if t.IsEmpty() {
		t.Assemble(x, &left, &right)
		return nil
	}

	var err error
	root := t.Disassemble(&left, &right)
	switch c := cmp(root, x); {
	case c > 0:
		err = Insert(&left, x, cmp)
	case c < 0:
		err = Insert(&right, x, cmp)
	default:
		err = ErrDuplicate
	}

	t.Assemble(root, &left, &right)
	return err
}

// RemoveMin removes and returns the smallest label of t.
//
// Complexity: O(h)
func RemoveMin[T any](t *binarytree.Tree[T]) (T, error) {
	if t.IsEmpty() {
		return utils.GetZero[T](), ErrEmpty
	}

	left, right := t.NewEmpty(), t.NewEmpty()
	root := t.Disassemble(&left, &right)
	if left.IsEmpty() {
		// the leftmost node has no left child, its right subtree takes its place
		t.TransferFrom(&right)
		return root, nil
	}

	smallest, err := RemoveMin(&left)
	t.Assemble(root, &left, &right)
	return smallest, err
}

// Remove finds the label comparing equal to x, removes it from t and
// returns the stored label. It returns ErrNotFound when there is none.
//
// Complexity: O(h)
func Remove[T any](t *binarytree.Tree[T], x T, cmp utils.CompareFn[T]) (T, error) {
	if t.IsEmpty() {
		return utils.GetZero[T](), ErrNotFound
	}

	left, right := t.NewEmpty(), t.NewEmpty()
	root := t.Disassemble(&left, &right)

	c := cmp(x, root)
	if c == 0 {
		if right.IsEmpty() {
			t.TransferFrom(&left)
			return root, nil
		}

		// the successor is greater than everything on the left
		// and smaller than everything still on the right
		successor, _ := RemoveMin(&right)
		t.Assemble(successor, &left, &right)
		return root, nil
	}

	var (
		removed T
		err     error
	)
	if c < 0 {
		removed, err = Remove(&left, x, cmp)
	} else {
		removed, err = Remove(&right, x, cmp)
	}

	t.Assemble(root, &left, &right)
	return removed, err
}

// Min returns the smallest label without modifying t.
func Min[T any](t *binarytree.Tree[T]) (T, bool) {
	if t.IsEmpty() {
		return utils.GetZero[T](), false
	}
	for !t.Left().IsEmpty() {
		t = t.Left()
	}
	return t.Root()
}

// Max returns the greatest label without modifying t.
func Max[T any](t *binarytree.Tree[T]) (T, bool) {
	if t.IsEmpty() {
		return utils.GetZero[T](), false
	}
	for !t.Right().IsEmpty() {
		t = t.Right()
	}
	return t.Root()
}

// Validate checks that the in order sequence of t is strictly increasing,
// which holds exactly when t is a binary search tree without duplicates.
func Validate[T any](t *binarytree.Tree[T], cmp utils.CompareFn[T]) error {
	it := t.Iterator()
	if !it.Next() {
		return nil
	}

	prev := it.Value()
	for it.Next() {
		curr := it.Value()
		if cmp(prev, curr) >= 0 {
			return errors.Wrapf(ErrInvariant, "%v is followed by %v", prev, curr)
		}
		prev = curr
	}

	return nil
}

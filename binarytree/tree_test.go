package binarytree_test

import (
	"errors"
	"testing"

	"github.com/denismitr/bstset/binarytree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(label string) *binarytree.Tree[string] {
	t := binarytree.New[string]()
	l, r := t.NewEmpty(), t.NewEmpty()
	t.Assemble(label, &l, &r)
	return t
}

func TestTree_Empty(t *testing.T) {
	tree := binarytree.New[string]()

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, 0, tree.Height())
	assert.Nil(t, tree.Left())
	assert.Nil(t, tree.Right())
	assert.Empty(t, tree.Items())
	assert.Equal(t, "", tree.String())

	root, ok := tree.Root()
	assert.False(t, ok)
	assert.Equal(t, "", root)
}

func TestTree_AssembleDisassemble(t *testing.T) {
	t.Run("assemble consumes both subtrees", func(t *testing.T) {
		left, right := leaf("a"), leaf("z")
		tree := binarytree.New[string]()
		tree.Assemble("m", left, right)

		assert.True(t, left.IsEmpty())
		assert.True(t, right.IsEmpty())
		assert.Equal(t, 3, tree.Size())
		assert.Equal(t, 2, tree.Height())
		assert.Equal(t, "m(a,z)", tree.String())
		assert.Equal(t, []string{"a", "m", "z"}, tree.Items())
	})

	t.Run("disassemble is the inverse of assemble", func(t *testing.T) {
		tree := binarytree.New[string]()
		tree.Assemble("m", leaf("a"), leaf("z"))

		var left, right binarytree.Tree[string]
		root := tree.Disassemble(&left, &right)

		assert.Equal(t, "m", root)
		assert.True(t, tree.IsEmpty())
		assert.Equal(t, "a", left.String())
		assert.Equal(t, "z", right.String())

		tree.Assemble(root, &left, &right)
		assert.Equal(t, "m(a,z)", tree.String())
	})

	t.Run("height follows the deepest branch", func(t *testing.T) {
		inner := binarytree.New[string]()
		empty := inner.NewEmpty()
		inner.Assemble("c", &empty, leaf("d"))

		tree := binarytree.New[string]()
		tree.Assemble("a", &binarytree.Tree[string]{}, inner)

		assert.Equal(t, 3, tree.Height())
		assert.Equal(t, 3, tree.Size())
		assert.Equal(t, "a(,c(,d))", tree.String())
	})

	t.Run("it will panic when disassembling an empty tree", func(t *testing.T) {
		tree := binarytree.New[int]()
		var left, right binarytree.Tree[int]

		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(error)
			require.True(t, ok)
			assert.True(t, errors.Is(err, binarytree.ErrEmptyTree))
		}()

		tree.Disassemble(&left, &right)
	})
}

func TestTree_TransferFrom(t *testing.T) {
	src := binarytree.New[string]()
	src.Assemble("m", leaf("a"), leaf("z"))

	dst := leaf("q")
	dst.TransferFrom(src)

	assert.True(t, src.IsEmpty())
	assert.Equal(t, []string{"a", "m", "z"}, dst.Items())

	dst.TransferFrom(dst)
	assert.Equal(t, 3, dst.Size())

	dst.Clear()
	assert.True(t, dst.IsEmpty())
}

func TestTree_Views(t *testing.T) {
	tree := binarytree.New[string]()
	tree.Assemble("m", leaf("a"), leaf("z"))

	root, ok := tree.Root()
	require.True(t, ok)
	assert.Equal(t, "m", root)

	l, _ := tree.Left().Root()
	r, _ := tree.Right().Root()
	assert.Equal(t, "a", l)
	assert.Equal(t, "z", r)
	assert.True(t, tree.Left().Left().IsEmpty())
	assert.Nil(t, tree.Left().Left().Left())
}

func TestFreeList(t *testing.T) {
	t.Run("disassembled nodes are reused by assemble", func(t *testing.T) {
		fl := binarytree.NewFreeList[int](binarytree.DefaultFreeListSize)
		tree := binarytree.NewWithFreeList(fl)

		l, r := tree.NewEmpty(), tree.NewEmpty()
		tree.Assemble(1, &l, &r)
		assert.Equal(t, 0, fl.Len())

		tree.Disassemble(&l, &r)
		assert.Equal(t, 1, fl.Len())

		tree.Assemble(2, &l, &r)
		assert.Equal(t, 0, fl.Len())
		assert.Equal(t, []int{2}, tree.Items())
	})

	t.Run("it will discard nodes beyond capacity", func(t *testing.T) {
		fl := binarytree.NewFreeList[int](1)
		a := binarytree.NewWithFreeList(fl)
		b := binarytree.NewWithFreeList(fl)

		var l, r binarytree.Tree[int]
		a.Assemble(1, &l, &r)
		b.Assemble(2, &l, &r)

		a.Disassemble(&l, &r)
		b.Disassemble(&l, &r)
		assert.Equal(t, 1, fl.Len())
	})

	t.Run("nil free list is a no-op", func(t *testing.T) {
		var fl *binarytree.FreeList[int]
		assert.Equal(t, 0, fl.Len())
	})
}

package set

import (
	"iter"

	"github.com/denismitr/bstset/utils"
	"github.com/google/btree"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

const DefaultBTreeDegree = 8

// BTreeSet is an ordered set on a balanced B-tree. It behaves like
// TreeSet and serves as its reference.
type BTreeSet[T any] struct {
	tree  *btree.BTreeG[T]
	isNil func(T) bool
}

var _ Set[int] = (*BTreeSet[int])(nil)

func NewBTreeSet[T constraints.Ordered](degree int) *BTreeSet[T] {
	return NewBTreeSetFunc(degree, utils.Natural[T]())
}

func NewBTreeSetFunc[T any](degree int, cmp utils.CompareFn[T]) *BTreeSet[T] {
	if degree < 2 {
		degree = DefaultBTreeDegree
	}

	return &BTreeSet[T]{
		tree: btree.NewG(degree, func(a, b T) bool {
			return cmp(a, b) < 0
		}),
		isNil: nilCheck[T](),
	}
}

func (s *BTreeSet[T]) Add(item T) error {
	if s.isNil != nil && s.isNil(item) {
		return errors.Wrap(ErrNilElement, "add")
	}

	if s.tree.Has(item) {
		return errors.Wrapf(ErrDuplicate, "add %v", item)
	}

	s.tree.ReplaceOrInsert(item)
	return nil
}

func (s *BTreeSet[T]) Remove(item T) (T, error) {
	if s.isNil != nil && s.isNil(item) {
		return utils.GetZero[T](), errors.Wrap(ErrNilElement, "remove")
	}

	removed, ok := s.tree.Delete(item)
	if !ok {
		return removed, errors.Wrapf(ErrNotFound, "remove %v", item)
	}

	return removed, nil
}

// RemoveAny removes the smallest element, like TreeSet does
func (s *BTreeSet[T]) RemoveAny() (T, error) {
	removed, ok := s.tree.DeleteMin()
	if !ok {
		return removed, errors.Wrap(ErrEmpty, "remove any")
	}

	return removed, nil
}

func (s *BTreeSet[T]) Contains(item T) bool {
	if s.isNil != nil && s.isNil(item) {
		return false
	}
	return s.tree.Has(item)
}

func (s *BTreeSet[T]) Size() int {
	return s.tree.Len()
}

func (s *BTreeSet[T]) Clear() {
	s.tree.Clear(true)
}

func (s *BTreeSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Ascend(func(item T) bool {
			return yield(item)
		})
	}
}

func (s *BTreeSet[T]) Items() []T {
	items := make([]T, 0, s.tree.Len())
	for item := range s.All() {
		items = append(items, item)
	}
	return items
}

func (s *BTreeSet[T]) AddSlice(items []T) (added int, err error) {
	return addSlice[T](s, items)
}

func (s *BTreeSet[T]) AddSet(source Set[T]) (added int, err error) {
	return addSet[T](s, source)
}

func (s *BTreeSet[T]) Equal(other Set[T]) bool {
	return Equal[T](s, other)
}

func (s *BTreeSet[T]) String() string {
	return Format[T](s)
}

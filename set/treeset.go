package set

import (
	"iter"

	"github.com/denismitr/bstset/binarytree"
	"github.com/denismitr/bstset/bst"
	"github.com/denismitr/bstset/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// TreeSet is an ordered set kept in an unbalanced binary search tree.
// It is not safe for concurrent use.
type TreeSet[T any] struct {
	tree  *binarytree.Tree[T]
	cmp   utils.CompareFn[T]
	isNil func(T) bool
	cfg   config[T]
}

var _ Set[int] = (*TreeSet[int])(nil)

// NewTreeSet creates an empty set ordered by the natural order of T
func NewTreeSet[T constraints.Ordered](options ...Option[T]) *TreeSet[T] {
	return NewTreeSetFunc(utils.Natural[T](), options...)
}

// NewTreeSetFunc creates an empty set ordered by cmp, which must be a
// total order over T.
func NewTreeSetFunc[T any](cmp utils.CompareFn[T], options ...Option[T]) *TreeSet[T] {
	cfg := newConfig(options...)
	return &TreeSet[T]{
		tree:  binarytree.NewWithFreeList(cfg.freeList),
		cmp:   cmp,
		isNil: nilCheck[T](),
		cfg:   cfg,
	}
}

// NewInstance creates an empty set with the same ordering, logger
// and free list as s.
func (s *TreeSet[T]) NewInstance() *TreeSet[T] {
	return &TreeSet[T]{
		tree:  binarytree.NewWithFreeList(s.cfg.freeList),
		cmp:   s.cmp,
		isNil: s.isNil,
		cfg:   s.cfg,
	}
}

// Factory returns a Factory producing empty sets like s
func (s *TreeSet[T]) Factory() Factory[T] {
	return func() Set[T] {
		return s.NewInstance()
	}
}

func (s *TreeSet[T]) nilElement(item T) bool {
	return s.isNil != nil && s.isNil(item)
}

// Add inserts an element that is not in the set yet.
//
// Complexity: O(h)
func (s *TreeSet[T]) Add(item T) error {
	if s.nilElement(item) {
		return s.cfg.violation("add", logrus.Fields{"element": item}, ErrNilElement)
	}

	if err := bst.Insert(s.tree, item, s.cmp); err != nil {
		return s.cfg.violation("add", logrus.Fields{"element": item}, err)
	}

	return nil
}

// Remove removes the element equal to item and returns the stored one.
//
// Complexity: O(h)
func (s *TreeSet[T]) Remove(item T) (T, error) {
	if s.nilElement(item) {
		return utils.GetZero[T](), s.cfg.violation("remove", logrus.Fields{"element": item}, ErrNilElement)
	}

	removed, err := bst.Remove(s.tree, item, s.cmp)
	if err != nil {
		return removed, s.cfg.violation("remove", logrus.Fields{"element": item}, err)
	}

	return removed, nil
}

// RemoveAny removes and returns the smallest element. The choice is
// deterministic, callers must not rely on it being random.
//
// Complexity: O(h)
func (s *TreeSet[T]) RemoveAny() (T, error) {
	removed, err := bst.RemoveMin(s.tree)
	if err != nil {
		return removed, s.cfg.violation("remove any", nil, err)
	}

	return removed, nil
}

// MustAdd is Add for call sites that already checked the precondition.
// It panics on a contract error.
func (s *TreeSet[T]) MustAdd(item T) *TreeSet[T] {
	if err := s.Add(item); err != nil {
		panic(err)
	}
	return s
}

func (s *TreeSet[T]) MustRemove(item T) T {
	removed, err := s.Remove(item)
	if err != nil {
		panic(err)
	}
	return removed
}

func (s *TreeSet[T]) MustRemoveAny() T {
	removed, err := s.RemoveAny()
	if err != nil {
		panic(err)
	}
	return removed
}

// Contains reports whether item is in the set. It never modifies the tree.
//
// Complexity: O(h)
func (s *TreeSet[T]) Contains(item T) bool {
	if s.nilElement(item) {
		s.cfg.logViolation("contains", logrus.Fields{"element": item}, ErrNilElement)
		return false
	}

	return bst.Contains(s.tree, item, s.cmp)
}

func (s *TreeSet[T]) Size() int {
	return s.tree.Size()
}

// Height of the underlying tree, 0 for an empty set
func (s *TreeSet[T]) Height() int {
	return s.tree.Height()
}

func (s *TreeSet[T]) Min() (T, bool) {
	return bst.Min(s.tree)
}

func (s *TreeSet[T]) Max() (T, bool) {
	return bst.Max(s.tree)
}

func (s *TreeSet[T]) Clear() {
	s.tree.Clear()
}

// TransferFrom moves every element of source into s, discarding what s
// held before, and leaves source empty. s adopts the ordering of source.
func (s *TreeSet[T]) TransferFrom(source *TreeSet[T]) error {
	if source == nil {
		return s.cfg.violation("transfer", nil, ErrNilSource)
	}
	if source == s {
		return s.cfg.violation("transfer", nil, ErrSelfTransfer)
	}

	s.tree.TransferFrom(source.tree)
	s.cmp = source.cmp
	return nil
}

// Iterator returns a fresh ascending sequence over the current elements.
// The set must not be modified while the iterator is in use.
func (s *TreeSet[T]) Iterator() *binarytree.Iterator[T] {
	return s.tree.Iterator()
}

// All yields the elements in ascending order
func (s *TreeSet[T]) All() iter.Seq[T] {
	return s.tree.All()
}

func (s *TreeSet[T]) Items() []T {
	return s.tree.Items()
}

func (s *TreeSet[T]) AddSlice(items []T) (added int, err error) {
	return addSlice[T](s, items)
}

func (s *TreeSet[T]) AddSet(source Set[T]) (added int, err error) {
	return addSet[T](s, source)
}

// Validate checks the binary search tree invariant
func (s *TreeSet[T]) Validate() error {
	return bst.Validate(s.tree, s.cmp)
}

func (s *TreeSet[T]) Equal(other Set[T]) bool {
	return Equal[T](s, other)
}

func (s *TreeSet[T]) String() string {
	return Format[T](s)
}

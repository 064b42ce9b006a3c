package set

import (
	"iter"

	"github.com/denismitr/bstset/utils"
	"github.com/pkg/errors"
)

// HashSet - is an unordered set
type HashSet[T comparable] struct {
	m     map[T]struct{}
	isNil func(T) bool
}

var _ Set[int] = (*HashSet[int])(nil)

func NewHashSet[T comparable]() *HashSet[T] {
	return &HashSet[T]{
		m:     make(map[T]struct{}),
		isNil: nilCheck[T](),
	}
}

func (s *HashSet[T]) nilElement(item T) bool {
	return s.isNil != nil && s.isNil(item)
}

func (s *HashSet[T]) Add(item T) error {
	if s.nilElement(item) {
		return errors.Wrap(ErrNilElement, "add")
	}

	if _, found := s.m[item]; found {
		return errors.Wrapf(ErrDuplicate, "add %v", item)
	}

	s.m[item] = struct{}{}
	return nil
}

func (s *HashSet[T]) Clear() {
	s.m = make(map[T]struct{})
}

func (s *HashSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	for item := range s.m {
		items = append(items, item)
	}
	return items
}

// All yields the elements in no particular order
func (s *HashSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range s.m {
			if !yield(item) {
				return
			}
		}
	}
}

func (s *HashSet[T]) Contains(item T) bool {
	if s.nilElement(item) {
		return false
	}

	_, ok := s.m[item]
	return ok
}

func (s *HashSet[T]) Remove(item T) (T, error) {
	if s.nilElement(item) {
		return utils.GetZero[T](), errors.Wrap(ErrNilElement, "remove")
	}

	if _, found := s.m[item]; !found {
		return utils.GetZero[T](), errors.Wrapf(ErrNotFound, "remove %v", item)
	}

	delete(s.m, item)
	return item, nil
}

// RemoveAny removes whichever element map iteration reaches first
func (s *HashSet[T]) RemoveAny() (T, error) {
	for item := range s.m {
		delete(s.m, item)
		return item, nil
	}

	return utils.GetZero[T](), errors.Wrap(ErrEmpty, "remove any")
}

func (s *HashSet[T]) AddSet(source Set[T]) (added int, err error) {
	return addSet[T](s, source)
}

func (s *HashSet[T]) AddSlice(items []T) (added int, err error) {
	return addSlice[T](s, items)
}

func (s *HashSet[T]) Size() int {
	return len(s.m)
}

func (s *HashSet[T]) Equal(other Set[T]) bool {
	return Equal[T](s, other)
}

func (s *HashSet[T]) String() string {
	return Format[T](s)
}

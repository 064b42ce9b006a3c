package set

import (
	"iter"

	"github.com/denismitr/bstset/utils"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/pkg/errors"
)

// OrderedSet keeps its elements in insertion order
type OrderedSet[T comparable] struct {
	m     *orderedmap.OrderedMap[T, struct{}]
	isNil func(T) bool
}

var _ Set[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{
		m:     orderedmap.NewOrderedMap[T, struct{}](),
		isNil: nilCheck[T](),
	}
}

func (s *OrderedSet[T]) nilElement(item T) bool {
	return s.isNil != nil && s.isNil(item)
}

func (s *OrderedSet[T]) Add(item T) error {
	if s.nilElement(item) {
		return errors.Wrap(ErrNilElement, "add")
	}

	if s.m.Has(item) {
		return errors.Wrapf(ErrDuplicate, "add %v", item)
	}

	s.m.Set(item, struct{}{})
	return nil
}

func (s *OrderedSet[T]) Clear() {
	s.m = orderedmap.NewOrderedMap[T, struct{}]()
}

func (s *OrderedSet[T]) Remove(item T) (T, error) {
	if s.nilElement(item) {
		return utils.GetZero[T](), errors.Wrap(ErrNilElement, "remove")
	}

	el := s.m.GetElement(item)
	if el == nil {
		return utils.GetZero[T](), errors.Wrapf(ErrNotFound, "remove %v", item)
	}

	stored := el.Key
	s.m.Delete(item)
	return stored, nil
}

// RemoveAny removes the oldest element
func (s *OrderedSet[T]) RemoveAny() (T, error) {
	front := s.m.Front()
	if front == nil {
		return utils.GetZero[T](), errors.Wrap(ErrEmpty, "remove any")
	}

	item := front.Key
	s.m.Delete(item)
	return item, nil
}

func (s *OrderedSet[T]) Items() []T {
	return s.m.Keys()
}

// All yields the elements in insertion order
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for el := s.m.Front(); el != nil; el = el.Next() {
			if !yield(el.Key) {
				return
			}
		}
	}
}

func (s *OrderedSet[T]) Contains(item T) bool {
	if s.nilElement(item) {
		return false
	}
	return s.m.Has(item)
}

func (s *OrderedSet[T]) Size() int {
	return s.m.Len()
}

func (s *OrderedSet[T]) AddSet(source Set[T]) (added int, err error) {
	return addSet[T](s, source)
}

func (s *OrderedSet[T]) AddSlice(items []T) (added int, err error) {
	return addSlice[T](s, items)
}

func (s *OrderedSet[T]) Equal(other Set[T]) bool {
	return Equal[T](s, other)
}

func (s *OrderedSet[T]) String() string {
	return Format[T](s)
}

package set

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/denismitr/bstset/bst"
	"github.com/pkg/errors"
)

var (
	ErrDuplicate    = bst.ErrDuplicate
	ErrNotFound     = bst.ErrNotFound
	ErrEmpty        = bst.ErrEmpty
	ErrNilElement   = errors.New("element is nil")
	ErrNilSource    = errors.New("source set is nil")
	ErrSelfTransfer = errors.New("source set is the receiver")
)

// Set is a mutable collection without duplicates. Add, Remove and
// RemoveAny return a contract error, wrapping one of the sentinels above,
// when they are called outside their preconditions; the set is left
// unchanged in that case.
type Set[T any] interface {
	Add(item T) error
	Remove(item T) (T, error)
	RemoveAny() (T, error)
	Contains(item T) bool
	Size() int
	Clear()
	All() iter.Seq[T]
	Items() []T
	AddSlice(items []T) (added int, err error)
	AddSet(source Set[T]) (added int, err error)
	Equal(other Set[T]) bool
	String() string
}

// Factory creates an empty set
type Factory[T any] func() Set[T]

// Equal reports whether a and b hold the same elements, regardless of
// how either of them stores them. A nil set equals nothing.
func Equal[T any](a, b Set[T]) bool {
	if isNilSet(a) || isNilSet(b) {
		return false
	}

	if a.Size() != b.Size() {
		return false
	}

	for item := range a.All() {
		if !b.Contains(item) {
			return false
		}
	}

	return true
}

// Format renders the elements of s in iteration order, e.g. {a, m, z}
func Format[T any](s Set[T]) string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for item := range s.All() {
		if !first {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, item)
		first = false
	}
	b.WriteByte('}')
	return b.String()
}

func addSlice[T any](s Set[T], items []T) (added int, err error) {
	for _, item := range items {
		if s.Contains(item) {
			continue
		}
		if err := s.Add(item); err != nil {
			return added, err
		}
		added++
	}

	return added, nil
}

func addSet[T any](s Set[T], source Set[T]) (added int, err error) {
	if isNilSet(source) {
		return 0, ErrNilSource
	}

	for item := range source.All() {
		if s.Contains(item) {
			continue
		}
		if err := s.Add(item); err != nil {
			return added, err
		}
		added++
	}

	return added, nil
}

// isNilSet catches both a nil interface and a typed nil pointer inside one
func isNilSet[T any](s Set[T]) bool {
	if s == nil {
		return true
	}

	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// nilCheck returns a function reporting whether a value of T is nil,
// or nil when T can never hold nil.
func nilCheck[T any]() func(T) bool {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	switch typ.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return func(item T) bool {
			return reflect.ValueOf(&item).Elem().IsNil()
		}
	default:
		return nil
	}
}

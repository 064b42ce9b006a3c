package utils

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

type Order uint8

const (
	DescOrder Order = iota
	AscOrder
)

// CompareFn is a three way comparison: negative when a < b,
// zero when a == b and positive when a > b
type CompareFn[T any] func(a, b T) int

func GetZero[T any]() T {
	var result T
	return result
}

// Natural orders values with the built in operators. NaN sorts before
// every other float and equals itself, so the order stays total.
func Natural[T constraints.Ordered]() CompareFn[T] {
	return func(a, b T) int {
		return cmp.Compare(a, b)
	}
}

func Reverse[T any](cmp CompareFn[T]) CompareFn[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

// Comparator returns the natural comparison for AscOrder and
// its reverse for DescOrder
func Comparator[T constraints.Ordered](o Order) CompareFn[T] {
	if o == DescOrder {
		return Reverse(Natural[T]())
	}

	return Natural[T]()
}

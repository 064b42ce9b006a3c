package bst

import "github.com/pkg/errors"

var (
	ErrDuplicate = errors.New("element is already present")
	ErrNotFound  = errors.New("element is not present")
	ErrEmpty     = errors.New("tree is empty")
	ErrInvariant = errors.New("binary search tree invariant violated")
)

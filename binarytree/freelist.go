package binarytree

import "sync"

const (
	DefaultFreeListSize = 32
)

// FreeList keeps disassembled nodes around so that the next Assemble
// can reuse them. It is safe to share one free list between trees.
type FreeList[T any] struct {
	mu       sync.Mutex
	freelist []*node[T]
}

func NewFreeList[T any](size int) *FreeList[T] {
	return &FreeList[T]{freelist: make([]*node[T], 0, size)}
}

func (f *FreeList[T]) newNode() (n *node[T]) {
	if f == nil {
		return new(node[T])
	}

	f.mu.Lock()
	index := len(f.freelist) - 1
	if index < 0 {
		f.mu.Unlock()
		return new(node[T])
	}
	n = f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	f.mu.Unlock()
	return
}

// freeNode adds the given node to the list, returning true if it was added
// and false if it was discarded.
func (f *FreeList[T]) freeNode(n *node[T]) (out bool) {
	if f == nil {
		return false
	}

	*n = node[T]{}
	f.mu.Lock()
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		out = true
	}
	f.mu.Unlock()
	return
}

// Len reports how many nodes are waiting for reuse
func (f *FreeList[T]) Len() int {
	if f == nil {
		return 0
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.freelist)
}

package ansi

import (
	"strings"
	"sync"
)

// A pool is a generic wrapper around a sync.pool.
type pool[T any] struct {
	pool sync.Pool
}

// Create a new pool which will use the fn to create new instances of T
func newPool[T any](fn func() T) *pool[T] {
	return &pool[T]{
		pool: sync.Pool{New: func() interface{} { return fn() }},
	}
}

// Get a new T
func (p *pool[T]) Get() T {
	return p.pool.Get().(T)
}

// Put a T back in the pool
func (p *pool[T]) Put(x T) {
	p.pool.Put(x)
}

var builders = newPool(func() *strings.Builder {
	return &strings.Builder{}
})

// GetBuilder returns an empty builder from the shared pool. The builder's
// String must be consumed before it is returned with PutBuilder
func GetBuilder() *strings.Builder {
	b := builders.Get()
	b.Reset()
	return b
}

// PutBuilder returns b to the shared pool
func PutBuilder(b *strings.Builder) {
	builders.Put(b)
}

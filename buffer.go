package vector

import "unsafe"

// noCopy may be embedded into structs which must not be copied after first use.
// go vet's copylocks check reports copies of values containing it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer is the sole owner of a heap-allocated array of T, or of nothing.
// It knows how many elements were allocated, not how many are in use.
//
// A Buffer must not be copied. Ownership moves only through Release, Swap
// or AdoptBuffer.
type Buffer[T any] struct {
	_   noCopy
	raw []T // nil or len(raw) == cap(raw) >= 1
}

// NewBuffer allocates storage for exactly n zero-valued elements.
// If n == 0 the returned Buffer owns nothing. Panics if n < 0.
func NewBuffer[T any](n int) Buffer[T] {
	if n < 0 {
		panic("vector: negative buffer length")
	}
	if n == 0 {
		return Buffer[T]{}
	}
	return Buffer[T]{raw: make([]T, n)}
}

// AdoptBuffer takes ownership of an already allocated array. The caller must
// not use raw afterwards. An empty or nil raw yields a Buffer that owns nothing.
func AdoptBuffer[T any](raw []T) Buffer[T] {
	if len(raw) == 0 {
		return Buffer[T]{}
	}
	return Buffer[T]{raw: raw[:len(raw):len(raw)]}
}

// Release relinquishes ownership and returns the array, leaving b empty.
// A second call returns nil.
func (b *Buffer[T]) Release() []T {
	raw := b.raw
	b.raw = nil
	return raw
}

// Index returns a pointer to the element at offset i. The offset is not
// checked: i must be within [0, b.Len()).
func (b *Buffer[T]) Index(i int) *T {
	var zero T
	base := unsafe.Pointer(unsafe.SliceData(b.raw))
	return (*T)(unsafe.Add(base, uintptr(i)*unsafe.Sizeof(zero)))
}

// Load returns a copy of the element at offset i. Unchecked, like Index.
func (b *Buffer[T]) Load(i int) T {
	return *b.Index(i)
}

// Get returns the owned array without transferring ownership.
func (b *Buffer[T]) Get() []T {
	return b.raw
}

// Len returns the allocated length.
func (b *Buffer[T]) Len() int {
	return len(b.raw)
}

// Owns reports whether b holds an array.
func (b *Buffer[T]) Owns() bool {
	return b.raw != nil
}

// Swap exchanges the owned arrays of b and other.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.raw, other.raw = other.raw, b.raw
}

// Free drops the owned array. Elements are zeroed first so that anything
// they reference becomes collectable even if a stale slice is still held.
// Calling Free on an empty Buffer is a no-op.
func (b *Buffer[T]) Free() {
	if b.raw == nil {
		return
	}
	clear(b.raw)
	b.raw = nil
}

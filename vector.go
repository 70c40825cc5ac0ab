package vector

// Vector is a growable array of T backed by a single Buffer.
// Elements in [0, Size()) are live; slots in [Size(), Capacity()) are
// allocated storage that is not part of the sequence.
//
// Not goroutine-safe: concurrent use without external synchronization is a
// precondition violation.
type Vector[T any] struct {
	storage     Buffer[T]
	size        int
	capacity    int
	relocations int
}

// CapacityRequest asks NewReserved for pre-allocated storage.
type CapacityRequest struct {
	Capacity int
}

// Reserve returns a CapacityRequest for capacity elements.
//
//	v := vector.NewReserved[int](vector.Reserve(64))
func Reserve(capacity int) CapacityRequest {
	return CapacityRequest{Capacity: capacity}
}

// New returns an empty Vector with no storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSized returns a Vector of n zero values.
func NewSized[T any](n int) *Vector[T] {
	var zero T
	return NewFilled(n, zero)
}

// NewFilled returns a Vector of n copies of value. Size and capacity are n.
func NewFilled[T any](n int, value T) *Vector[T] {
	v := &Vector[T]{storage: NewBuffer[T](n), size: n, capacity: n}
	raw := v.storage.Get()
	for i := range raw {
		raw[i] = value
	}
	return v
}

// Of returns a Vector holding a copy of values, with capacity len(values).
func Of[T any](values ...T) *Vector[T] {
	v := &Vector[T]{storage: NewBuffer[T](len(values)), size: len(values), capacity: len(values)}
	copy(v.storage.Get(), values)
	return v
}

// NewReserved returns an empty Vector with req.Capacity slots allocated.
func NewReserved[T any](req CapacityRequest) *Vector[T] {
	v := New[T]()
	v.Reserve(req.Capacity)
	return v
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	return v.capacity
}

// IsEmpty reports whether Size() == 0.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// At returns a pointer to the element at index i. It returns an error
// matching ErrOutOfRange if i is outside [0, Size()), whatever the capacity.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, outOfRange(i, v.size)
	}
	return v.storage.Index(i), nil
}

// Index returns a pointer to the element at index i without a bounds check.
// i must be in [0, Size()); builds with the vecdebug tag panic otherwise.
func (v *Vector[T]) Index(i int) *T {
	assertf(i >= 0 && i < v.size, "Index", i, v.size)
	return v.storage.Index(i)
}

// Clone returns an independent copy whose capacity equals Size().
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{storage: NewBuffer[T](v.size), size: v.size, capacity: v.size}
	copy(c.storage.Get(), v.live())
	return c
}

// Assign replaces the contents of v with a copy of src. The copy is built
// completely before it is swapped in, so v is never seen half-updated.
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := src.Clone()
	v.Swap(tmp)
	tmp.Free()
}

// Move transfers the storage of v to a new Vector and leaves v empty.
func (v *Vector[T]) Move() *Vector[T] {
	m := New[T]()
	m.MoveFrom(v)
	return m
}

// MoveFrom frees the storage of v and takes over the storage of src,
// leaving src empty and reusable.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Free()
	v.storage.Swap(&src.storage)
	v.size, src.size = src.size, 0
	v.capacity, src.capacity = src.capacity, 0
}

// Swap exchanges the contents of v and other without allocating.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.storage.Swap(&other.storage)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}

// Free releases the storage. v is left empty and may be reused.
func (v *Vector[T]) Free() {
	v.storage.Free()
	v.size = 0
	v.capacity = 0
}

// live returns the live elements, aliasing storage.
func (v *Vector[T]) live() []T {
	return v.storage.Get()[:v.size]
}

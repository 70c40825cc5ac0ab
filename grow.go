package vector

// Operations in this file may reallocate or shift storage. Positions,
// element pointers, slices and iterators obtained before the call must not
// be used after it.

// Reserve makes room for at least newCapacity elements. It never changes
// Size() or element values, and is a no-op if newCapacity <= Capacity().
func (v *Vector[T]) Reserve(newCapacity int) {
	if newCapacity < 0 {
		panic("vector: negative capacity")
	}
	if newCapacity > v.capacity {
		v.relocate(newCapacity)
	}
}

// Resize sets the size to n. Shrinking only moves the end; slots that
// re-enter the sequence later are reset to the zero value. Growing past
// capacity reallocates to max(n, 2*Capacity()).
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic("vector: negative size")
	}
	if n <= v.size {
		v.size = n
		return
	}
	if n > v.capacity {
		v.relocate(max(n, 2*v.capacity))
	}
	clear(v.storage.Get()[v.size:n])
	v.size = n
}

// PushBack appends value, doubling the capacity when full (0 grows to 1).
func (v *Vector[T]) PushBack(value T) {
	if v.size == v.capacity {
		v.relocate(v.grownCapacity())
	}
	*v.storage.Index(v.size) = value
	v.size++
}

// PopBack drops the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	assertf(v.size > 0, "PopBack", v.size-1, v.size)
	v.size--
}

// Insert places value at position pos in [0, Size()] and returns the
// position of the inserted element. pos == Size() appends.
func (v *Vector[T]) Insert(pos int, value T) int {
	assertf(pos >= 0 && pos <= v.size, "Insert", pos, v.size)

	if v.size == v.capacity {
		// Full: build the new layout directly in the grown buffer.
		newCapacity := v.grownCapacity()
		next := NewBuffer[T](newCapacity)
		src, dst := v.live(), next.Get()
		copy(dst, src[:pos])
		dst[pos] = value
		copy(dst[pos+1:], src[pos:])
		v.commit(&next, newCapacity)
		v.size++
		return pos
	}

	raw := v.storage.Get()
	copy(raw[pos+1:v.size+1], raw[pos:v.size])
	raw[pos] = value
	v.size++
	return pos
}

// Erase removes the element at pos in [0, Size()) and returns pos, which
// now holds the following element or equals Size() if the last was removed.
func (v *Vector[T]) Erase(pos int) int {
	assertf(pos >= 0 && pos < v.size, "Erase", pos, v.size)
	raw := v.storage.Get()
	copy(raw[pos:], raw[pos+1:v.size])
	v.size--
	return pos
}

// Clear sets the size to 0. Capacity and storage are kept for reuse.
func (v *Vector[T]) Clear() {
	v.size = 0
}

func (v *Vector[T]) grownCapacity() int {
	if v.capacity == 0 {
		return 1
	}
	return 2 * v.capacity
}

// relocate moves the live elements into a new buffer of newCapacity slots.
func (v *Vector[T]) relocate(newCapacity int) {
	next := NewBuffer[T](newCapacity)
	copy(next.Get(), v.live())
	v.commit(&next, newCapacity)
}

// commit swaps next in as the storage and drops the old buffer without
// zeroing it, since nothing reaches it after the swap. Until this point v is
// untouched, so a failed allocation leaves it as it was.
func (v *Vector[T]) commit(next *Buffer[T], capacity int) {
	v.storage.Swap(next)
	next.Release()
	v.capacity = capacity
	v.relocations++
}

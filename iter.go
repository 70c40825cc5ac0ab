package vector

import "iter"

// Begin returns the position of the first element. It is always 0.
func (v *Vector[T]) Begin() int {
	return 0
}

// End returns the position one past the last element.
func (v *Vector[T]) End() int {
	return v.size
}

// Slice returns the live elements. The slice aliases the vector's storage
// and is invalidated by any operation that reallocates or shifts it.
func (v *Vector[T]) Slice() []T {
	return v.live()
}

// All yields positions and copies of the live elements in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.live() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values yields copies of the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.live() {
			if !yield(x) {
				return
			}
		}
	}
}

// Pointers yields positions and pointers to the live elements, allowing
// in-place updates. Mutating the vector itself while iterating is not allowed.
func (v *Vector[T]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		live := v.live()
		for i := range live {
			if !yield(i, &live[i]) {
				return
			}
		}
	}
}

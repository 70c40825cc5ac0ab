package vector

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.live(), b.live())
}

// NotEqual reports !Equal(a, b).
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	return slices.EqualFunc(a.live(), b.live(), eq)
}

// Compare compares a and b lexicographically and returns -1, 0 or +1.
// A shorter vector that is a prefix of the other compares less. Elements
// are ordered as by cmp.Compare, so a NaN sorts before every other float.
// Less and the operators built on it use the element < instead.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.live(), b.live())
}

// Less reports whether a sorts before b lexicographically, comparing
// elements with <. A shorter vector that is a prefix of the other is less.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return LessFunc(a, b, func(x, y T) bool { return x < y })
}

// LessOrEqual reports !Less(b, a).
func LessOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater reports Less(b, a).
func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterOrEqual reports !Less(a, b).
func GreaterOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}

// LessFunc is Less for element types ordered by less.
func LessFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	x, y := a.live(), b.live()
	for i := 0; i < len(x) && i < len(y); i++ {
		switch {
		case less(x[i], y[i]):
			return true
		case less(y[i], x[i]):
			return false
		}
	}
	return len(x) < len(y)
}

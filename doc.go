// Package vector implements a growable contiguous array (Vector) on top of a
// single-owner heap buffer (Buffer).
//
// # Overview
//
// A Buffer owns an array of T or nothing at all. It knows how many elements
// were allocated but not how many are in use. A Vector adds a logical size
// and a capacity on top of one Buffer, and implements the growth, insertion
// and erasure algorithms.
//
// # Basic Usage
//
//	v := vector.New[int]()
//	v.PushBack(1)
//	v.PushBack(2)
//	v.Insert(1, 99) // [1 99 2]
//	v.Erase(0)      // [99 2]
//
//	p, err := v.At(5) // checked: err matches vector.ErrOutOfRange
//	*v.Index(0) = 7   // unchecked fast path
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Growth
//
// PushBack and Insert double the capacity when the vector is full, starting
// from 1. Resize past the capacity grows to max(n, 2*Capacity()). Reserve
// allocates exactly what is asked. Every growth allocates a new buffer,
// copies the live elements into it and only then swaps it in and frees the
// old one; the swap is the commit point.
//
// # Invalidation
//
// Positions, element pointers, slices from Slice and running iterators are
// invalidated by Reserve, Resize, PushBack, Insert and Erase. This is not
// tracked at run time.
//
// # Checked and Unchecked Access
//
// At reports an out-of-range index as an error. Index, PopBack on an empty
// vector, and Insert/Erase with a bad position are precondition violations:
// builds with the vecdebug tag log them through the logger installed with
// SetLogger and panic; other builds skip the check.
//
// # Copy, Move and Swap
//
// Clone and Assign produce independent storage. Move and MoveFrom transfer
// the storage and leave the source empty but usable. Swap exchanges two
// vectors in O(1).
//
// # Thread Safety
//
// Neither Buffer nor Vector is safe for concurrent use.
package vector

package vector

import "unsafe"

// ElemSize returns the size in bytes of one element slot.
func (v *Vector[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) SizeInUse() int {
	return v.size * v.ElemSize()
}

// Allocated returns the number of bytes held by the storage buffer.
func (v *Vector[T]) Allocated() int {
	return v.capacity * v.ElemSize()
}

// Relocations returns how many times growth moved the elements to a new buffer.
func (v *Vector[T]) Relocations() int {
	return v.relocations
}

// Utilization returns the ratio of size to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(v.capacity)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:        v.size,
		Capacity:    v.capacity,
		ElemSize:    v.ElemSize(),
		SizeInUse:   v.SizeInUse(),
		Allocated:   v.Allocated(),
		Relocations: v.relocations,
		Utilization: v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Size        int     // Live elements
	Capacity    int     // Allocated slots
	ElemSize    int     // Bytes per slot
	SizeInUse   int     // Bytes occupied by live elements
	Allocated   int     // Bytes held by storage
	Relocations int     // Growth reallocations so far
	Utilization float64 // Ratio of size to capacity (0.0-1.0)
}

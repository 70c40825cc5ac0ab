package vector

import (
	"testing"
)

// BenchmarkRealisticUsage tests scenarios a growable array is built for
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: Append with periodic reuse
	b.Run("PushBack/Vector", func(b *testing.B) {
		v := New[int]()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				v.PushBack(j)
			}
			// Clear keeps the storage, like a request-scoped buffer
			v.Clear()
		}
	})

	b.Run("PushBack/Builtin", func(b *testing.B) {
		var s []int
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				s = append(s, j)
			}
			s = s[:0]
		}
	})

	// Test 2: Pre-reserved fill
	b.Run("Reserved/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := NewReserved[int](Reserve(1000))
			for j := 0; j < 1000; j++ {
				v.PushBack(j)
			}
		}
	})

	b.Run("Reserved/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, 1000)
			for j := 0; j < 1000; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	// Test 3: Front insertion, the worst case for shifting
	b.Run("InsertFront/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[int]()
			for j := 0; j < 100; j++ {
				v.Insert(0, j)
			}
		}
	})

	b.Run("InsertFront/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < 100; j++ {
				s = append(s, 0)
				copy(s[1:], s)
				s[0] = j
			}
		}
	})
}

func BenchmarkAccess(b *testing.B) {
	v := NewSized[int](1024)

	b.Run("Index", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			*v.Index(i & 1023) = i
		}
	})

	b.Run("At", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			p, _ := v.At(i & 1023)
			*p = i
		}
	})
}

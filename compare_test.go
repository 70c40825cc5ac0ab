package vector

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareOperators(t *testing.T) {
	tests := []struct {
		name    string
		a, b    *Vector[int]
		compare int
	}{
		{"equal", Of(1, 2, 3), Of(1, 2, 3), 0},
		{"both empty", New[int](), NewReserved[int](Reserve(4)), 0},
		{"last element smaller", Of(1, 2, 3), Of(1, 2, 4), -1},
		{"prefix is smaller", Of(1, 2), Of(1, 2, 3), -1},
		{"empty is smallest", New[int](), Of(0), -1},
		{"first difference wins", Of(2), Of(1, 9, 9), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.compare, Compare(tt.a, tt.b))
			require.Equal(t, -tt.compare, Compare(tt.b, tt.a))

			require.Equal(t, tt.compare == 0, Equal(tt.a, tt.b))
			require.Equal(t, tt.compare != 0, NotEqual(tt.a, tt.b))
			require.Equal(t, tt.compare < 0, Less(tt.a, tt.b))
			require.Equal(t, tt.compare <= 0, LessOrEqual(tt.a, tt.b))
			require.Equal(t, tt.compare > 0, Greater(tt.a, tt.b))
			require.Equal(t, tt.compare >= 0, GreaterOrEqual(tt.a, tt.b))
		})
	}
}

func TestCompareIgnoresSpareCapacity(t *testing.T) {
	a := Of(1, 2, 3, 4)
	a.Resize(2)
	b := Of(1, 2)
	require.True(t, Equal(a, b))
	require.False(t, Less(a, b))
	require.False(t, Less(b, a))
}

type point struct{ x, y int }

func TestCompareFuncs(t *testing.T) {
	a := Of("Go", "vector")
	b := Of("go", "VECTOR")
	require.False(t, Equal(a, b))
	require.True(t, EqualFunc(a, b, strings.EqualFold))

	byX := func(p, q point) bool { return p.x < q.x }
	require.True(t, LessFunc(Of(point{1, 9}), Of(point{2, 0}), byX))
	require.False(t, LessFunc(Of(point{1, 9}), Of(point{1, 0}), byX))
	require.True(t, LessFunc(Of(point{1, 9}), Of(point{1, 0}, point{0, 0}), byX))
}

func TestLessUsesElementLess(t *testing.T) {
	nan := math.NaN()

	// NaN is neither less nor greater than anything under <.
	require.False(t, Less(Of(nan), Of(1.0)))
	require.False(t, Less(Of(1.0), Of(nan)))
	require.False(t, Greater(Of(nan), Of(1.0)))
	require.True(t, LessOrEqual(Of(nan), Of(1.0)))
	require.True(t, GreaterOrEqual(Of(nan), Of(1.0)))

	// An unordered element does not stop the scan; later elements decide.
	require.True(t, Less(Of(nan, 1.0), Of(2.0, 2.0)))
	require.True(t, Less(Of(nan), Of(nan, 0.0)))

	require.False(t, Equal(Of(nan), Of(nan)))
	require.True(t, NotEqual(Of(nan), Of(nan)))

	// Compare keeps the cmp.Compare total order.
	require.Equal(t, -1, Compare(Of(nan), Of(1.0)))
}

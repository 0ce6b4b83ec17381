package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRing_NextPrevInverse(t *testing.T) {
	for n := 1; n <= 6; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i * 10
		}
		for start := 0; start < n; start++ {
			r := NewRing(items...)
			for range start {
				r.Next()
			}
			before := r.Index()

			r.Next()
			r.Prev()
			assert.Equal(t, before, r.Index(), "next then prev, n=%d", n)

			r.Prev()
			r.Next()
			assert.Equal(t, before, r.Index(), "prev then next, n=%d", n)

			for range n {
				r.Next()
			}
			assert.Equal(t, before, r.Index(), "full cycle, n=%d", n)
		}
	}
}

func TestRing_Wraps(t *testing.T) {
	r := NewRing("win", "a", "b")

	r.Prev()
	cur, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, "b", cur)

	r.Next()
	cur, _ = r.Current()
	assert.Equal(t, "win", cur)
}

func TestRing_Reset(t *testing.T) {
	r := NewRing(1, 2, 3)
	r.Next()
	r.Next()
	r.Reset()
	assert.Equal(t, 0, r.Index())
}

func TestRing_Empty(t *testing.T) {
	r := NewRing[int]()
	r.Next()
	r.Prev()
	_, ok := r.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestRing_ItemsIsCopy(t *testing.T) {
	src := []int{1, 2}
	r := NewRing(src...)
	src[0] = 99

	items := r.Items()
	items[1] = 42
	assert.Equal(t, []int{1, 2}, r.Items())
}

package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTwelveProductsPageSizeFive(t *testing.T) {
	p := Compute(12, 5, 0)
	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)

	next, ok := NextOffset(p)
	assert.True(t, ok)
	assert.Equal(t, 5, next)

	p = Compute(12, 5, next)
	assert.Equal(t, 2, p.Number)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	next, ok = NextOffset(p)
	assert.True(t, ok)
	assert.Equal(t, 10, next)

	p = Compute(12, 5, next)
	assert.Equal(t, 3, p.Number)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	_, ok = NextOffset(p)
	assert.False(t, ok)
}

func TestComputeWindowInvariants(t *testing.T) {
	for _, total := range []int{0, 1, 4, 5, 6, 49, 50, 51} {
		for _, size := range []int{1, 5, 10} {
			for offset := 0; offset < total; offset += size {
				p := Compute(total, size, offset)
				assert.Equal(t, offset > 0, p.HasPrev, "total=%d size=%d offset=%d", total, size, offset)
				assert.Equal(t, offset+size < total, p.HasNext, "total=%d size=%d offset=%d", total, size, offset)
				assert.Equal(t, offset/size+1, p.Number)
			}
		}
	}
}

func TestComputeEmptySet(t *testing.T) {
	p := Compute(0, 5, 0)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 1, p.Number)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestComputeDefensiveInputs(t *testing.T) {
	p := Compute(10, 0, -3)
	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, 1, p.Limit)
	assert.Equal(t, 10, p.TotalPages)
}

func TestPrevOffsetClampsAtZero(t *testing.T) {
	assert.Equal(t, 0, PrevOffset(0, 5))
	assert.Equal(t, 0, PrevOffset(3, 5))
	assert.Equal(t, 5, PrevOffset(10, 5))
}

func TestStale(t *testing.T) {
	// Listing shrank from 12 to 7 items after the token was rendered.
	assert.True(t, Stale(7, 10))
	assert.False(t, Stale(7, 5))
	assert.False(t, Stale(0, 0))
}

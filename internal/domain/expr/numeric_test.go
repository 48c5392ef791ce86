package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt32(t *testing.T) {
	tests := []struct {
		in   float64
		want int32
	}{
		{0, 0},
		{-1, -1},
		{1.9, 1},
		{-1.9, -1},
		{4294967296 + 5, 5},
		{2147483648, -2147483648},
		{-2147483649, 2147483647},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToInt32(tt.in), "ToInt32(%v)", tt.in)
	}
}

func TestByteOf(t *testing.T) {
	assert.Equal(t, 255, ByteOf(-1))
	assert.Equal(t, 44, ByteOf(300))
	assert.Equal(t, 255, ByteOf(-1.5))
	assert.Equal(t, 0, ByteOf(256))
	assert.Equal(t, 0, ByteOf(math.NaN()))

	for s := -1024; s <= 1024; s++ {
		assert.Equal(t, s&0xFF, ByteOf(float64(s)))
	}
}

func TestHistory(t *testing.T) {
	var h History

	assert.Equal(t, 0.0, h.At(0))

	for i := 1; i <= HistorySize+2; i++ {
		h.Push(float64(i))
	}

	assert.Equal(t, float64(HistorySize+2), h.At(0))
	assert.Equal(t, float64(HistorySize+1), h.At(1))
	assert.Equal(t, 3.0, h.At(HistorySize-1))
	assert.True(t, math.IsNaN(h.At(HistorySize)))
	assert.True(t, math.IsNaN(h.At(-1)))

	h.Reset()
	assert.Equal(t, 0.0, h.At(0))
}

package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberConversions(t *testing.T) {
	i := NumberFromInt64(-42)
	assert.True(t, i.IsInt64())
	v, ok := i.AsInt64()
	assert.True(t, ok)
	assert.Equal(t, int64(-42), v)
	_, ok = i.AsUint64()
	assert.False(t, ok)

	u := NumberFromUint64(42)
	uv, ok := u.AsUint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(42), uv)
	iv, ok := u.AsInt64()
	assert.True(t, ok)
	assert.Equal(t, int64(42), iv)

	f := NumberFromFloat64(3.5)
	assert.True(t, f.IsFloat64())
	_, ok = f.AsInt64()
	assert.False(t, ok)
	assert.Equal(t, 3.5, f.AsFloat64())
}

func TestNumberEqualCrossRepresentation(t *testing.T) {
	assert.True(t, NumberFromInt64(7).Equal(NumberFromUint64(7)))
	assert.True(t, NumberFromInt64(7).Equal(NumberFromFloat64(7)))
	assert.False(t, NumberFromInt64(7).Equal(NumberFromFloat64(7.5)))
	assert.False(t, NumberFromInt64(-1).Equal(NumberFromUint64(1)))
}

func TestNumberUint64Overflow(t *testing.T) {
	big := NumberFromUint64(1 << 63)
	_, ok := big.AsInt64()
	assert.False(t, ok)
	assert.Equal(t, float64(1<<63), big.AsFloat64())
}

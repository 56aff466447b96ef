package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectInsertAndGetFirstOccurrence(t *testing.T) {
	o := NewEmptyObject()
	o.Insert("a", NewInt64(1))
	o.Insert("a", NewInt64(2))
	require.Equal(t, 2, o.Len())

	v, ok := o.Get("a")
	require.True(t, ok)
	n, _ := v.AsNumber()
	i, _ := n.AsInt64()
	assert.Equal(t, int64(1), i, "Get returns the first occurrence of a duplicated name")
}

func TestObjectSetCollapsesDuplicates(t *testing.T) {
	o := NewEmptyObject()
	o.Insert("a", NewInt64(1))
	o.Insert("a", NewInt64(2))
	o.Set("a", NewInt64(99))
	assert.Equal(t, 1, o.Len())
	v, ok := o.Get("a")
	require.True(t, ok)
	n, _ := v.AsNumber()
	i, _ := n.AsInt64()
	assert.Equal(t, int64(99), i)
}

func TestObjectRemoveAllOccurrences(t *testing.T) {
	o := NewEmptyObject()
	o.Insert("a", NewInt64(1))
	o.Insert("a", NewInt64(2))
	o.Insert("b", NewInt64(3))
	n := o.Remove("a")
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, o.Len())
	_, ok := o.Get("a")
	assert.False(t, ok)
}

func TestObjectEachPreservesOrder(t *testing.T) {
	o := NewEmptyObject()
	o.Insert("x", NewInt64(1))
	o.Insert("y", NewInt64(2))
	var keys []string
	o.Each(func(key string, v Value) bool {
		keys = append(keys, key)
		return true
	})
	assert.Equal(t, []string{"x", "y"}, keys)
}

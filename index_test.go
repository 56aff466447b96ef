package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexReadTotalOnMiss(t *testing.T) {
	root := NewObject(nil)
	assert.True(t, Equal(Null, IndexRead(root, Key("missing"))))
	assert.True(t, Equal(Null, IndexRead(root, Index(3))))
	assert.True(t, Equal(Null, IndexRead(NewInt64(1), Key("x"))))
}

func TestIndexReadNested(t *testing.T) {
	inner := NewObject(nil)
	inner.MustObject().Insert("b", NewInt64(7))
	root := NewObject(nil)
	root.MustObject().Insert("a", inner)

	got := IndexRead(root, Key("a"), Key("b"))
	n, ok := got.AsNumber()
	require.True(t, ok)
	i, _ := n.AsInt64()
	assert.Equal(t, int64(7), i)
}

func TestIndexWriteCreatesPath(t *testing.T) {
	var root Value = Null
	IndexWrite(&root, NewInt64(5), Key("a"), Key("b"))

	got := IndexRead(root, Key("a"), Key("b"))
	n, ok := got.AsNumber()
	require.True(t, ok)
	i, _ := n.AsInt64()
	assert.Equal(t, int64(5), i)
}

func TestIndexWritePadsArrayWithNull(t *testing.T) {
	var root Value = Null
	IndexWrite(&root, NewInt64(1), Index(3))

	arr := root.MustArray()
	require.Equal(t, 4, arr.Len())
	v0, _ := arr.At(0)
	assert.True(t, Equal(Null, v0))
	v3, _ := arr.At(3)
	n, _ := v3.AsNumber()
	i, _ := n.AsInt64()
	assert.Equal(t, int64(1), i)
}

func TestIndexWriteReplacesMismatchedKind(t *testing.T) {
	root := NewInt64(1)
	IndexWrite(&root, NewInt64(2), Key("a"))
	assert.True(t, root.IsObject())
}

package json

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestEncodeRoundTripCompact(t *testing.T) {
	v, err := ParseString(`{"a":[1,2,3],"b":"hi","c":null,"d":true}`, DecodeOptions{})
	require.NoError(t, err)
	out, err := EncodeToString(v, EncodeOptions{})
	require.NoError(t, err)

	v2, err := ParseString(out, DecodeOptions{})
	require.NoError(t, err)
	assert.True(t, Equal(v, v2), "round-tripped value diverged:\n%s", spew.Sdump(v2))
}

func TestEncodeIndentedProducesNewlines(t *testing.T) {
	v, err := ParseString(`{"a":1}`, DecodeOptions{})
	require.NoError(t, err)
	out, err := EncodeToString(v, EncodeOptions{Indent: "  "})
	require.NoError(t, err)
	assert.Contains(t, out, "\n")
	assert.Contains(t, out, `"a": 1`)
}

func TestEncodeFloatShortestRoundTrip(t *testing.T) {
	v := NewFloat64(0.1)
	out, err := EncodeToString(v, EncodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, "0.1", out)
}

func TestEncodeAsciiOnlyEscapesNonASCII(t *testing.T) {
	v := NewString("café")
	out, err := EncodeToString(v, EncodeOptions{AsciiOnly: true})
	require.NoError(t, err)
	assert.Equal(t, "\"caf\\u00e9\"", out)
}

func TestEncodeToWrapsWriterErrorAsIoError(t *testing.T) {
	wantErr := errors.New("disk full")
	err := EncodeTo(failingWriter{err: wantErr}, NewInt64(1), EncodeOptions{})
	require.Error(t, err)
	var ioErr *IoError
	require.ErrorAs(t, err, &ioErr)
	assert.ErrorIs(t, err, Error)
	assert.ErrorIs(t, err, wantErr)
}

func TestEncodeToBytesMatchesString(t *testing.T) {
	v := NewArrayFrom(NewInt64(1), NewInt64(2))
	s, err := EncodeToString(NewArray(v), EncodeOptions{})
	require.NoError(t, err)
	b, err := EncodeToBytes(NewArray(v), EncodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, s, string(b))
}

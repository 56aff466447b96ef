package json

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ylongjson/json/jsontext"
)

func TestTokenProducerMatchesTreeEncode(t *testing.T) {
	v, err := ParseString(`{"a":[1,2,"x"],"b":null}`, DecodeOptions{})
	require.NoError(t, err)

	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf, jsontext.Options{})
	require.NoError(t, TokenProducer{V: v}.Produce(NewEmitter(enc)))

	want, err := EncodeToString(v, EncodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, want, buf.String())
}

func TestTokenConsumerMatchesParse(t *testing.T) {
	input := `{"a":[1,2,"x"],"b":null}`
	want, err := ParseString(input, DecodeOptions{})
	require.NoError(t, err)

	dec := jsontext.NewDecoderBytes([]byte(input), jsontext.Options{})
	var tc TokenConsumer
	require.NoError(t, tc.Consume(NewSource(dec)))
	assert.True(t, Equal(want, tc.V))
}

func TestSourceSkipValue(t *testing.T) {
	dec := jsontext.NewDecoderBytes([]byte(`[1,[2,3],{"x":4},"y"]`), jsontext.Options{})
	s := NewSource(dec)
	require.NoError(t, s.BeginArray())

	more, err := s.MoreArray()
	require.NoError(t, err)
	require.True(t, more)
	require.NoError(t, s.SkipValue()) // skip 1

	more, err = s.MoreArray()
	require.NoError(t, err)
	require.True(t, more)
	require.NoError(t, s.SkipValue()) // skip [2,3]

	more, err = s.MoreArray()
	require.NoError(t, err)
	require.True(t, more)
	require.NoError(t, s.SkipValue()) // skip {"x":4}

	more, err = s.MoreArray()
	require.NoError(t, err)
	require.True(t, more)
	str, err := s.NextString()
	require.NoError(t, err)
	assert.Equal(t, "y", str)

	more, err = s.MoreArray()
	require.NoError(t, err)
	assert.False(t, more)
}

func TestEmitterWellFormedness(t *testing.T) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf, jsontext.Options{})
	e := NewEmitter(enc)
	require.NoError(t, e.BeginObject())
	require.NoError(t, e.Key("k"))
	require.NoError(t, e.Int64(1))
	require.NoError(t, e.EndObject())
	assert.Equal(t, `{"k":1}`, buf.String())
}

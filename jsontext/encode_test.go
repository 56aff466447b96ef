package jsontext

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderCompactRoundTrip(t *testing.T) {
	const input = `{"a":1,"b":[true,null,"x"]}`
	d, err := NewDecoder(strings.NewReader(input), Options{})
	require.NoError(t, err)
	var buf bytes.Buffer
	enc := NewEncoder(&buf, Options{})
	for {
		tok, err := d.ReadToken()
		if err != nil {
			break
		}
		require.NoError(t, enc.WriteToken(tok))
	}
	assert.Equal(t, input, buf.String())
}

func TestEncoderIndent(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, Options{Indent: "  "})
	require.NoError(t, enc.WriteToken(ObjectStart))
	require.NoError(t, enc.WriteToken(String("a")))
	require.NoError(t, enc.WriteToken(Int(1)))
	require.NoError(t, enc.WriteToken(ObjectEnd))
	assert.Equal(t, "{\n  \"a\": 1\n}", buf.String())
}

func TestEncoderEmptyContainersStayInline(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, Options{Indent: "  "})
	require.NoError(t, enc.WriteToken(ObjectStart))
	require.NoError(t, enc.WriteToken(String("a")))
	require.NoError(t, enc.WriteToken(ArrayStart))
	require.NoError(t, enc.WriteToken(ArrayEnd))
	require.NoError(t, enc.WriteToken(ObjectEnd))
	assert.Equal(t, "{\n  \"a\": []\n}", buf.String())
}

func TestEncoderEscapesControlAndQuote(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, Options{})
	require.NoError(t, enc.WriteToken(String("a\"\\\n\tb")))
	assert.Equal(t, `"a\"\\\n\tb"`, buf.String())
}

func TestEncoderFloatShortestForm(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, Options{})
	require.NoError(t, enc.WriteToken(Float(0.1)))
	assert.Equal(t, "0.1", buf.String())
}

func TestEncoderRejectsUnbalancedClose(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, Options{})
	require.NoError(t, enc.WriteToken(ArrayStart))
	err := enc.WriteToken(ObjectEnd)
	assert.Error(t, err)
}

func TestValueCompactAndIndent(t *testing.T) {
	var compact bytes.Buffer
	require.NoError(t, Compact(&compact, Value(`{ "a" : 1 , "b" : [ 1 , 2 ] }`), Options{}))
	assert.Equal(t, `{"a":1,"b":[1,2]}`, compact.String())

	var indented bytes.Buffer
	require.NoError(t, Indent(&indented, Value(`{"a":1}`), "", "  ", Options{}))
	assert.Equal(t, "{\n  \"a\": 1\n}", indented.String())
}

func TestValueCompactRejectsTrailingData(t *testing.T) {
	var buf bytes.Buffer
	err := Compact(&buf, Value(`1 2`), Options{})
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, ErrorKindTrailingData, synErr.Kind)
}

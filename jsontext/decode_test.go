package jsontext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectTokens(t *testing.T, input string) []Token {
	t.Helper()
	d, err := NewDecoder(strings.NewReader(input), Options{})
	require.NoError(t, err)
	var toks []Token
	for {
		tok, err := d.ReadToken()
		if err != nil {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestDecoderReadTokenScalars(t *testing.T) {
	toks := collectTokens(t, `null true false 1 "a"`)
	require.Len(t, toks, 5)
	assert.Equal(t, KindNull, toks[0].Kind())
	assert.True(t, toks[1].Bool())
	assert.False(t, toks[2].Bool())
	assert.Equal(t, int64(1), toks[3].Int())
	assert.Equal(t, "a", toks[4].String())
}

func TestDecoderReadTokenObject(t *testing.T) {
	toks := collectTokens(t, `{"a":1,"b":[true,null]}`)
	kinds := make([]Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind()
	}
	assert.Equal(t, []Kind{
		KindObjectStart, KindString, KindNumber, KindString,
		KindArrayStart, KindBool, KindNull, KindArrayEnd,
		KindObjectEnd,
	}, kinds)
}

func TestDecoderRejectsTrailingComma(t *testing.T) {
	d, err := NewDecoder(strings.NewReader(`[1,]`), Options{})
	require.NoError(t, err)
	_, err = d.ReadToken() // [
	require.NoError(t, err)
	_, err = d.ReadToken() // 1
	require.NoError(t, err)
	_, err = d.ReadToken() // should fail: ']' where a value is expected after comma
	assert.Error(t, err)
}

func TestDecoderRejectsMismatchedDelim(t *testing.T) {
	d, err := NewDecoder(strings.NewReader(`[1}`), Options{})
	require.NoError(t, err)
	_, err = d.ReadToken()
	require.NoError(t, err)
	_, err = d.ReadToken()
	require.NoError(t, err)
	_, err = d.ReadToken()
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, ErrorKindMismatchedDelim, synErr.Kind)
}

func TestDecoderMaxDepth(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 5; i++ {
		sb.WriteByte('[')
	}
	d, err := NewDecoder(strings.NewReader(sb.String()), Options{MaxDepth: 3})
	require.NoError(t, err)
	var lastErr error
	for i := 0; i < 10; i++ {
		if _, lastErr = d.ReadToken(); lastErr != nil {
			break
		}
	}
	require.Error(t, lastErr)
	var synErr *SyntaxError
	require.ErrorAs(t, lastErr, &synErr)
	assert.Equal(t, ErrorKindDepthExceeded, synErr.Kind)
}

func TestDecoderSurrogatePair(t *testing.T) {
	toks := collectTokens(t, "\"\\ud83d\\ude00\"")
	require.Len(t, toks, 1)
	assert.Equal(t, "😀", toks[0].String())
}

func TestDecoderInvalidSurrogate(t *testing.T) {
	d, err := NewDecoder(strings.NewReader(`"\ud800"`), Options{})
	require.NoError(t, err)
	_, err = d.ReadToken()
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, ErrorKindInvalidSurrogate, synErr.Kind)
}

func TestDecoderReadValueRaw(t *testing.T) {
	d, err := NewDecoder(strings.NewReader(`{"a":[1,2,3]} `), Options{})
	require.NoError(t, err)
	v, err := d.ReadValue()
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,2,3]}`, string(v))
}

func TestValueKind(t *testing.T) {
	assert.Equal(t, KindObjectStart, Value(`{"a":1}`).Kind())
	assert.Equal(t, KindArrayStart, Value(`[1]`).Kind())
	assert.Equal(t, KindString, Value(`"x"`).Kind())
	assert.Equal(t, KindNumber, Value(`-1.5`).Kind())
	assert.Equal(t, KindBool, Value(`true`).Kind())
	assert.Equal(t, KindNull, Value(`null`).Kind())
}

func TestValueIsValid(t *testing.T) {
	assert.True(t, Value(`{"a":1}`).IsValid(Options{}))
	assert.False(t, Value(`{"a":1} extra`).IsValid(Options{}))
	assert.False(t, Value(`{"a":}`).IsValid(Options{}))
}

func TestDecoderCheckEOF(t *testing.T) {
	d := NewDecoderBytes([]byte(`1  `), Options{})
	_, err := d.ReadToken()
	require.NoError(t, err)
	assert.NoError(t, d.CheckEOF())

	d = NewDecoderBytes([]byte(`1 2`), Options{})
	_, err = d.ReadToken()
	require.NoError(t, err)
	assert.Error(t, d.CheckEOF())
}

func TestTokenIntegerRepresentation(t *testing.T) {
	toks := collectTokens(t, `7 -7 1.5`)
	require.Len(t, toks, 3)
	assert.True(t, toks[0].IsIntegral())
	assert.True(t, toks[0].Negative())
	assert.True(t, toks[1].IsIntegral())
	assert.True(t, toks[1].Negative())
	assert.False(t, toks[2].IsIntegral())
}

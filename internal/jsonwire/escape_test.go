package jsonwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeEscapeRunesCachedTables(t *testing.T) {
	tests := []struct {
		name       string
		html, js   bool
		wantEscape byte
	}{
		{"canonical", false, false, '<'},
		{"html", true, false, '<'},
		{"js", false, true, '<'},
		{"htmljs", true, true, '<'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := MakeEscapeRunes(tt.html, tt.js, nil)
			assert.Equal(t, !tt.html && !tt.js, e.IsCanonical())
			assert.Equal(t, tt.html, e.needEscapeASCIIAsUTF16(tt.wantEscape))
		})
	}
}

func TestEscapeASCIIControlCharsAlwaysEscape(t *testing.T) {
	e := MakeEscapeRunes(false, false, nil)
	for c := byte(0); c < ' '; c++ {
		assert.True(t, e.needEscapeASCII(c), "control byte %#x must escape", c)
	}
	assert.True(t, e.needEscapeASCII('"'))
	assert.True(t, e.needEscapeASCII('\\'))
	assert.False(t, e.needEscapeASCII('a'))
}

func TestEscapeHTMLBytes(t *testing.T) {
	canonical := MakeEscapeRunes(false, false, nil)
	html := MakeEscapeRunes(true, false, nil)
	for _, c := range []byte{'<', '>', '&'} {
		assert.False(t, canonical.needEscapeASCII(c))
		assert.True(t, html.needEscapeASCII(c))
		assert.True(t, html.needEscapeASCIIAsUTF16(c))
	}
}

func TestEscapeJSSeparators(t *testing.T) {
	js := MakeEscapeRunes(false, true, nil)
	plain := MakeEscapeRunes(false, false, nil)
	assert.True(t, js.needEscapeRune(' '))
	assert.True(t, js.needEscapeRune(' '))
	assert.False(t, plain.needEscapeRune(' '))
}

func TestEscapeCustomFunc(t *testing.T) {
	onlyE := MakeEscapeRunes(false, false, func(r rune) bool { return r == 'e' })
	assert.True(t, onlyE.needEscapeRune('e'))
	assert.False(t, onlyE.needEscapeRune('a'))
	assert.False(t, onlyE.IsCanonical())
}

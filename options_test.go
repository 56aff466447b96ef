package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeOptionsTextOptionsMapping(t *testing.T) {
	o := DecodeOptions{AllowInvalidUTF8: true, MaxDepth: 7}
	to := o.textOptions()
	assert.True(t, to.AllowInvalidUTF8)
	assert.Equal(t, 7, to.MaxDepth)
}

func TestEncodeOptionsTextOptionsMapping(t *testing.T) {
	o := EncodeOptions{
		AsciiOnly:    true,
		EscapeHTML:   true,
		EscapeJS:     true,
		Indent:       "  ",
		IndentPrefix: ">",
		MaxDepth:     3,
	}
	to := o.textOptions()
	assert.True(t, to.AsciiOnly)
	assert.True(t, to.EscapeHTML)
	assert.True(t, to.EscapeJS)
	assert.Equal(t, "  ", to.Indent)
	assert.Equal(t, ">", to.IndentPrefix)
	assert.Equal(t, 3, to.MaxDepth)
}

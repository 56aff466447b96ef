package json

import "github.com/ylongjson/json/jsontext"

// DecodeOptions configures ParseBytes, ParseString, ParseReader,
// ParseFile and the Consumer entry points.
type DecodeOptions struct {
	// AllowInvalidUTF8 permits invalid UTF-8 in JSON strings, replacing
	// offending bytes with U+FFFD instead of failing the parse.
	AllowInvalidUTF8 bool

	// MaxDepth bounds array/object nesting depth. Zero selects the
	// package default (128); negative disables the limit.
	MaxDepth int

	// RejectDuplicateNames makes a repeated object member name a parse
	// error instead of the default behavior of accepting and retaining
	// every occurrence (spec §4.1, DuplicateKey resolution).
	RejectDuplicateNames bool

	// AsciiOnly rejects any raw byte >= 0x80 or any \uXXXX-decoded code
	// point > 0x7F while parsing strings (spec §4.2.1's ascii_only flag).
	AsciiOnly bool

	// TrackPosition computes Line and Column on a returned *ParseError,
	// at the cost of an extra scan over the consumed prefix.
	TrackPosition bool
}

func (o DecodeOptions) textOptions() jsontext.Options {
	return jsontext.Options{
		AllowInvalidUTF8: o.AllowInvalidUTF8,
		MaxDepth:         o.MaxDepth,
		AsciiOnly:        o.AsciiOnly,
	}
}

// EncodeOptions configures EncodeToBytes, EncodeToString, EncodeTo,
// EncodeToFile and the Producer entry points.
type EncodeOptions struct {
	// AllowInvalidUTF8 permits encoding strings containing invalid
	// UTF-8, substituting U+FFFD, instead of returning an error.
	AllowInvalidUTF8 bool

	// MaxDepth bounds array/object nesting depth the encoder will
	// emit without erroring. Zero selects the package default.
	MaxDepth int

	// AsciiOnly escapes every non-ASCII rune as \uXXXX.
	AsciiOnly bool

	// EscapeHTML escapes '<', '>', and '&', making the output safe to
	// embed in an HTML <script> element.
	EscapeHTML bool

	// EscapeJS additionally escapes U+2028 and U+2029.
	EscapeJS bool

	// Indent, if non-empty, requests indented output using this
	// string per nesting level instead of the default compact form.
	Indent string

	// IndentPrefix is written at the start of every indented line.
	IndentPrefix string
}

func (o EncodeOptions) textOptions() jsontext.Options {
	return jsontext.Options{
		AllowInvalidUTF8: o.AllowInvalidUTF8,
		MaxDepth:         o.MaxDepth,
		AsciiOnly:        o.AsciiOnly,
		EscapeHTML:       o.EscapeHTML,
		EscapeJS:         o.EscapeJS,
		Indent:           o.Indent,
		IndentPrefix:     o.IndentPrefix,
	}
}

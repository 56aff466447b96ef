package jsontext

import (
	"bytes"
)

// Value holds the raw, unparsed bytes of exactly one JSON value (which
// may itself contain nested arrays and objects). It is produced by
// Decoder.ReadValue and consumed by Encoder.WriteValue, letting callers
// pass a subtree through the codec without paying to build and tear
// down a full Value tree (the root package's tagged union) for data
// they only need to relocate, not inspect.
type Value []byte

// Kind reports the outermost JSON kind of v, judged from its first
// non-whitespace byte alone, or KindInvalid if that byte cannot start a
// value or v is empty. It does not validate the rest of v.
func (v Value) Kind() Kind {
	for _, c := range v {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '"':
			return KindString
		case '{':
			return KindObjectStart
		case '[':
			return KindArrayStart
		case 't', 'f':
			return KindBool
		case 'n':
			return KindNull
		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return KindNumber
		default:
			return KindInvalid
		}
	}
	return KindInvalid
}

// IsValid reports whether v holds exactly one well-formed JSON value
// with no trailing data.
func (v Value) IsValid(opts Options) bool {
	d := NewDecoderBytes(v, opts)
	if _, err := d.ReadValue(); err != nil {
		return false
	}
	d.skipWS()
	return d.pos == len(d.buf)
}

// Compact reformats v into dst with all insignificant whitespace
// removed. It does not reorder object members. Because v is re-encoded
// through Encoder.WriteValue, numbers are rewritten in their shortest
// form (1.0 becomes 1, -0 becomes 0) and string escapes are normalized.
func Compact(dst *bytes.Buffer, v Value, opts Options) error {
	return reformat(dst, v, Options{AllowInvalidUTF8: opts.AllowInvalidUTF8, MaxDepth: opts.MaxDepth})
}

// Indent reformats v into dst using the given indent string per
// nesting level, each line prefixed by prefix.
func Indent(dst *bytes.Buffer, v Value, prefix, indent string, opts Options) error {
	o := opts
	o.Indent = indent
	o.IndentPrefix = prefix
	return reformat(dst, v, o)
}

// reformat decodes exactly one top-level value from v and re-encodes it
// into dst. Using ReadValue (not a ReadToken loop run to io.EOF) matters:
// the decoder's top-level virtual array happily accepts multiple
// un-delimited top-level values (state.go), so a token loop would
// silently reformat "1 2" as "12" instead of reporting the trailing
// data that IsValid (and spec.md's TrailingGarbage property) require.
func reformat(dst *bytes.Buffer, v Value, opts Options) error {
	dec := NewDecoderBytes(v, Options{AllowInvalidUTF8: opts.AllowInvalidUTF8, MaxDepth: opts.MaxDepth})
	raw, err := dec.ReadValue()
	if err != nil {
		return err
	}
	if err := dec.CheckEOF(); err != nil {
		return err
	}
	enc := NewEncoder(dst, opts)
	return enc.WriteValue(raw)
}

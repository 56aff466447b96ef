// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontext

import (
	"bytes"
	"io"

	"github.com/ylongjson/json/internal/jsonwire"
)

// DefaultMaxDepth is the nesting depth enforced when Options.MaxDepth
// is left at zero (spec §4.3.3).
const DefaultMaxDepth = 128

// Options configures a Decoder or Encoder. A zero Options is valid and
// selects the package defaults.
type Options struct {
	// AllowInvalidUTF8 permits invalid UTF-8 bytes inside JSON strings,
	// replacing each offending byte with U+FFFD instead of erroring.
	// A \uXXXX-escaped lone surrogate is still rejected.
	AllowInvalidUTF8 bool

	// MaxDepth bounds the array/object nesting depth a Decoder accepts
	// and an Encoder emits. Zero selects DefaultMaxDepth; a negative
	// value disables the limit.
	MaxDepth int

	// EscapeHTML escapes '<', '>', and '&' in encoded strings.
	EscapeHTML bool

	// EscapeJS additionally escapes U+2028 and U+2029, which some
	// JavaScript evaluators treat as line terminators even inside a
	// string literal.
	EscapeJS bool

	// Indent, if non-empty, selects indented output using this string
	// repeated once per nesting level. Empty (the default) produces
	// compact output with no insignificant whitespace.
	Indent string

	// IndentPrefix is written at the start of every indented line.
	IndentPrefix string

	// AsciiOnly escapes every non-ASCII rune as \uXXXX, producing
	// output safe for transports that mishandle raw UTF-8.
	AsciiOnly bool
}

func (o Options) maxDepth() int {
	if o.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	if o.MaxDepth < 0 {
		return 0
	}
	return o.MaxDepth
}

// Decoder reads a sequence of JSON tokens and values from an input
// byte stream. ReadToken implements the pushdown parse documented in
// spec §4.3: a single explicit state machine over byte classes, not
// recursive descent, which enforces MaxDepth. ReadValue measures a
// raw value with a recursive scan that does not apply MaxDepth, so
// deeply nested input given to it recurses the Go call stack.
type Decoder struct {
	buf  []byte
	pos  int
	sm   stateMachine
	opts Options
	strs stringCache
}

// NewDecoder reads r to completion and returns a Decoder over its
// contents. Incremental decoding across not-yet-available buffers is
// out of scope (spec Non-goals); the full input is read up front.
func NewDecoder(r io.Reader, opts Options) (*Decoder, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, &SyntaxError{Kind: ErrorKindUnexpectedEOF, msg: err.Error()}
	}
	return NewDecoderBytes(buf, opts), nil
}

// NewDecoderBytes returns a Decoder over buf without copying it. The
// caller must not mutate buf while the Decoder is in use.
func NewDecoderBytes(buf []byte, opts Options) *Decoder {
	buf = stripBOM(buf)
	d := &Decoder{buf: buf, opts: opts}
	d.sm.init(opts.maxDepth())
	return d
}

func stripBOM(b []byte) []byte {
	const bom = "\xef\xbb\xbf"
	if bytes.HasPrefix(b, []byte(bom)) {
		return b[len(bom):]
	}
	return b
}

// InputOffset reports how many input bytes have been consumed so far.
func (d *Decoder) InputOffset() int64 { return int64(d.pos) }

// StackDepth reports the current nesting depth (1 at the top level).
func (d *Decoder) StackDepth() int { return d.sm.depth() }

// CheckEOF reports whether only whitespace remains in the input,
// returning a trailing-data error otherwise. Callers that parse a
// single top-level value use this after consuming it.
func (d *Decoder) CheckEOF() error {
	d.skipWS()
	if d.pos != len(d.buf) {
		return errTrailingData.withOffset(int64(d.pos))
	}
	return nil
}

func (d *Decoder) skipWS() {
	for d.pos < len(d.buf) {
		switch d.buf[d.pos] {
		case ' ', '\t', '\r', '\n':
			d.pos++
		default:
			return
		}
	}
}

// PeekKind reports the kind of the next token without consuming it.
// A ':' or ',' that the grammar expects before that token is looked
// past but left in place; ReadToken or ReadValue consumes it.
func (d *Decoder) PeekKind() (Kind, error) {
	d.skipWS()
	i := d.pos
	if delim := d.sm.needDelim(KindInvalid); delim != 0 && i < len(d.buf) && d.buf[i] == delim {
		d.pos++
		d.skipWS()
		i, d.pos = d.pos, i
		if i < len(d.buf) && (d.buf[i] == ']' || d.buf[i] == '}') {
			return KindInvalid, newInvalidCharacterError(d.buf[i], "after "+quoteChar(delim)).withOffset(int64(i))
		}
	}
	if i >= len(d.buf) {
		return KindInvalid, io.EOF
	}
	switch c := d.buf[i]; {
	case c == '"':
		return KindString, nil
	case c == '{':
		return KindObjectStart, nil
	case c == '}':
		return KindObjectEnd, nil
	case c == '[':
		return KindArrayStart, nil
	case c == ']':
		return KindArrayEnd, nil
	case c == 'n':
		return KindNull, nil
	case c == 't', c == 'f':
		return KindBool, nil
	case c == '-' || (c >= '0' && c <= '9'):
		return KindNumber, nil
	default:
		return KindInvalid, newInvalidCharacterError(c, "looking for beginning of value").withOffset(int64(i))
	}
}

func (d *Decoder) errAt(err error) error {
	if se, ok := err.(*SyntaxError); ok && se.Offset == 0 {
		return se.withOffset(int64(d.pos))
	}
	return err
}

// ReadToken consumes and returns the next token in the stream.
func (d *Decoder) ReadToken() (Token, error) {
	kind, err := d.PeekKind()
	if err != nil {
		return Token{}, err
	}
	if delim := d.sm.needDelim(kind); delim != 0 {
		if err := d.expectDelim(delim, kind); err != nil {
			return Token{}, err
		}
	}
	switch kind {
	case KindObjectStart:
		if err := d.sm.pushObject(); err != nil {
			return Token{}, d.errAt(err)
		}
		d.pos++
		return ObjectStart, nil
	case KindObjectEnd:
		if err := d.sm.popObject(); err != nil {
			return Token{}, d.errAt(err)
		}
		d.pos++
		return ObjectEnd, nil
	case KindArrayStart:
		if err := d.sm.pushArray(); err != nil {
			return Token{}, d.errAt(err)
		}
		d.pos++
		return ArrayStart, nil
	case KindArrayEnd:
		if err := d.sm.popArray(); err != nil {
			return Token{}, d.errAt(err)
		}
		d.pos++
		return ArrayEnd, nil
	case KindNull:
		if err := d.consumeLiteral("null"); err != nil {
			return Token{}, err
		}
		if err := d.sm.appendLiteral(); err != nil {
			return Token{}, d.errAt(err)
		}
		return Null, nil
	case KindBool:
		var lit string
		var tok Token
		if d.buf[d.pos] == 't' {
			lit, tok = "true", True
		} else {
			lit, tok = "false", False
		}
		if err := d.consumeLiteral(lit); err != nil {
			return Token{}, err
		}
		if err := d.sm.appendLiteral(); err != nil {
			return Token{}, d.errAt(err)
		}
		return tok, nil
	case KindString:
		s, err := d.readString()
		if err != nil {
			return Token{}, err
		}
		if err := d.sm.appendString(); err != nil {
			return Token{}, d.errAt(err)
		}
		return String(s), nil
	case KindNumber:
		tok, err := d.readNumber()
		if err != nil {
			return Token{}, err
		}
		if err := d.sm.appendNumber(); err != nil {
			return Token{}, d.errAt(err)
		}
		return tok, nil
	default:
		return Token{}, d.errAt(newInvalidCharacterError(d.buf[d.pos], "looking for beginning of value"))
	}
}

// expectDelim consumes an expected ':' or ',' (skipping whitespace
// around it) before a token of kind next, or errors if it is absent.
func (d *Decoder) expectDelim(want byte, next Kind) error {
	save := d.pos
	d.skipWS()
	if d.pos < len(d.buf) && d.buf[d.pos] == want {
		d.pos++
		d.skipWS()
		return nil
	}
	d.pos = save
	return d.errAt(d.sm.checkDelim(0, next))
}

func (d *Decoder) consumeLiteral(lit string) error {
	if d.pos+len(lit) > len(d.buf) || string(d.buf[d.pos:d.pos+len(lit)]) != lit {
		return d.errAt(newInvalidCharacterError(d.buf[d.pos], "in literal "+lit))
	}
	d.pos += len(lit)
	return nil
}

func (d *Decoder) readString() (string, error) {
	n, err := jsonwire.ConsumeString(d.buf[d.pos:], d.opts.AllowInvalidUTF8, d.opts.AsciiOnly)
	if err != nil {
		return "", d.errAt(wireError(err, int64(d.pos), n))
	}
	out, _, err := jsonwire.Unescape(nil, d.buf[d.pos:d.pos+n], d.opts.AllowInvalidUTF8, d.opts.AsciiOnly)
	if err != nil {
		return "", d.errAt(wireError(err, int64(d.pos), 0))
	}
	d.pos += n
	return d.strs.make(out), nil
}

func (d *Decoder) readNumber() (Token, error) {
	n, err := jsonwire.ConsumeNumber(d.buf[d.pos:])
	if err != nil {
		return Token{}, d.errAt(wireError(err, int64(d.pos), n))
	}
	lit := d.buf[d.pos : d.pos+n]
	tok, perr := parseNumberToken(lit)
	if perr != nil {
		return Token{}, d.errAt(&SyntaxError{Kind: ErrorKindInvalidNumber, Offset: int64(d.pos), msg: perr.Error()})
	}
	d.pos += n
	return tok, nil
}

// ReadValue consumes and returns the raw, unparsed bytes of the next
// JSON value (object and array contents included), without decoding
// string escapes or numeric literals.
func (d *Decoder) ReadValue() (Value, error) {
	kind, err := d.PeekKind()
	if err != nil {
		return nil, err
	}
	if delim := d.sm.needDelim(kind); delim != 0 {
		if err := d.expectDelim(delim, kind); err != nil {
			return nil, err
		}
	}
	start := d.pos
	if err := d.skipValue(); err != nil {
		return nil, err
	}
	raw := append(Value(nil), d.buf[start:d.pos]...)
	switch kind {
	case KindString:
		if err := d.sm.appendString(); err != nil {
			return nil, d.errAt(err)
		}
	case KindNumber:
		if err := d.sm.appendNumber(); err != nil {
			return nil, d.errAt(err)
		}
	default:
		if err := d.sm.appendLiteral(); err != nil {
			return nil, d.errAt(err)
		}
	}
	return raw, nil
}

// skipValue advances d.pos past one complete JSON value, recursively
// for arrays and objects, without going through the token-level state
// machine (used only to measure a raw value's span).
func (d *Decoder) skipValue() error {
	d.skipWS()
	if d.pos < len(d.buf) && (d.buf[d.pos] == ',' || d.buf[d.pos] == ':') {
		return newInvalidCharacterError(d.buf[d.pos], "looking for beginning of value").withOffset(int64(d.pos))
	}
	kind, err := d.PeekKind()
	if err != nil {
		return err
	}
	switch kind {
	case KindNull:
		return d.consumeLiteral("null")
	case KindBool:
		if d.buf[d.pos] == 't' {
			return d.consumeLiteral("true")
		}
		return d.consumeLiteral("false")
	case KindString:
		n, err := jsonwire.ConsumeString(d.buf[d.pos:], d.opts.AllowInvalidUTF8, d.opts.AsciiOnly)
		if err != nil {
			return d.errAt(wireError(err, int64(d.pos), n))
		}
		d.pos += n
		return nil
	case KindNumber:
		n, err := jsonwire.ConsumeNumber(d.buf[d.pos:])
		if err != nil {
			return d.errAt(wireError(err, int64(d.pos), n))
		}
		d.pos += n
		return nil
	case KindArrayStart:
		return d.skipContainer('[', ']')
	case KindObjectStart:
		return d.skipContainer('{', '}')
	default:
		return d.errAt(newInvalidCharacterError(d.buf[d.pos], "looking for beginning of value"))
	}
}

func (d *Decoder) skipContainer(open, closeByte byte) error {
	d.pos++ // consume open
	d.skipWS()
	isObject := open == '{'
	first := true
	for {
		if d.pos >= len(d.buf) {
			return d.errAt(&SyntaxError{Kind: ErrorKindUnexpectedEOF, msg: "unexpected end of input"})
		}
		if d.buf[d.pos] == closeByte {
			d.pos++
			return nil
		}
		if !first {
			if d.buf[d.pos] != ',' {
				return d.errAt(errMissingComma.withOffset(int64(d.pos)))
			}
			d.pos++
			d.skipWS()
		}
		first = false
		if isObject {
			if d.pos >= len(d.buf) || d.buf[d.pos] != '"' {
				return d.errAt(errMissingName.withOffset(int64(d.pos)))
			}
			n, err := jsonwire.ConsumeString(d.buf[d.pos:], d.opts.AllowInvalidUTF8, d.opts.AsciiOnly)
			if err != nil {
				return d.errAt(wireError(err, int64(d.pos), n))
			}
			d.pos += n
			d.skipWS()
			if d.pos >= len(d.buf) || d.buf[d.pos] != ':' {
				return d.errAt(errMissingColon.withOffset(int64(d.pos)))
			}
			d.pos++
			d.skipWS()
		}
		if err := d.skipValue(); err != nil {
			return err
		}
		d.skipWS()
	}
}

// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontext

import (
	"io"
	"strconv"

	"github.com/ylongjson/json/internal/jsonwire"
)

// Encoder writes a sequence of JSON tokens and values to an output
// stream, enforcing the same grammar as Decoder via a shared
// stateMachine so that a caller cannot emit a structurally invalid
// document (spec §4.3.4, compact/indented encoder).
type Encoder struct {
	w    io.Writer
	sm   stateMachine
	opts Options
	esc  *jsonwire.EscapeRunes

	needIndent bool
}

// NewEncoder returns an Encoder that writes to w per opts.
func NewEncoder(w io.Writer, opts Options) *Encoder {
	e := &Encoder{w: w, opts: opts}
	e.sm.init(opts.maxDepth())
	var fn func(rune) bool
	if opts.AsciiOnly {
		fn = func(r rune) bool { return r >= 0x80 }
	}
	e.esc = jsonwire.MakeEscapeRunes(opts.EscapeHTML, opts.EscapeJS, fn)
	return e
}

func (e *Encoder) indenting() bool { return e.opts.Indent != "" }

func (e *Encoder) writeDelim(next Kind) error {
	delim := e.sm.needDelim(next)
	if delim != 0 {
		if _, err := e.w.Write([]byte{delim}); err != nil {
			return err
		}
	}
	if delim == ':' {
		if e.indenting() {
			_, err := e.w.Write([]byte{' '})
			return err
		}
		return nil
	}
	if e.indenting() && e.sm.depth() == 1 && e.sm.last().length() == 0 {
		_, err := io.WriteString(e.w, e.opts.IndentPrefix)
		return err
	}
	if e.indenting() && next != KindObjectEnd && next != KindArrayEnd {
		return e.writeNewlineIndent()
	}
	return nil
}

func (e *Encoder) writeNewlineIndent() error {
	depth := e.sm.depth() - 1
	if depth < 0 {
		depth = 0
	}
	buf := make([]byte, 0, 1+len(e.opts.IndentPrefix)+depth*len(e.opts.Indent))
	buf = append(buf, '\n')
	buf = append(buf, e.opts.IndentPrefix...)
	for i := 0; i < depth; i++ {
		buf = append(buf, e.opts.Indent...)
	}
	_, err := e.w.Write(buf)
	return err
}

// WriteToken writes a single token, validating it against the current
// grammar state.
func (e *Encoder) WriteToken(t Token) error {
	kind := t.Kind()
	switch kind {
	case KindObjectStart:
		if err := e.pushDelimWrite(kind, "{"); err != nil {
			return err
		}
		return e.sm.pushObject()
	case KindObjectEnd:
		if !e.sm.last().isObject() {
			return errMismatchDelim
		}
		if err := e.closeContainer(kind, "}"); err != nil {
			return err
		}
		return e.sm.popObject()
	case KindArrayStart:
		if err := e.pushDelimWrite(kind, "["); err != nil {
			return err
		}
		return e.sm.pushArray()
	case KindArrayEnd:
		if !e.sm.last().isArray() || e.sm.depth() == 1 {
			return errMismatchDelim
		}
		if err := e.closeContainer(kind, "]"); err != nil {
			return err
		}
		return e.sm.popArray()
	case KindNull:
		if err := e.writeLiteral(kind, "null"); err != nil {
			return err
		}
		return e.sm.appendLiteral()
	case KindBool:
		lit := "false"
		if t.Bool() {
			lit = "true"
		}
		if err := e.writeLiteral(kind, lit); err != nil {
			return err
		}
		return e.sm.appendLiteral()
	case KindString:
		if err := e.writeDelim(kind); err != nil {
			return err
		}
		out, err := jsonwire.AppendQuote(nil, t.String(), !e.opts.AllowInvalidUTF8, e.esc)
		if err != nil {
			return wireError(err, 0, 0)
		}
		if _, err := e.w.Write(out); err != nil {
			return err
		}
		return e.sm.appendString()
	case KindNumber:
		if err := e.writeDelim(kind); err != nil {
			return err
		}
		out := appendNumberToken(nil, t)
		if _, err := e.w.Write(out); err != nil {
			return err
		}
		return e.sm.appendNumber()
	default:
		return newInvalidCharacterError(0, "invalid token kind")
	}
}

func (e *Encoder) pushDelimWrite(kind Kind, lit string) error {
	if err := e.writeDelim(kind); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, lit)
	return err
}

func (e *Encoder) closeContainer(kind Kind, lit string) error {
	if e.indenting() && e.sm.last().length() > 0 {
		if err := e.writeCloseIndent(); err != nil {
			return err
		}
	}
	_, err := io.WriteString(e.w, lit)
	return err
}

func (e *Encoder) writeCloseIndent() error {
	depth := e.sm.depth() - 2
	if depth < 0 {
		depth = 0
	}
	buf := make([]byte, 0, 1+len(e.opts.IndentPrefix)+depth*len(e.opts.Indent))
	buf = append(buf, '\n')
	buf = append(buf, e.opts.IndentPrefix...)
	for i := 0; i < depth; i++ {
		buf = append(buf, e.opts.Indent...)
	}
	_, err := e.w.Write(buf)
	return err
}

func (e *Encoder) writeLiteral(kind Kind, lit string) error {
	if err := e.writeDelim(kind); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, lit)
	return err
}

func appendNumberToken(dst []byte, t Token) []byte {
	if t.bits {
		if t.neg {
			return strconv.AppendInt(dst, t.i64, 10)
		}
		return strconv.AppendUint(dst, t.u64, 10)
	}
	return jsonwire.AppendFloat(dst, t.Float(), 64)
}

// WriteValue decodes v into tokens and writes each with WriteToken, so
// v is validated, indentation is applied if configured, and the
// encoder's grammar state matches having written v's tokens one by one.
// The bytes are re-encoded rather than copied: numbers are rewritten in
// their shortest form (1.0 becomes 1, 1E2 becomes 100) and string
// escapes are normalized.
func (e *Encoder) WriteValue(v Value) error {
	dec := NewDecoderBytes(v, Options{AllowInvalidUTF8: e.opts.AllowInvalidUTF8, MaxDepth: e.opts.MaxDepth})
	for {
		tok, err := dec.ReadToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := e.WriteToken(tok); err != nil {
			return err
		}
	}
	return nil
}

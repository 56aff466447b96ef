// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonwire holds the low-level lexical tables and byte-level
// encode/decode helpers shared by the parser and encoder: escape
// classification, number formatting, UTF-8 validation, and hex decode
// tables (spec §2, Lexical tables).
package jsonwire

import "unicode/utf8"

// EscapeRunes reports, for a given rune, whether a JSON string encoder
// must escape it and with which form (short \n-style or \uXXXX).
type EscapeRunes struct {
	// asciiCache[c] is 0 if c needs no escaping, -1 if c escapes with a
	// short two-character sequence, and +1 if c must use \uXXXX.
	asciiCache [utf8.RuneSelf]int8

	canonical  bool
	escapeHTML bool
	escapeJS   bool
	escapeFunc func(rune) bool
}

const (
	noEscape    = int8(0)
	shortEscape = int8(-1)
	uEscape     = int8(+1)
)

var (
	canonicalTable = buildASCIITable(false, nil)
	htmlJSTable    = buildASCIITable(true, nil)
	htmlTable      = buildASCIITable(true, nil)
	jsTable        = buildASCIITable(false, nil)
)

// buildASCIITable computes which ASCII bytes require escaping. Bytes
// below 0x20, plus '"' and '\\', always require escaping (RFC 8259,
// section 7). HTML-sensitive bytes additionally escape when requested.
func buildASCIITable(html bool, fn func(rune) bool) (table [utf8.RuneSelf]int8) {
	for c := byte(0); c < ' '; c++ {
		table[c] = shortEscapeFor(c)
	}
	table['"'] = shortEscape
	table['\\'] = shortEscape
	if html {
		table['<'] = uEscape
		table['>'] = uEscape
		table['&'] = uEscape
	}
	if fn != nil {
		for r := range table {
			if fn(rune(r)) {
				table[r] = uEscape
			}
		}
	}
	return table
}

// shortEscapeFor reports whether c has a named two-character escape
// (\b \f \n \r \t); all other control characters fall back to \u00XX.
func shortEscapeFor(c byte) int8 {
	switch c {
	case '\b', '\f', '\n', '\r', '\t':
		return shortEscape
	default:
		return uEscape
	}
}

// MakeEscapeRunes constructs (or reuses a cached) escape table for the
// given parameters. Passing a non-nil fn always builds a fresh table.
func MakeEscapeRunes(html, js bool, fn func(rune) bool) *EscapeRunes {
	if fn == nil {
		switch {
		case html && js:
			return &EscapeRunes{asciiCache: htmlJSTable, escapeHTML: true, escapeJS: true}
		case html:
			return &EscapeRunes{asciiCache: htmlTable, escapeHTML: true}
		case js:
			return &EscapeRunes{asciiCache: jsTable, escapeJS: true}
		default:
			return &EscapeRunes{asciiCache: canonicalTable, canonical: true}
		}
	}
	return &EscapeRunes{
		asciiCache: buildASCIITable(html, fn),
		escapeHTML: html,
		escapeJS:   js,
		escapeFunc: fn,
	}
}

// IsCanonical reports whether this table performs the minimal escaping
// required by JSON, with no HTML, JS, or custom-function escapes.
func (e *EscapeRunes) IsCanonical() bool { return e.canonical }

func (e *EscapeRunes) needEscapeASCII(c byte) bool { return e.asciiCache[c] != noEscape }

func (e *EscapeRunes) needEscapeASCIIAsUTF16(c byte) bool { return e.asciiCache[c] == uEscape }

// needEscapeRune reports whether r (r >= utf8.RuneSelf) must be escaped.
// U+2028 and U+2029 are line/paragraph separators that some JS
// evaluators choke on inside string literals; EscapeForJS escapes them.
func (e *EscapeRunes) needEscapeRune(r rune) bool {
	if e.escapeJS && (r == '\u2028' || r == '\u2029') {
		return true
	}
	return e.escapeFunc != nil && e.escapeFunc(r)
}

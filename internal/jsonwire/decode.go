// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"
)

// Sentinel lexical errors. The parser layer attaches a byte offset and
// wraps these into a *ParseError with the matching ErrorKind (spec §7).
var (
	ErrUnexpectedByte   = errors.New("unexpected byte")
	ErrUnexpectedEOF    = errors.New("unexpected end of input")
	ErrInvalidEscape    = errors.New("invalid escape sequence")
	ErrInvalidSurrogate = errors.New("invalid or unpaired UTF-16 surrogate")
	ErrInvalidUTF8      = errors.New("invalid UTF-8")
	ErrInvalidNumber    = errors.New("invalid number literal")
	ErrNonASCII         = errors.New("non-ASCII byte or code point with ascii_only set")
)

// ConsumeString validates a JSON string starting at src[0] == '"' and
// returns the number of bytes it spans (including both quotes). It does
// not allocate; callers that need the decoded content call Unescape.
// With asciiOnly set, any raw byte >= 0x80 or any \uXXXX-decoded code
// point > 0x7F is rejected (spec §4.2.1's ascii_only parse flag).
func ConsumeString(src []byte, allowInvalidUTF8, asciiOnly bool) (n int, err error) {
	if len(src) == 0 || src[0] != '"' {
		return 0, ErrUnexpectedByte
	}
	i := 1
	for i < len(src) {
		switch c := src[i]; {
		case c == '"':
			return i + 1, nil
		case c == '\\':
			if n, err := consumeEscape(src, i, asciiOnly); err != nil {
				return n, err
			} else {
				i = n
			}
		case c < 0x20:
			return i, ErrUnexpectedByte
		case c < utf8.RuneSelf:
			i++
		default:
			if asciiOnly {
				return i, ErrNonASCII
			}
			r, size := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError && size <= 1 {
				if !allowInvalidUTF8 {
					return i, ErrInvalidUTF8
				}
				i++
			} else {
				i += size
			}
		}
	}
	return i, ErrUnexpectedEOF
}

// consumeEscape validates the escape sequence starting at src[i] == '\\'
// and returns the offset immediately after it.
func consumeEscape(src []byte, i int, asciiOnly bool) (int, error) {
	if i+1 >= len(src) {
		return i + 1, ErrUnexpectedEOF
	}
	switch src[i+1] {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return i + 2, nil
	case 'u':
		if i+6 > len(src) {
			return len(src), ErrUnexpectedEOF
		}
		r1, ok := decodeHex4(src[i+2 : i+6])
		if !ok {
			return i + 2, ErrInvalidEscape
		}
		i += 6
		switch {
		case isHighSurrogate(r1):
			if i+6 > len(src) || src[i] != '\\' || src[i+1] != 'u' {
				return i, ErrInvalidSurrogate
			}
			r2, ok := decodeHex4(src[i+2 : i+6])
			if !ok {
				return i + 2, ErrInvalidEscape
			}
			if !isLowSurrogate(r2) {
				return i, ErrInvalidSurrogate
			}
			if asciiOnly {
				return i - 6, ErrNonASCII
			}
			return i + 6, nil
		case isLowSurrogate(r1):
			return i - 6, ErrInvalidSurrogate
		default:
			if asciiOnly && r1 > 0x7F {
				return i - 6, ErrNonASCII
			}
			return i, nil
		}
	default:
		return i + 1, ErrInvalidEscape
	}
}

// Unescape decodes the JSON string literal src (which must start with a
// '"') and appends its content to dst, returning the extended buffer and
// the number of input bytes consumed. With asciiOnly set, any raw byte
// >= 0x80 or any \uXXXX-decoded code point > 0x7F is rejected, mirroring
// ConsumeString's ascii_only enforcement.
func Unescape(dst, src []byte, allowInvalidUTF8, asciiOnly bool) ([]byte, int, error) {
	if len(src) == 0 || src[0] != '"' {
		return dst, 0, ErrUnexpectedByte
	}
	i := 1
	for i < len(src) {
		switch c := src[i]; {
		case c == '"':
			return dst, i + 1, nil
		case c == '\\':
			var err error
			dst, i, err = unescapeOne(dst, src, i, asciiOnly)
			if err != nil {
				return dst, i, err
			}
		case c < 0x20:
			return dst, i, ErrUnexpectedByte
		case c < utf8.RuneSelf:
			dst = append(dst, c)
			i++
		default:
			if asciiOnly {
				return dst, i, ErrNonASCII
			}
			r, size := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError && size <= 1 {
				if !allowInvalidUTF8 {
					return dst, i, ErrInvalidUTF8
				}
				dst = append(dst, "�"...)
				i++
			} else {
				dst = append(dst, src[i:i+size]...)
				i += size
			}
		}
	}
	return dst, i, ErrUnexpectedEOF
}

func unescapeOne(dst, src []byte, i int, asciiOnly bool) ([]byte, int, error) {
	if i+1 >= len(src) {
		return dst, i + 1, ErrUnexpectedEOF
	}
	switch src[i+1] {
	case '"':
		return append(dst, '"'), i + 2, nil
	case '\\':
		return append(dst, '\\'), i + 2, nil
	case '/':
		return append(dst, '/'), i + 2, nil
	case 'b':
		return append(dst, '\b'), i + 2, nil
	case 'f':
		return append(dst, '\f'), i + 2, nil
	case 'n':
		return append(dst, '\n'), i + 2, nil
	case 'r':
		return append(dst, '\r'), i + 2, nil
	case 't':
		return append(dst, '\t'), i + 2, nil
	case 'u':
		if i+6 > len(src) {
			return dst, len(src), ErrUnexpectedEOF
		}
		r1, ok := decodeHex4(src[i+2 : i+6])
		if !ok {
			return dst, i + 2, ErrInvalidEscape
		}
		i += 6
		r := r1
		if isHighSurrogate(r1) {
			if i+6 > len(src) || src[i] != '\\' || src[i+1] != 'u' {
				return dst, i, ErrInvalidSurrogate
			}
			r2, ok := decodeHex4(src[i+2 : i+6])
			if !ok {
				return dst, i + 2, ErrInvalidEscape
			}
			if !isLowSurrogate(r2) {
				return dst, i, ErrInvalidSurrogate
			}
			i += 6
			r = utf16.DecodeRune(r1, r2)
		} else if isLowSurrogate(r1) {
			return dst, i - 6, ErrInvalidSurrogate
		}
		if asciiOnly && r > 0x7F {
			return dst, i - 6, ErrNonASCII
		}
		return utf8.AppendRune(dst, r), i, nil
	default:
		return dst, i + 1, ErrInvalidEscape
	}
}

func decodeHex4(b []byte) (rune, bool) {
	var v rune
	for _, c := range b {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			v |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= rune(c-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}

func isHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }

// ConsumeNumber validates a JSON number per RFC 8259, section 6, starting
// at src[0], and returns the number of bytes it spans. It does not
// itself reject values that overflow any numeric type; that policy
// decision (spec §4.2.1) is made by the caller after measuring the
// literal.
func ConsumeNumber(src []byte) (n int, err error) {
	i := 0
	if i < len(src) && src[i] == '-' {
		i++
	}
	switch {
	case i >= len(src):
		return i, ErrUnexpectedEOF
	case src[i] == '0':
		i++
	case src[i] >= '1' && src[i] <= '9':
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	default:
		return i, ErrInvalidNumber
	}
	if i < len(src) && src[i] == '.' {
		i++
		start := i
		for i < len(src) && isDigit(src[i]) {
			i++
		}
		if i == start {
			return i, ErrInvalidNumber
		}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		i++
		if i < len(src) && (src[i] == '+' || src[i] == '-') {
			i++
		}
		start := i
		for i < len(src) && isDigit(src[i]) {
			i++
		}
		if i == start {
			return i, ErrInvalidNumber
		}
	}
	return i, nil
}

// IsSimpleInteger reports whether src (as measured by ConsumeNumber) has
// neither a fractional nor exponent part, i.e. it is eligible for the
// integer-preferring parse policy of spec §4.2.1.
func IsSimpleInteger(src []byte) bool {
	for _, c := range src {
		if c == '.' || c == 'e' || c == 'E' {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

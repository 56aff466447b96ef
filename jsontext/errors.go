package jsontext

import (
	"fmt"

	"github.com/ylongjson/json/internal/jsonwire"
)

// ErrorKind classifies a SyntaxError, mirroring the original
// implementation's richer ParseError enum (original_source/src/error.rs)
// rather than the teacher's single free-form string.
type ErrorKind int

const (
	ErrorKindInvalid ErrorKind = iota
	ErrorKindUnexpectedEOF
	ErrorKindUnexpectedByte
	ErrorKindInvalidUTF8
	ErrorKindInvalidEscape
	ErrorKindInvalidSurrogate
	ErrorKindInvalidNumber
	ErrorKindMismatchedDelim
	ErrorKindMissingColon
	ErrorKindMissingComma
	ErrorKindMissingName
	ErrorKindMissingValue
	ErrorKindDuplicateName
	ErrorKindDepthExceeded
	ErrorKindTrailingData
	ErrorKindNonASCII
)

var (
	errMissingName      = &SyntaxError{Kind: ErrorKindMissingName, msg: "missing string for object name"}
	errMissingColon     = &SyntaxError{Kind: ErrorKindMissingColon, msg: "missing character ':' after object name"}
	errMissingValue     = &SyntaxError{Kind: ErrorKindMissingValue, msg: "missing value after object name"}
	errMissingComma     = &SyntaxError{Kind: ErrorKindMissingComma, msg: "missing character ',' after object or array value"}
	errMismatchDelim    = &SyntaxError{Kind: ErrorKindMismatchedDelim, msg: "mismatching structural token for object or array"}
	errMaxDepthExceeded = &SyntaxError{Kind: ErrorKindDepthExceeded, msg: "exceeded maximum nesting depth"}
	errTrailingData     = &SyntaxError{Kind: ErrorKindTrailingData, msg: "unexpected data after top-level value"}
	errInvalidToken     = &SyntaxError{Kind: ErrorKindInvalid, msg: "invalid token"}
)

// NewDuplicateNameError reports a repeated object member name at pos,
// for callers (the root package's RejectDuplicateNames handling) that
// detect the duplicate above the tokenizer.
func NewDuplicateNameError(pos int64) error {
	return &SyntaxError{Kind: ErrorKindDuplicateName, Offset: pos, msg: "duplicate object member name"}
}

// NewInvalidTokenError reports a token or value of a kind that is not
// valid where it was found.
func NewInvalidTokenError() error {
	return errInvalidToken
}

// SyntaxError describes a malformed JSON document.
type SyntaxError struct {
	Kind   ErrorKind
	Offset int64
	msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("jsontext: %s (offset %d)", e.msg, e.Offset)
}

func (e *SyntaxError) withOffset(pos int64) *SyntaxError {
	return &SyntaxError{Kind: e.Kind, Offset: pos, msg: e.msg}
}

// wireError translates a sentinel error from internal/jsonwire into a
// SyntaxError with a byte offset, or returns err unchanged if it isn't
// one of jsonwire's lexical sentinels.
func wireError(err error, base int64, rel int) error {
	if err == nil {
		return nil
	}
	kind := ErrorKindInvalid
	switch err {
	case jsonwire.ErrUnexpectedEOF:
		kind = ErrorKindUnexpectedEOF
	case jsonwire.ErrUnexpectedByte:
		kind = ErrorKindUnexpectedByte
	case jsonwire.ErrInvalidUTF8:
		kind = ErrorKindInvalidUTF8
	case jsonwire.ErrInvalidEscape:
		kind = ErrorKindInvalidEscape
	case jsonwire.ErrInvalidSurrogate:
		kind = ErrorKindInvalidSurrogate
	case jsonwire.ErrInvalidNumber:
		kind = ErrorKindInvalidNumber
	case jsonwire.ErrNonASCII:
		kind = ErrorKindNonASCII
	default:
		return err
	}
	return &SyntaxError{Kind: kind, Offset: base + int64(rel), msg: err.Error()}
}

func newInvalidCharacterError(c byte, where string) *SyntaxError {
	return &SyntaxError{Kind: ErrorKindUnexpectedByte, msg: "invalid character " + quoteChar(c) + " " + where}
}

func quoteChar(c byte) string {
	if c == '"' {
		return `'"'`
	}
	return fmt.Sprintf("%q", rune(c))
}

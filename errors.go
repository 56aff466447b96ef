package json

import (
	"fmt"
	"reflect"

	"github.com/ylongjson/json/jsontext"
)

// Error matches *ParseError, *TypeMismatchError and *IoError according
// to errors.Is, the same sentinel-matching shape the teacher repo uses
// for its jsonError/stringError/wrapError family. It does not match the
// *jsontext.SyntaxError that the Encode functions return for a value
// they cannot encode, nor the jsontext errors and io.EOF that Source
// and TokenConsumer pass through from the token decoder.
const Error = sentinelError("json error")

type sentinelError string

func (e sentinelError) Error() string        { return string(e) }
func (e sentinelError) Is(target error) bool { return e == target || target == Error }

// ErrorKind re-exports the syntactic error classification from
// jsontext so callers of ParseError need not import that package
// directly.
type ErrorKind = jsontext.ErrorKind

// ParseError describes why a byte stream failed to parse as JSON,
// carrying the offset at which the problem was detected (spec §7).
type ParseError struct {
	Kind   ErrorKind
	Offset int64
	Line   int // 1-indexed; zero if position tracking was not requested
	Column int // 1-indexed; zero if position tracking was not requested

	msg string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("json: %s (line %d, column %d, offset %d)", e.msg, e.Line, e.Column, e.Offset)
	}
	return fmt.Sprintf("json: %s (offset %d)", e.msg, e.Offset)
}

func (e *ParseError) Is(target error) bool { return e == target || target == Error }

func newParseError(err error, buf []byte, trackPosition bool) *ParseError {
	se, ok := err.(*jsontext.SyntaxError)
	if !ok {
		return &ParseError{msg: err.Error()}
	}
	pe := &ParseError{Kind: se.Kind, Offset: se.Offset, msg: se.Error()}
	if trackPosition {
		pe.Line, pe.Column = lineColumn(buf, se.Offset)
	}
	return pe
}

func lineColumn(buf []byte, offset int64) (line, column int) {
	line, column = 1, 1
	n := offset
	if n > int64(len(buf)) {
		n = int64(len(buf))
	}
	for i := int64(0); i < n; i++ {
		if buf[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// TypeMismatchError describes a failed Value-to-Go (or Go-to-Value)
// conversion where the JSON kind and the requested Go type don't
// agree, e.g. calling MustString on a number Value, which panics with
// this error.
type TypeMismatchError struct {
	JSONKind Kind
	GoType   reflect.Type
	str      string
}

func (e *TypeMismatchError) Error() string        { return "json: " + e.str }
func (e *TypeMismatchError) Is(target error) bool { return e == target || target == Error }

func newTypeMismatchError(kind Kind, goType reflect.Type, str string) *TypeMismatchError {
	return &TypeMismatchError{JSONKind: kind, GoType: goType, str: str}
}

// IoError wraps an error returned by the host I/O layer (an
// io.Reader/io.Writer supplied by the caller), distinguishing
// transport failures from malformed JSON.
type IoError struct {
	err error
}

func (e *IoError) Error() string        { return "json: i/o error: " + e.err.Error() }
func (e *IoError) Unwrap() error        { return e.err }
func (e *IoError) Is(target error) bool { return e == target || target == Error }

func newIoError(err error) *IoError { return &IoError{err: err} }

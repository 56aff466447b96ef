package json

import (
	"io"
	"os"

	"github.com/ylongjson/json/jsontext"
)

// ParseBytes parses b as a single JSON value into a Value tree.
func ParseBytes(b []byte, opts DecodeOptions) (Value, error) {
	dec := jsontext.NewDecoderBytes(b, opts.textOptions())
	v, err := decodeValue(dec, opts)
	if err != nil {
		return Value{}, newParseError(err, b, opts.TrackPosition)
	}
	if err := dec.CheckEOF(); err != nil {
		return Value{}, newParseError(err, b, opts.TrackPosition)
	}
	return v, nil
}

// ParseString parses s as a single JSON value into a Value tree.
func ParseString(s string, opts DecodeOptions) (Value, error) {
	return ParseBytes([]byte(s), opts)
}

// ParseReader reads r to completion and parses it as a single JSON
// value. Incremental parsing across not-yet-available buffers is out
// of scope; the full input is read up front.
func ParseReader(r io.Reader, opts DecodeOptions) (Value, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Value{}, newIoError(err)
	}
	return ParseBytes(b, opts)
}

// ParseFile reads and parses the named file as a single JSON value.
func ParseFile(name string, opts DecodeOptions) (Value, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return Value{}, newIoError(err)
	}
	return ParseBytes(b, opts)
}

// decodeValue reads exactly one JSON value from dec, materializing it
// as a Value tree. Objects and arrays recurse; this package's bounded
// MaxDepth option is what keeps that recursion from overflowing the
// Go call stack rather than any special-cased iterative rewrite.
func decodeValue(dec *jsontext.Decoder, opts DecodeOptions) (Value, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return Value{}, err
	}
	return decodeValueFromToken(dec, tok, opts)
}

func decodeValueFromToken(dec *jsontext.Decoder, tok jsontext.Token, opts DecodeOptions) (Value, error) {
	switch tok.Kind() {
	case jsontext.KindNull:
		return Null, nil
	case jsontext.KindBool:
		return NewBool(tok.Bool()), nil
	case jsontext.KindString:
		return NewString(tok.String()), nil
	case jsontext.KindNumber:
		return decodeNumberToken(tok), nil
	case jsontext.KindArrayStart:
		return decodeArray(dec, opts)
	case jsontext.KindObjectStart:
		return decodeObject(dec, opts)
	default:
		return Value{}, jsontext.NewInvalidTokenError()
	}
}

func decodeNumberToken(tok jsontext.Token) Value {
	return NewNumber(NumberOfToken(tok))
}

// NumberOfToken converts a jsontext.Token of kind Number into this
// package's Number, preserving whichever of the three representations
// the tokenizer chose (spec §4.2.1).
func NumberOfToken(tok jsontext.Token) Number {
	if tok.IsIntegral() {
		if tok.Negative() {
			return NumberFromInt64(tok.Int())
		}
		return NumberFromUint64(tok.Uint())
	}
	return NumberFromFloat64(tok.Float())
}

func decodeArray(dec *jsontext.Decoder, opts DecodeOptions) (Value, error) {
	arr := NewEmptyArray()
	for {
		tok, err := dec.ReadToken()
		if err != nil {
			return Value{}, err
		}
		if tok.Kind() == jsontext.KindArrayEnd {
			return NewArray(arr), nil
		}
		v, err := decodeValueFromToken(dec, tok, opts)
		if err != nil {
			return Value{}, err
		}
		arr.PushBack(v)
	}
}

func decodeObject(dec *jsontext.Decoder, opts DecodeOptions) (Value, error) {
	obj := NewEmptyObject()
	seen := map[string]bool{}
	for {
		nameTok, err := dec.ReadToken()
		if err != nil {
			return Value{}, err
		}
		if nameTok.Kind() == jsontext.KindObjectEnd {
			return NewObject(obj), nil
		}
		name := nameTok.String()
		if opts.RejectDuplicateNames && seen[name] {
			return Value{}, jsontext.NewDuplicateNameError(dec.InputOffset())
		}
		seen[name] = true
		valTok, err := dec.ReadToken()
		if err != nil {
			return Value{}, err
		}
		v, err := decodeValueFromToken(dec, valTok, opts)
		if err != nil {
			return Value{}, err
		}
		obj.Insert(name, v)
	}
}

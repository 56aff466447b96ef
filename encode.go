package json

import (
	"io"
	"os"

	"github.com/ylongjson/json/jsontext"
)

// EncodeToBytes serializes v per opts, returning the encoded document.
// It encodes into a pooled scratch buffer rather than allocating a
// fresh buffer per call.
func EncodeToBytes(v Value, opts EncodeOptions) ([]byte, error) {
	return jsontext.AppendEncoded(nil, opts.textOptions(), func(enc *jsontext.Encoder) error {
		return encodeValue(enc, v)
	})
}

// EncodeToString serializes v per opts, returning the encoded document
// as a string.
func EncodeToString(v Value, opts EncodeOptions) (string, error) {
	b, err := EncodeToBytes(v, opts)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodeTo writes v to w per opts. A failure from w itself (as opposed
// to a malformed Value) is reported as an *IoError, matching
// ParseReader/EncodeToFile's sentinel contract.
func EncodeTo(w io.Writer, v Value, opts EncodeOptions) error {
	enc := jsontext.NewEncoder(w, opts.textOptions())
	if err := encodeValue(enc, v); err != nil {
		if _, ok := err.(*jsontext.SyntaxError); ok {
			return err
		}
		return newIoError(err)
	}
	return nil
}

// EncodeToFile serializes v per opts and writes it to the named file,
// creating or truncating it.
func EncodeToFile(name string, v Value, opts EncodeOptions) error {
	f, err := os.Create(name)
	if err != nil {
		return newIoError(err)
	}
	defer f.Close()
	if err := EncodeTo(f, v, opts); err != nil {
		return err
	}
	return nil
}

func encodeValue(enc *jsontext.Encoder, v Value) error {
	switch v.Kind() {
	case KindNull:
		return enc.WriteToken(jsontext.Null)
	case KindBool:
		b, _ := v.AsBool()
		return enc.WriteToken(jsontext.Bool(b))
	case KindNumber:
		n, _ := v.AsNumber()
		return enc.WriteToken(TokenOfNumber(n))
	case KindString:
		s, _ := v.AsString()
		return enc.WriteToken(jsontext.String(s))
	case KindArray:
		a, _ := v.AsArray()
		return encodeArray(enc, a)
	case KindObject:
		o, _ := v.AsObject()
		return encodeObject(enc, o)
	default:
		return jsontext.NewInvalidTokenError()
	}
}

// TokenOfNumber converts a Number into the jsontext.Token form that
// preserves its representation (mirror of NumberOfToken).
func TokenOfNumber(n Number) jsontext.Token {
	if n.IsInt64() {
		i, _ := n.AsInt64()
		return jsontext.Int(i)
	}
	if n.IsUint64() {
		u, _ := n.AsUint64()
		return jsontext.Uint(u)
	}
	return jsontext.Float(n.AsFloat64())
}

func encodeArray(enc *jsontext.Encoder, a *Array) error {
	if err := enc.WriteToken(jsontext.ArrayStart); err != nil {
		return err
	}
	var werr error
	a.Each(func(_ int, v Value) bool {
		if err := encodeValue(enc, v); err != nil {
			werr = err
			return false
		}
		return true
	})
	if werr != nil {
		return werr
	}
	return enc.WriteToken(jsontext.ArrayEnd)
}

func encodeObject(enc *jsontext.Encoder, o *Object) error {
	if err := enc.WriteToken(jsontext.ObjectStart); err != nil {
		return err
	}
	var werr error
	o.Each(func(key string, v Value) bool {
		if err := enc.WriteToken(jsontext.String(key)); err != nil {
			werr = err
			return false
		}
		if err := encodeValue(enc, v); err != nil {
			werr = err
			return false
		}
		return true
	})
	if werr != nil {
		return werr
	}
	return enc.WriteToken(jsontext.ObjectEnd)
}

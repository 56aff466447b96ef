package json

import "github.com/ylongjson/json/jsontext"

// Producer is implemented by external record types that can render
// themselves as a sequence of JSON events without the core building
// an intermediate Value tree (spec §4.4). A Producer emits exactly one
// well-formed value: scalars are a single event; containers are a
// matched Begin/End pair wrapping their members.
type Producer interface {
	Produce(e *Emitter) error
}

// Emitter is the event sink a Producer writes to. It forwards directly
// to a jsontext.Encoder, so a Producer pays no Value-tree allocation
// cost.
type Emitter struct {
	enc *jsontext.Encoder
}

func NewEmitter(enc *jsontext.Encoder) *Emitter { return &Emitter{enc: enc} }

func (e *Emitter) Null() error         { return e.enc.WriteToken(jsontext.Null) }
func (e *Emitter) Bool(b bool) error   { return e.enc.WriteToken(jsontext.Bool(b)) }
func (e *Emitter) String(s string) error { return e.enc.WriteToken(jsontext.String(s)) }
func (e *Emitter) Int64(i int64) error   { return e.enc.WriteToken(jsontext.Int(i)) }
func (e *Emitter) Uint64(u uint64) error { return e.enc.WriteToken(jsontext.Uint(u)) }
func (e *Emitter) Float64(f float64) error { return e.enc.WriteToken(jsontext.Float(f)) }
func (e *Emitter) Number(n Number) error  { return e.enc.WriteToken(TokenOfNumber(n)) }

func (e *Emitter) BeginObject() error { return e.enc.WriteToken(jsontext.ObjectStart) }
func (e *Emitter) EndObject() error   { return e.enc.WriteToken(jsontext.ObjectEnd) }
func (e *Emitter) BeginArray() error  { return e.enc.WriteToken(jsontext.ArrayStart) }
func (e *Emitter) EndArray() error    { return e.enc.WriteToken(jsontext.ArrayEnd) }

// Key emits an object member name. Callers must follow it with exactly
// one value event (scalar or a matched Begin/End pair).
func (e *Emitter) Key(s string) error { return e.enc.WriteToken(jsontext.String(s)) }

// EventKind classifies an event pulled from a Source by a Consumer.
type EventKind int

const (
	EventInvalid EventKind = iota
	EventNull
	EventBool
	EventNumber
	EventString
	EventBeginArray
	EventEndArray
	EventBeginObject
	EventEndObject
)

func eventKindOf(k jsontext.Kind) EventKind {
	switch k {
	case jsontext.KindNull:
		return EventNull
	case jsontext.KindBool:
		return EventBool
	case jsontext.KindNumber:
		return EventNumber
	case jsontext.KindString:
		return EventString
	case jsontext.KindArrayStart:
		return EventBeginArray
	case jsontext.KindArrayEnd:
		return EventEndArray
	case jsontext.KindObjectStart:
		return EventBeginObject
	case jsontext.KindObjectEnd:
		return EventEndObject
	default:
		return EventInvalid
	}
}

// Consumer is implemented by external record types that build
// themselves from a pull-style event stream, without requiring the
// core to materialize an intermediate Value tree first (spec §4.4).
type Consumer interface {
	Consume(s *Source) error
}

// Source is the pull-style event reader a Consumer drives. It wraps a
// jsontext.Decoder, exposing peek-then-read so a Consumer can branch
// on the shape of the next value before committing to reading it.
type Source struct {
	dec *jsontext.Decoder
}

func NewSource(dec *jsontext.Decoder) *Source { return &Source{dec: dec} }

// Peek reports the kind of the next event without consuming it.
func (s *Source) Peek() (EventKind, error) {
	k, err := s.dec.PeekKind()
	if err != nil {
		return EventInvalid, err
	}
	return eventKindOf(k), nil
}

// Next consumes and returns the next token as a Value-free scalar or
// structural event. Scalars carry their decoded payload on the
// returned Token; callers use jsontext.Token's accessors directly.
func (s *Source) Next() (jsontext.Token, error) { return s.dec.ReadToken() }

// NextNull consumes a null event, erroring if the next event is not null.
func (s *Source) NextNull() error {
	tok, err := s.dec.ReadToken()
	if err != nil {
		return err
	}
	if tok.Kind() != jsontext.KindNull {
		return jsontext.NewInvalidTokenError()
	}
	return nil
}

// NextBool consumes and returns a bool event.
func (s *Source) NextBool() (bool, error) {
	tok, err := s.dec.ReadToken()
	if err != nil {
		return false, err
	}
	if tok.Kind() != jsontext.KindBool {
		return false, jsontext.NewInvalidTokenError()
	}
	return tok.Bool(), nil
}

// NextString consumes and returns a string event.
func (s *Source) NextString() (string, error) {
	tok, err := s.dec.ReadToken()
	if err != nil {
		return "", err
	}
	if tok.Kind() != jsontext.KindString {
		return "", jsontext.NewInvalidTokenError()
	}
	return tok.String(), nil
}

// NextNumber consumes and returns a number event.
func (s *Source) NextNumber() (Number, error) {
	tok, err := s.dec.ReadToken()
	if err != nil {
		return Number{}, err
	}
	if tok.Kind() != jsontext.KindNumber {
		return Number{}, jsontext.NewInvalidTokenError()
	}
	return NumberOfToken(tok), nil
}

// BeginArray consumes an array-start event.
func (s *Source) BeginArray() error {
	tok, err := s.dec.ReadToken()
	if err != nil {
		return err
	}
	if tok.Kind() != jsontext.KindArrayStart {
		return jsontext.NewInvalidTokenError()
	}
	return nil
}

// MoreArray reports whether another array element follows, consuming
// the closing bracket itself if not.
func (s *Source) MoreArray() (bool, error) {
	k, err := s.dec.PeekKind()
	if err != nil {
		return false, err
	}
	if k == jsontext.KindArrayEnd {
		_, err := s.dec.ReadToken()
		return false, err
	}
	return true, nil
}

// BeginObject consumes an object-start event.
func (s *Source) BeginObject() error {
	tok, err := s.dec.ReadToken()
	if err != nil {
		return err
	}
	if tok.Kind() != jsontext.KindObjectStart {
		return jsontext.NewInvalidTokenError()
	}
	return nil
}

// NextKey reports whether another member follows, consuming the
// closing brace itself and returning ok=false if not; otherwise it
// consumes and returns the member's name.
func (s *Source) NextKey() (key string, ok bool, err error) {
	k, err := s.dec.PeekKind()
	if err != nil {
		return "", false, err
	}
	if k == jsontext.KindObjectEnd {
		_, err := s.dec.ReadToken()
		return "", false, err
	}
	tok, err := s.dec.ReadToken()
	if err != nil {
		return "", false, err
	}
	return tok.String(), true, nil
}

// SkipValue discards the next complete value, whatever shape it has.
func (s *Source) SkipValue() error {
	return drainValue(s.dec)
}

func drainValue(dec *jsontext.Decoder) error {
	tok, err := dec.ReadToken()
	if err != nil {
		return err
	}
	switch tok.Kind() {
	case jsontext.KindArrayStart:
		for {
			k, err := dec.PeekKind()
			if err != nil {
				return err
			}
			if k == jsontext.KindArrayEnd {
				_, err := dec.ReadToken()
				return err
			}
			if err := drainValue(dec); err != nil {
				return err
			}
		}
	case jsontext.KindObjectStart:
		for {
			k, err := dec.PeekKind()
			if err != nil {
				return err
			}
			if k == jsontext.KindObjectEnd {
				_, err := dec.ReadToken()
				return err
			}
			if _, err := dec.ReadToken(); err != nil { // member name
				return err
			}
			if err := drainValue(dec); err != nil {
				return err
			}
		}
	default:
		return nil
	}
}

// TokenProducer adapts an existing Value into a Producer, letting
// callers drive the Emitter-based path uniformly whether or not they
// already hold a materialized tree.
type TokenProducer struct{ V Value }

func (p TokenProducer) Produce(e *Emitter) error { return produceValue(e, p.V) }

func produceValue(e *Emitter, v Value) error {
	switch v.Kind() {
	case KindNull:
		return e.Null()
	case KindBool:
		b, _ := v.AsBool()
		return e.Bool(b)
	case KindNumber:
		n, _ := v.AsNumber()
		return e.Number(n)
	case KindString:
		s, _ := v.AsString()
		return e.String(s)
	case KindArray:
		a, _ := v.AsArray()
		if err := e.BeginArray(); err != nil {
			return err
		}
		var werr error
		a.Each(func(_ int, elem Value) bool {
			if err := produceValue(e, elem); err != nil {
				werr = err
				return false
			}
			return true
		})
		if werr != nil {
			return werr
		}
		return e.EndArray()
	case KindObject:
		o, _ := v.AsObject()
		if err := e.BeginObject(); err != nil {
			return err
		}
		var werr error
		o.Each(func(key string, val Value) bool {
			if err := e.Key(key); err != nil {
				werr = err
				return false
			}
			if err := produceValue(e, val); err != nil {
				werr = err
				return false
			}
			return true
		})
		if werr != nil {
			return werr
		}
		return e.EndObject()
	default:
		return jsontext.NewInvalidTokenError()
	}
}

// TokenConsumer adapts a Source into a freshly materialized Value,
// letting callers fall back to tree construction from within an
// otherwise event-driven Consumer implementation.
type TokenConsumer struct{ V Value }

func (c *TokenConsumer) Consume(s *Source) error {
	v, err := consumeValue(s)
	if err != nil {
		return err
	}
	c.V = v
	return nil
}

func consumeValue(s *Source) (Value, error) {
	kind, err := s.Peek()
	if err != nil {
		return Value{}, err
	}
	switch kind {
	case EventNull:
		if err := s.NextNull(); err != nil {
			return Value{}, err
		}
		return Null, nil
	case EventBool:
		b, err := s.NextBool()
		if err != nil {
			return Value{}, err
		}
		return NewBool(b), nil
	case EventString:
		str, err := s.NextString()
		if err != nil {
			return Value{}, err
		}
		return NewString(str), nil
	case EventNumber:
		n, err := s.NextNumber()
		if err != nil {
			return Value{}, err
		}
		return NewNumber(n), nil
	case EventBeginArray:
		if err := s.BeginArray(); err != nil {
			return Value{}, err
		}
		arr := NewEmptyArray()
		for {
			more, err := s.MoreArray()
			if err != nil {
				return Value{}, err
			}
			if !more {
				return NewArray(arr), nil
			}
			elem, err := consumeValue(s)
			if err != nil {
				return Value{}, err
			}
			arr.PushBack(elem)
		}
	case EventBeginObject:
		if err := s.BeginObject(); err != nil {
			return Value{}, err
		}
		obj := NewEmptyObject()
		for {
			key, ok, err := s.NextKey()
			if err != nil {
				return Value{}, err
			}
			if !ok {
				return NewObject(obj), nil
			}
			val, err := consumeValue(s)
			if err != nil {
				return Value{}, err
			}
			obj.Insert(key, val)
		}
	default:
		return Value{}, jsontext.NewInvalidTokenError()
	}
}

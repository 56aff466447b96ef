package json

// Kind identifies which of the six JSON value classes a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is a tagged JSON value: exactly one of null, a bool, a
// Number, a string, an *Array, or an *Object is live at a time,
// selected by Kind (spec §4.1, the Value tree).
type Value struct {
	kind Kind
	b    bool
	n    Number
	s    string
	arr  *Array
	obj  *Object
}

// Null is the shared, immutable null Value. Index reads that miss
// return this value rather than allocating a fresh null each time
// (spec §3.4, read-mode index misses are total and side-effect free).
var Null = Value{kind: KindNull}

func NewBool(b bool) Value     { return Value{kind: KindBool, b: b} }
func NewNumber(n Number) Value { return Value{kind: KindNumber, n: n} }
func NewString(s string) Value { return Value{kind: KindString, s: s} }
func NewInt64(i int64) Value   { return NewNumber(NumberFromInt64(i)) }
func NewUint64(u uint64) Value { return NewNumber(NumberFromUint64(u)) }
func NewFloat64(f float64) Value { return NewNumber(NumberFromFloat64(f)) }

// NewArray wraps an existing *Array as a Value. A nil a is treated as
// an empty array owned by the returned Value.
func NewArray(a *Array) Value {
	if a == nil {
		a = NewEmptyArray()
	}
	return Value{kind: KindArray, arr: a}
}

// NewObject wraps an existing *Object as a Value. A nil o is treated
// as an empty object owned by the returned Value.
func NewObject(o *Object) Value {
	if o == nil {
		o = NewEmptyObject()
	}
	return Value{kind: KindObject, obj: o}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsNumber() bool { return v.kind == KindNumber }
func (v Value) IsString() bool { return v.kind == KindString }
func (v Value) IsArray() bool  { return v.kind == KindArray }
func (v Value) IsObject() bool { return v.kind == KindObject }

// AsBool returns v's boolean value and whether v is a bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsNumber returns v's Number value and whether v is a number.
func (v Value) AsNumber() (Number, bool) {
	if v.kind != KindNumber {
		return Number{}, false
	}
	return v.n, true
}

// AsString returns v's string value and whether v is a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsArray returns v's *Array and whether v is an array.
func (v Value) AsArray() (*Array, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsObject returns v's *Object and whether v is an object.
func (v Value) AsObject() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// MustBool panics if v is not a bool, otherwise returning its value.
func (v Value) MustBool() bool {
	b, ok := v.AsBool()
	if !ok {
		panic(newTypeMismatchError(v.kind, nil, "value is not a bool"))
	}
	return b
}

// MustString panics if v is not a string, otherwise returning its
// value.
func (v Value) MustString() string {
	s, ok := v.AsString()
	if !ok {
		panic(newTypeMismatchError(v.kind, nil, "value is not a string"))
	}
	return s
}

// MustArray panics if v is not an array, otherwise returning it.
func (v Value) MustArray() *Array {
	a, ok := v.AsArray()
	if !ok {
		panic(newTypeMismatchError(v.kind, nil, "value is not an array"))
	}
	return a
}

// MustObject panics if v is not an object, otherwise returning it.
func (v Value) MustObject() *Object {
	o, ok := v.AsObject()
	if !ok {
		panic(newTypeMismatchError(v.kind, nil, "value is not an object"))
	}
	return o
}

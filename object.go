package json

import "github.com/ylongjson/json/internal/container"

// Object is a JSON object: an ordered collection of name/value
// members, possibly containing duplicate names, backed by whichever
// container.Object implementation the build selected (spec §3.3,
// container backing).
type Object struct {
	c container.Object[Value]
}

// NewEmptyObject constructs an empty Object using the build's selected
// backing.
func NewEmptyObject() *Object {
	return &Object{c: container.NewObject[Value]()}
}

func (o *Object) Len() int { return o.c.Len() }

// Get returns the value of the first member named key, or (Null,
// false) if no such member exists. If the object has duplicate names,
// the first occurrence wins (spec §4.1, DuplicateKey resolution:
// accepted and retained, first-match read).
func (o *Object) Get(key string) (Value, bool) { return o.c.Get(key) }

// At returns the i'th member in iteration order.
func (o *Object) At(i int) (key string, value Value, ok bool) { return o.c.At(i) }

// Insert appends a new member named key, even if key already exists,
// preserving any existing member with the same name (spec §4.1,
// duplicate names are retained, not overwritten in place).
func (o *Object) Insert(key string, v Value) { o.c.Insert(key, v) }

// Set replaces every member named key with a single member holding v,
// or inserts one if key was absent. Unlike Insert, Set collapses any
// pre-existing duplicates of key down to the new value.
func (o *Object) Set(key string, v Value) {
	o.c.Remove(key)
	o.c.Insert(key, v)
}

// Remove deletes every member named key and reports how many were
// removed.
func (o *Object) Remove(key string) int { return o.c.Remove(key) }

// Each calls fn for every member in order, stopping early if fn
// returns false.
func (o *Object) Each(fn func(key string, v Value) bool) { o.c.Each(fn) }

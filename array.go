package json

import "github.com/ylongjson/json/internal/container"

// Array is a JSON array: an ordered sequence of Values backed by
// whichever container.Array implementation the build selected (spec
// §3.3, container backing).
type Array struct {
	c container.Array[Value]
}

// NewEmptyArray constructs an empty Array using the build's selected
// backing.
func NewEmptyArray() *Array {
	return &Array{c: container.NewArray[Value]()}
}

// NewArrayFrom constructs an Array containing a copy of vs, in order.
func NewArrayFrom(vs ...Value) *Array {
	a := NewEmptyArray()
	for _, v := range vs {
		a.c.PushBack(v)
	}
	return a
}

func (a *Array) Len() int { return a.c.Len() }

// At returns the element at index i, or (Null, false) if i is out of
// range.
func (a *Array) At(i int) (Value, bool) { return a.c.At(i) }

// Set overwrites the element at index i, reporting whether i was in
// range.
func (a *Array) Set(i int, v Value) bool { return a.c.Set(i, v) }

// PushBack appends v to the end of the array.
func (a *Array) PushBack(v Value) { a.c.PushBack(v) }

// PopFront removes and returns the first element.
func (a *Array) PopFront() (Value, bool) { return a.c.PopFront() }

// PopBack removes and returns the last element.
func (a *Array) PopBack() (Value, bool) { return a.c.PopBack() }

// InsertAt inserts v at index i, shifting subsequent elements back.
// i == Len() appends. Reports whether i was a valid insertion point.
func (a *Array) InsertAt(i int, v Value) bool { return a.c.InsertAt(i, v) }

// RemoveAt removes and returns the element at index i.
func (a *Array) RemoveAt(i int) (Value, bool) { return a.c.RemoveAt(i) }

// Each calls fn for every element in order, stopping early if fn
// returns false.
func (a *Array) Each(fn func(i int, v Value) bool) { a.c.Each(fn) }

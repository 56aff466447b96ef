// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontext

// stateMachine is a push-down automaton that validates whether a
// sequence of tokens is a legal JSON grammar, used by both the decoder
// and the encoder. Grounded on the teacher's state.go; adapted to also
// enforce a maximum nesting depth (spec §4.3.3).
//
// The stack's first entry is a virtual top-level array that holds the
// stream of top-level values and, unlike a real array, needs no commas
// between its elements.
type stateMachine struct {
	stack    []stateEntry
	maxDepth int
}

func (m *stateMachine) init(maxDepth int) {
	m.stack = append(m.stack[:0], stateTypeArray)
	m.maxDepth = maxDepth
}

// depth is the current nesting depth, one-indexed (a top-level value
// sits at depth 1, the virtual wrapper).
func (m *stateMachine) depth() int { return len(m.stack) }

func (m *stateMachine) last() *stateEntry { return &m.stack[len(m.stack)-1] }

func (m *stateMachine) appendLiteral() error {
	if e := m.last(); e.needObjectName() {
		return errMissingName
	} else {
		e.increment()
		return nil
	}
}

func (m *stateMachine) appendString() error {
	m.last().increment()
	return nil
}

func (m *stateMachine) appendNumber() error { return m.appendLiteral() }

func (m *stateMachine) pushObject() error {
	if e := m.last(); e.needObjectName() {
		return errMissingName
	} else {
		e.increment()
	}
	if m.maxDepth > 0 && len(m.stack) > m.maxDepth {
		return errMaxDepthExceeded
	}
	m.stack = append(m.stack, stateTypeObject)
	return nil
}

func (m *stateMachine) popObject() error {
	switch e := m.last(); {
	case !e.isObject():
		return errMismatchDelim
	case e.needObjectValue():
		return errMissingValue
	default:
		m.stack = m.stack[:len(m.stack)-1]
		return nil
	}
}

func (m *stateMachine) pushArray() error {
	if e := m.last(); e.needObjectName() {
		return errMissingName
	} else {
		e.increment()
	}
	if m.maxDepth > 0 && len(m.stack) > m.maxDepth {
		return errMaxDepthExceeded
	}
	m.stack = append(m.stack, stateTypeArray)
	return nil
}

func (m *stateMachine) popArray() error {
	switch e := m.last(); {
	case !e.isArray() || len(m.stack) == 1:
		return errMismatchDelim
	default:
		m.stack = m.stack[:len(m.stack)-1]
		return nil
	}
}

// needDelim reports which implicit delimiter, if any, must precede a
// token of the given kind.
func (m *stateMachine) needDelim(next Kind) (delim byte) {
	switch e := m.last(); {
	case e.needImplicitColon():
		return ':'
	case e.needImplicitComma(next) && len(m.stack) != 1:
		return ','
	}
	return 0
}

// checkDelim reports whether the delimiter byte actually found in the
// input matches what the grammar requires before a token of kind next.
func (m *stateMachine) checkDelim(delim byte, next Kind) error {
	switch want := m.needDelim(next); {
	case want == delim:
		return nil
	case want == ':':
		return errMissingColon
	case want == ',':
		return errMissingComma
	default:
		return newInvalidCharacterError(delim, "before next token")
	}
}

type stateEntry uint64

const (
	stateTypeMask   stateEntry = 0x8000_0000_0000_0000
	stateTypeObject stateEntry = 0x8000_0000_0000_0000
	stateTypeArray  stateEntry = 0x0000_0000_0000_0000

	stateCountMask    stateEntry = 0x7fff_ffff_ffff_ffff
	stateCountLSBMask stateEntry = 0x0000_0000_0000_0001
	stateCountOdd     stateEntry = 0x0000_0000_0000_0001
	stateCountEven    stateEntry = 0x0000_0000_0000_0000
)

func (e stateEntry) length() int    { return int(e & stateCountMask) }
func (e stateEntry) isObject() bool { return e&stateTypeMask == stateTypeObject }
func (e stateEntry) isArray() bool  { return e&stateTypeMask == stateTypeArray }

func (e stateEntry) needObjectName() bool {
	return e&(stateTypeMask|stateCountLSBMask) == stateTypeObject|stateCountEven
}

func (e stateEntry) needImplicitColon() bool { return e.needObjectValue() }

func (e stateEntry) needObjectValue() bool {
	return e&(stateTypeMask|stateCountLSBMask) == stateTypeObject|stateCountOdd
}

func (e stateEntry) needImplicitComma(next Kind) bool {
	return !e.needObjectValue() && e.length() > 0 && next != KindObjectEnd && next != KindArrayEnd
}

func (e *stateEntry) increment() { (*e)++ }

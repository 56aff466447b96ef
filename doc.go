// Package json implements a general-purpose JSON document model: a
// tagged Value tree with pluggable container backings for arrays and
// objects, a total index/navigation protocol over that tree, and
// entry points that parse a byte stream into a Value and encode a
// Value back to bytes.
//
// # Terminology
//
// This package uses "parse" and "encode" for the syntactic layer that
// turns bytes into a Value tree and back (implemented by the sibling
// jsontext package), and "decode into"/"encode from" for the semantic
// layer that maps the token stream directly to and from external record
// types via the Consumer and Producer interfaces, without building a
// Value tree.
//
// This package uses JSON terminology when discussing JSON:
//
//   - a JSON "object" is an ordered collection of name/value members,
//     which may contain duplicate names;
//   - a JSON "array" is an ordered sequence of elements; and
//   - a JSON "value" is either a literal (null, false, or true), a
//     string, a number, an object, or an array.
//
// # Container backings
//
// Array and Object are backed by an interchangeable implementation
// selected at build time with a build tag: the default is a
// slice-backed array and a slice-backed object (stable insertion
// order, linear lookup); list_array and list_object select a doubly
// linked list backing instead, trading O(1) random access for O(1)
// splice at an arbitrary cursor position; btree_object selects a
// key-sorted backing with O(log n) lookup at the cost of
// insertion-order iteration.
package json

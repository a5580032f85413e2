// Package ir provides the in-memory document model for relaxed JSON.
//
// # Overview
//
// A document is a tree of *Value. Each Value is a tagged union holding
// exactly one of
//
//   - NullType: null
//   - BoolType: true or false
//   - SignedType: a negative integer literal, stored as int64
//   - UnsignedType: a non-negative integer literal, stored as uint64
//   - DoubleType: a literal with a fraction or exponent, stored as float64
//   - StringType: a string
//   - ArrayType: an ordered list of values
//   - ObjectType: string keyed entries, keys unique, in document order
//
// Typed getters such as Int64 and Float64 never convert between the
// numeric subtypes; they fail with ErrTypeMismatch. Use Number for a
// checked read into a Go numeric type.
//
// # Building Values
//
// Keying a null Value with Entry turns it into an object, and Append
// turns a null Value into an array. Indexing with At never creates an
// array:
//
//	doc := ir.Null()
//	meta, _ := doc.Entry("metadata")
//	ver, _ := meta.Entry("version")
//	ver.SetString("1.0")
//
// Failed accessors leave the receiver unchanged.
package ir

// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the "generic record-style" decoded object shape
// produced by lazyjson's decoder façade when its caller asks for an
// ordered, duplicate-preserving representation of a JSON object instead of
// a native map[string]any.
//
// Object holds already-decoded Go values rather than raw source text: by
// the time lazyjson.Handle.Decode builds a Member, it has already turned
// every scalar and nested array into a plain Go value, and every nested
// object into another Object.
package ast

// Span describes the byte extent of a value in its source.
type Span struct{ Start, End int64 }

// Member is a single key-value pair belonging to an Object, in source
// order. Value holds whatever Handle.Decode produced for the member: nil,
// bool, int64, float64, string, []any, or a nested Object.
type Member struct {
	Span  Span
	Key   string
	Value any
}

// NewMember constructs a Member at span.
func NewMember(span Span, key string, value any) Member {
	return Member{Span: span, Key: key, Value: value}
}

// Object is an ordered, duplicate-preserving collection of key-value
// members, in source order.
type Object struct {
	Span    Span
	Members []Member
}

// NewObject constructs an Object at span with the given members.
func NewObject(span Span, members []Member) Object {
	return Object{Span: span, Members: members}
}

// Find returns the first member of o with the given key, or nil. Callers
// that need "last occurrence wins" semantics should scan Members in
// reverse.
func (o Object) Find(key string) *Member {
	for i := range o.Members {
		if o.Members[i].Key == key {
			return &o.Members[i]
		}
	}
	return nil
}

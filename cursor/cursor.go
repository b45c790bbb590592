// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements path navigation over lazyjson handles.
//
// Down walks a sequence of object keys and array indices without ever
// materialising a value: each step delegates to ObjectValue.Get or
// ArrayValue.At, so only the handles that lie on the requested path are
// ever loaded.
package cursor

import (
	"fmt"

	"github.com/basinlabs/lazyjson"
	"github.com/basinlabs/lazyjson/jpath"
)

// Down traverses h according to path, a sequence of string object keys and
// int array indices, and returns the handle found at the end of the path.
// It reports an error if any step does not match the shape of the value at
// that point (looking up a key in an array, say), or if the path does not
// exist.
func Down(h *lazyjson.Handle, path ...any) (*lazyjson.Handle, error) {
	cur := h
	for i, key := range path {
		next, err := step(cur, key)
		if err != nil {
			return nil, fmt.Errorf("step %d (%v): %w", i, key, err)
		}
		cur = next
	}
	return cur, nil
}

func step(h *lazyjson.Handle, key any) (*lazyjson.Handle, error) {
	switch k := key.(type) {
	case string:
		obj, err := h.Object()
		if err != nil {
			return nil, err
		}
		v, ok, err := obj.Get(k)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("key %q not found", k)
		}
		return v, nil
	case int:
		arr, err := h.Array()
		if err != nil {
			return nil, err
		}
		v, ok, err := arr.At(k)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("index %d not found", k)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("invalid path element %v of type %T", key, key)
	}
}

// Path resolves a parsed jpath.Expr against h, supporting only the Member,
// QName, and Index step kinds. Wildcard, slice, recursive-descent, script,
// and filter steps require materialising more than one candidate value at
// a time, which defeats the single-path laziness this package is for; Path
// reports an error for those instead of falling back to a scan-and-collect
// implementation.
func Path(h *lazyjson.Handle, expr jpath.Expr) (*lazyjson.Handle, error) {
	cur := h
	for i, s := range expr {
		var key any
		switch s.Op {
		case jpath.Member, jpath.QName:
			if s.Op == jpath.Member && s.Arg2 == jpath.Wildcard.String() {
				return nil, fmt.Errorf("step %d: unsupported jpath operator %s", i, jpath.Wildcard)
			}
			key = s.Arg1
		case jpath.Index:
			var n int
			if _, err := fmt.Sscanf(s.Arg1, "%d", &n); err != nil {
				return nil, fmt.Errorf("step %d: invalid index %q", i, s.Arg1)
			}
			key = n
		default:
			return nil, fmt.Errorf("step %d: unsupported jpath operator %s", i, s.Op)
		}
		next, err := step(cur, key)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, s.Op, err)
		}
		cur = next
	}
	return cur, nil
}

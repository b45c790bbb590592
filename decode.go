// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lazyjson

import "github.com/basinlabs/lazyjson/ast"

// Decode materialises h (and, recursively, its descendants) into an
// ordinary Go value. This is the only operation in this package that reads
// an entire value into memory.
//
//   - Null decodes to nil.
//   - Boolean decodes to bool.
//   - Number decodes to int64 or float64.
//   - String decodes to string.
//   - Array decodes to []any, regardless of assoc.
//   - Object decodes to map[string]any if assoc is true, or to an
//     ast.Object (an ordered, duplicate-preserving record) if assoc is
//     false. The two shapes carry the same information; the choice is
//     purely about how the caller wants to consume it. assoc propagates
//     to every object nested anywhere below h, including inside arrays.
func (h *Handle) Decode(assoc bool) (any, error) {
	switch h.variant {
	case Null:
		if err := h.Null(); err != nil {
			return nil, err
		}
		return nil, nil

	case Boolean:
		return h.Bool()

	case Number:
		n, err := h.Number()
		if err != nil {
			return nil, err
		}
		return n.Any(), nil

	case String:
		s, err := h.String()
		if err != nil {
			return nil, err
		}
		return s.Decode()

	case Array:
		arr, err := h.Array()
		if err != nil {
			return nil, err
		}
		out := []any{}
		it := arr.NewIter()
		for it.Next() {
			v, err := it.Value().Decode(assoc)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		if it.Err() != nil {
			return nil, it.Err()
		}
		return out, nil

	case Object:
		obj, err := h.Object()
		if err != nil {
			return nil, err
		}
		it := obj.NewIter()
		if assoc {
			m := make(map[string]any)
			for it.Next() {
				v, err := it.Value().Decode(assoc)
				if err != nil {
					return nil, err
				}
				m[it.Key()] = v
			}
			if it.Err() != nil {
				return nil, it.Err()
			}
			return m, nil
		}
		var members []ast.Member
		for it.Next() {
			child := it.Value()
			v, err := child.Decode(assoc)
			if err != nil {
				return nil, err
			}
			members = append(members, ast.NewMember(
				ast.Span{Start: child.Start(), End: child.End()},
				it.Key(),
				v,
			))
		}
		if it.Err() != nil {
			return nil, it.Err()
		}
		return ast.NewObject(ast.Span{Start: h.start, End: h.end}, members), nil

	default:
		return nil, &Error{Kind: KindLogic, Pos: h.start, Err: errUnknownVariant(h.variant)}
	}
}

// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lazyjson

// arrayState holds an Array handle's type-specific state: the position
// cache (nil when useCache is false) and the element count, known only
// after a full traversal.
type arrayState struct {
	cache *arrayCache
	count int
	known bool
}

func (h *Handle) ensureArrState() {
	if h.arr == nil {
		h.arr = &arrayState{}
		if h.useCache {
			h.arr.cache = newArrayCache()
		}
	}
}

// arrayWalkFull drains a fresh iterator to completion, establishing
// h.end and h.arr.count as a side effect. Used by Parse and by Len when
// the count is not yet known.
func (h *Handle) arrayWalkFull() error {
	h.ensureArrState()
	it := (&ArrayValue{h: h}).NewIter()
	for it.Next() {
	}
	return it.Err()
}

// ArrayValue is a typed view onto an Array handle.
type ArrayValue struct{ h *Handle }

// Array returns a view over h's elements. It reads nothing from the
// source and does not itself walk the array; Len, At, Has, and NewIter do
// that lazily.
func (h *Handle) Array() (*ArrayValue, error) {
	if h.variant != Array {
		return nil, &Error{Kind: KindLogic, Pos: h.start, Err: errString("not an array value")}
	}
	h.ensureArrState()
	return &ArrayValue{h: h}, nil
}

// Len returns the number of elements in the array, walking it fully if the
// count is not already known.
func (a *ArrayValue) Len() (int, error) {
	h := a.h
	if h.arr.known {
		return h.arr.count, nil
	}
	if err := h.arrayWalkFull(); err != nil {
		return 0, err
	}
	return h.arr.count, nil
}

// At returns the child handle at index i, or (nil, false, nil) if no such
// index exists. If the offset of index i is already cached, At seeks
// directly to it and dispatches a fresh handle with no prior children
// revisited; otherwise it walks forward from the start of the array.
func (a *ArrayValue) At(i int) (*Handle, bool, error) {
	h := a.h
	h.ensureArrState()
	if i < 0 {
		return nil, false, nil
	}
	if h.arr.known && i >= h.arr.count {
		return nil, false, nil
	}
	if h.arr.cache != nil {
		if pos, ok := h.arr.cache.get(i); ok {
			if err := h.src.SeekAbsolute(pos); err != nil {
				return nil, false, err
			}
			child, err := Load(h.src, h.useCache)
			if err != nil {
				return nil, false, err
			}
			if err := child.Parse(); err != nil {
				return nil, false, err
			}
			return child, true, nil
		}
	}
	it := a.NewIter()
	for it.Next() {
		if it.Index() == i {
			return it.Value(), true, nil
		}
	}
	if it.Err() != nil {
		return nil, false, it.Err()
	}
	return nil, false, nil
}

// Has reports whether index i is present.
func (a *ArrayValue) Has(i int) (bool, error) {
	_, ok, err := a.At(i)
	return ok, err
}

// NewIter returns a fresh iterator over a's elements, always starting from
// the array's opening bracket regardless of any prior iterator's progress.
func (a *ArrayValue) NewIter() *ArrayIter {
	a.h.ensureArrState()
	return &ArrayIter{a: a, pos: a.h.start}
}

// ArrayIter is a stateful, forward-only iterator over an array's elements.
type ArrayIter struct {
	a      *ArrayValue
	pos    int64
	opened bool
	done   bool
	err    error
	idx    int
	curIdx int
	child  *Handle
}

// Next advances the iterator. It returns false at the end of the array or
// on error; distinguish the two with Err.
func (it *ArrayIter) Next() bool {
	if it.done {
		return false
	}
	h := it.a.h
	src := h.src

	if !it.opened {
		if err := src.SeekAbsolute(it.pos); err != nil {
			return it.fail(err)
		}
		b, err := readReq1(src)
		if err != nil {
			return it.fail(err)
		}
		if b != '[' {
			return it.fail(&Error{Kind: KindLogic, Pos: it.pos, Err: errString("array handle did not start with '['")})
		}
		if err := skipWhitespace(src); err != nil {
			return it.fail(err)
		}
		pb, ok, err := src.Peek()
		if err != nil {
			return it.fail(err)
		}
		if ok && pb == ']' {
			if _, err := src.Read(1, true); err != nil {
				return it.fail(err)
			}
			h.arr.count, h.arr.known = 0, true
			h.end = src.Tell()
			return it.finish()
		}
		it.opened = true
	} else {
		if err := src.SeekAbsolute(it.pos); err != nil {
			return it.fail(err)
		}
		if err := skipWhitespace(src); err != nil {
			return it.fail(err)
		}
		b, err := readReq1(src)
		if err != nil {
			return it.fail(err)
		}
		switch b {
		case ',':
			if err := skipWhitespace(src); err != nil {
				return it.fail(err)
			}
			pb, ok, err := src.Peek()
			if err != nil {
				return it.fail(err)
			}
			if ok && pb == ']' {
				return it.fail(&Error{Kind: KindInvalidStructure, Pos: src.Tell(), Err: errString("trailing comma")})
			}
		case ']':
			h.arr.count, h.arr.known = it.idx, true
			h.end = src.Tell()
			return it.finish()
		default:
			return it.fail(&Error{Kind: KindInvalidStructure, Pos: src.Tell(), Err: errString("expected ',' or ']'")})
		}
	}

	childStart := src.Tell()
	if h.arr.cache != nil {
		h.arr.cache.put(it.idx, childStart)
	}
	child, err := Load(src, h.useCache)
	if err != nil {
		return it.fail(err)
	}
	if err := child.Parse(); err != nil {
		return it.fail(err)
	}
	it.child = child
	it.curIdx = it.idx
	it.pos = child.end
	it.idx++
	return true
}

func (it *ArrayIter) fail(err error) bool {
	it.err = err
	it.done = true
	return false
}

func (it *ArrayIter) finish() bool {
	it.done = true
	return false
}

// Index returns the index of the child most recently yielded by Next.
func (it *ArrayIter) Index() int { return it.curIdx }

// Value returns the child most recently yielded by Next.
func (it *ArrayIter) Value() *Handle { return it.child }

// Err returns the error, if any, that stopped iteration.
func (it *ArrayIter) Err() error { return it.err }

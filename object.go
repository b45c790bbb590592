// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lazyjson

// objectState holds an Object handle's type-specific state: the position
// cache, keyed by decoded property name and mapping to the byte offset of
// the property's *value* (not its key), and the member count, known only
// after a full traversal.
type objectState struct {
	cache *objectCache
	count int
	known bool
}

func (h *Handle) ensureObjState() {
	if h.obj == nil {
		h.obj = &objectState{}
		if h.useCache {
			h.obj.cache = newObjectCache()
		}
	}
}

func (h *Handle) objectWalkFull() error {
	h.ensureObjState()
	it := (&ObjectValue{h: h}).NewIter()
	for it.Next() {
	}
	return it.Err()
}

// ObjectValue is a typed view onto an Object handle.
type ObjectValue struct{ h *Handle }

// Object returns a view over h's members. It reads nothing from the
// source; Len, Get, Has, and NewIter walk the object lazily.
func (h *Handle) Object() (*ObjectValue, error) {
	if h.variant != Object {
		return nil, &Error{Kind: KindLogic, Pos: h.start, Err: errString("not an object value")}
	}
	h.ensureObjState()
	return &ObjectValue{h: h}, nil
}

// Len returns the number of members in the object, walking it fully if the
// count is not already known.
func (o *ObjectValue) Len() (int, error) {
	h := o.h
	if h.obj.known {
		return h.obj.count, nil
	}
	if err := h.objectWalkFull(); err != nil {
		return 0, err
	}
	return h.obj.count, nil
}

// Get returns the value handle for key, or (nil, false, nil) if key is not
// present. If the offset is cached, Get seeks directly to it; otherwise, if
// the object has not been fully walked, Get iterates forward from the
// start of the object looking for key, stopping at the first occurrence
// found. For a duplicated key not yet fully scanned, that may not be the
// occurrence a subsequent full traversal would leave in the cache.
func (o *ObjectValue) Get(key string) (*Handle, bool, error) {
	h := o.h
	h.ensureObjState()
	if h.obj.cache != nil {
		if pos, ok := h.obj.cache.get(key); ok {
			return o.loadValueAt(pos)
		}
		if h.obj.known {
			return nil, false, nil
		}
	}
	it := o.NewIter()
	for it.Next() {
		if it.Key() == key {
			return it.Value(), true, nil
		}
	}
	if it.Err() != nil {
		return nil, false, it.Err()
	}
	return nil, false, nil
}

func (o *ObjectValue) loadValueAt(pos int64) (*Handle, bool, error) {
	if err := o.h.src.SeekAbsolute(pos); err != nil {
		return nil, false, err
	}
	child, err := Load(o.h.src, o.h.useCache)
	if err != nil {
		return nil, false, err
	}
	if err := child.Parse(); err != nil {
		return nil, false, err
	}
	return child, true, nil
}

// Has reports whether key is present. On an already-walked object with
// caching enabled, this consults the cache exclusively; otherwise it falls
// back to Get, which may re-walk the object.
func (o *ObjectValue) Has(key string) (bool, error) {
	h := o.h
	h.ensureObjState()
	if h.obj.known && h.obj.cache != nil {
		_, ok := h.obj.cache.get(key)
		return ok, nil
	}
	_, ok, err := o.Get(key)
	return ok, err
}

// Set always fails: Object handles are read-only.
func (o *ObjectValue) Set(key string, value any) error {
	return &Error{Kind: KindReadOnly, Pos: o.h.start}
}

// Remove always fails: Object handles are read-only.
func (o *ObjectValue) Remove(key string) error {
	return &Error{Kind: KindReadOnly, Pos: o.h.start}
}

// NewIter returns a fresh iterator over o's members, always starting from
// the object's opening brace.
func (o *ObjectValue) NewIter() *ObjectIter {
	o.h.ensureObjState()
	return &ObjectIter{o: o, pos: o.h.start}
}

// ObjectIter is a stateful, forward-only iterator over an object's members
// in source order, including every occurrence of a duplicated key.
type ObjectIter struct {
	o      *ObjectValue
	pos    int64
	opened bool
	done   bool
	err    error
	idx    int
	curKey string
	child  *Handle
}

// Next advances the iterator. It returns false at the end of the object or
// on error; distinguish the two with Err.
func (it *ObjectIter) Next() bool {
	if it.done {
		return false
	}
	h := it.o.h
	src := h.src

	if !it.opened {
		if err := src.SeekAbsolute(it.pos); err != nil {
			return it.fail(err)
		}
		b, err := readReq1(src)
		if err != nil {
			return it.fail(err)
		}
		if b != '{' {
			return it.fail(&Error{Kind: KindLogic, Pos: it.pos, Err: errString("object handle did not start with '{'")})
		}
		if err := skipWhitespace(src); err != nil {
			return it.fail(err)
		}
		pb, ok, err := src.Peek()
		if err != nil {
			return it.fail(err)
		}
		if ok && pb == '}' {
			if _, err := src.Read(1, true); err != nil {
				return it.fail(err)
			}
			h.obj.count, h.obj.known = 0, true
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
			if ok && pb == '}' {
				return it.fail(&Error{Kind: KindInvalidStructure, Pos: src.Tell(), Err: errString("trailing comma")})
			}
		case '}':
			h.obj.count, h.obj.known = it.idx, true
			h.end = src.Tell()
			return it.finish()
		default:
			return it.fail(&Error{Kind: KindInvalidStructure, Pos: src.Tell(), Err: errString("expected ',' or '}'")})
		}
	}

	keyHandle, err := Load(src, false)
	if err != nil {
		return it.fail(err)
	}
	if keyHandle.variant != String {
		return it.fail(&Error{Kind: KindInvalidStructure, Pos: keyHandle.start, Err: errString("non-string key")})
	}
	keyStr, err := keyHandle.stringIterToEnd()
	if err != nil {
		return it.fail(err)
	}
	if err := src.SeekAbsolute(keyHandle.end); err != nil {
		return it.fail(err)
	}
	if err := skipWhitespace(src); err != nil {
		return it.fail(err)
	}
	cb, err := readReq1(src)
	if err != nil {
		return it.fail(err)
	}
	if cb != ':' {
		return it.fail(&Error{Kind: KindInvalidStructure, Pos: src.Tell(), Err: errString("expected ':'")})
	}
	if err := skipWhitespace(src); err != nil {
		return it.fail(err)
	}

	valueStart := src.Tell()
	if h.obj.cache != nil {
		h.obj.cache.put(keyStr, valueStart)
	}
	child, err := Load(src, h.useCache)
	if err != nil {
		return it.fail(err)
	}
	if err := child.Parse(); err != nil {
		return it.fail(err)
	}

	it.child = child
	it.curKey = keyStr
	it.pos = child.end
	it.idx++
	return true
}

func (it *ObjectIter) fail(err error) bool {
	it.err = err
	it.done = true
	return false
}

func (it *ObjectIter) finish() bool {
	it.done = true
	return false
}

// Key returns the key of the member most recently yielded by Next.
func (it *ObjectIter) Key() string { return it.curKey }

// Value returns the value handle of the member most recently yielded by
// Next.
func (it *ObjectIter) Value() *Handle { return it.child }

// Err returns the error, if any, that stopped iteration.
func (it *ObjectIter) Err() error { return it.err }

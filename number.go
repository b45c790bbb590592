// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lazyjson

import (
	"errors"
	"strconv"
)

// parseNumber recognises the JSON number grammar starting at h.start. It is
// a byte-at-a-time recogniser built on a re-seekable Source rather than a
// bufio.Reader.
func (h *Handle) parseNumber() error {
	src := h.src
	if err := src.SeekAbsolute(h.start); err != nil {
		return err
	}
	var buf []byte

	take := func() (byte, error) {
		b, ok, err := src.Peek()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, &Error{Kind: KindUnexpectedEOF, Pos: src.Tell()}
		}
		if _, err := src.Read(1, true); err != nil {
			return 0, err
		}
		buf = append(buf, b)
		return b, nil
	}
	digitRun := func() error {
		for {
			b, ok, err := src.Peek()
			if err != nil {
				return err
			}
			if !ok || !isDigit(b) {
				return nil
			}
			if _, err := take(); err != nil {
				return err
			}
		}
	}

	b, ok, err := src.Peek()
	if err != nil {
		return err
	}
	if ok && b == '-' {
		if _, err := take(); err != nil {
			return err
		}
	}

	b, ok, err = src.Peek()
	if err != nil {
		return err
	}
	if !ok {
		return &Error{Kind: KindInvalidNumber, Pos: src.Tell(), Err: errString("missing digits")}
	}
	switch {
	case b == '0':
		if _, err := take(); err != nil {
			return err
		}
	case isDigit(b):
		if _, err := take(); err != nil {
			return err
		}
		if err := digitRun(); err != nil {
			return err
		}
	default:
		return &Error{Kind: KindInvalidNumber, Pos: src.Tell(), Err: errString("expected digit")}
	}

	isFloat := false

	b, ok, err = src.Peek()
	if err != nil {
		return err
	}
	if ok && b == '.' {
		isFloat = true
		if _, err := take(); err != nil {
			return err
		}
		b, ok, err = src.Peek()
		if err != nil {
			return err
		}
		if !ok || !isDigit(b) {
			return &Error{Kind: KindInvalidNumber, Pos: src.Tell(), Err: errString("expected digit after decimal point")}
		}
		if err := digitRun(); err != nil {
			return err
		}
	}

	b, ok, err = src.Peek()
	if err != nil {
		return err
	}
	if ok && (b == 'e' || b == 'E') {
		isFloat = true
		if _, err := take(); err != nil {
			return err
		}
		b, ok, err = src.Peek()
		if err != nil {
			return err
		}
		if ok && (b == '+' || b == '-') {
			if _, err := take(); err != nil {
				return err
			}
		}
		b, ok, err = src.Peek()
		if err != nil {
			return err
		}
		if !ok || !isDigit(b) {
			return &Error{Kind: KindInvalidNumber, Pos: src.Tell(), Err: errString("expected exponent digit")}
		}
		if err := digitRun(); err != nil {
			return err
		}
	}

	b, ok, err = src.Peek()
	if err != nil {
		return err
	}
	if ok && !isValueTerminator(b) {
		return &Error{Kind: KindInvalidNumber, Pos: src.Tell(), Err: errUnexpectedByte(b)}
	}

	h.numRaw = buf
	h.numIsInt = !isFloat
	h.end = src.Tell()
	return nil
}

// decodeNumber converts the raw text of a parsed number into its numeric
// value, once. Overflowing integers fall back to a float, which in turn
// saturates to +/-Inf if the text itself is out of float range.
func (h *Handle) decodeNumber() error {
	if h.numParsed {
		return nil
	}
	text := string(h.numRaw)
	if h.numIsInt {
		v, err := strconv.ParseInt(text, 10, 64)
		if err == nil {
			h.numInt = v
			h.numParsed = true
			return nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// ParseFloat only fails outright on malformed input, which
		// parseNumber's grammar should never admit; ErrRange still yields a
		// usable saturated value (+/-Inf or 0) and is not an error here.
		return &Error{Kind: KindLogic, Pos: h.start, Err: err}
	}
	h.numIsInt = false
	h.numFloat = f
	h.numParsed = true
	return nil
}

// NumberValue is a typed view onto a parsed Number handle.
type NumberValue struct{ h *Handle }

// Number forces recognition of a Number handle and returns a view over its
// raw text and decoded value.
func (h *Handle) Number() (*NumberValue, error) {
	if h.variant != Number {
		return nil, &Error{Kind: KindLogic, Pos: h.start, Err: errString("not a number value")}
	}
	if !h.Loaded() {
		if err := h.parseNumber(); err != nil {
			return nil, err
		}
	}
	if err := h.decodeNumber(); err != nil {
		return nil, err
	}
	return &NumberValue{h: h}, nil
}

// RawText returns the undecoded textual form of the number, useful when the
// decoded value has overflowed the platform's floating range.
func (n *NumberValue) RawText() string { return string(n.h.numRaw) }

// IsInt reports whether the number decoded as a platform integer rather
// than a float.
func (n *NumberValue) IsInt() bool { return n.h.numIsInt }

// Int64 returns the decoded integer value and true, or (0, false) if the
// number decoded as a float.
func (n *NumberValue) Int64() (int64, bool) {
	if !n.h.numIsInt {
		return 0, false
	}
	return n.h.numInt, true
}

// Float64 returns the decoded value as a float64, converting from the
// integer representation if necessary. Out-of-range text produces
// math.Inf(1) or math.Inf(-1).
func (n *NumberValue) Float64() float64 {
	if n.h.numIsInt {
		return float64(n.h.numInt)
	}
	return n.h.numFloat
}

// Any returns the decoded value boxed as int64 or float64.
func (n *NumberValue) Any() any {
	if n.h.numIsInt {
		return n.h.numInt
	}
	return n.h.numFloat
}

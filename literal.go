// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lazyjson

// parseNull recognises the four-byte "null" literal.
func (h *Handle) parseNull() error {
	if err := h.src.SeekAbsolute(h.start); err != nil {
		return err
	}
	buf, err := h.src.Read(4, true)
	if err != nil {
		return err
	}
	if string(buf) != "null" {
		return &Error{Kind: KindInvalidLiteral, Pos: h.start, Err: errString("expected \"null\"")}
	}
	h.end = h.src.Tell()
	return nil
}

// Null forces recognition of a Null handle. It reports a logic error if h
// is not a Null variant.
func (h *Handle) Null() error {
	if h.variant != Null {
		return &Error{Kind: KindLogic, Pos: h.start, Err: errString("not a null value")}
	}
	if h.Loaded() {
		return nil
	}
	return h.parseNull()
}

// parseBoolean recognises "true" or "false".
func (h *Handle) parseBoolean() error {
	if err := h.src.SeekAbsolute(h.start); err != nil {
		return err
	}
	first, err := h.src.Read(1, true)
	if err != nil {
		return err
	}
	switch first[0] {
	case 't':
		rest, err := h.src.Read(3, true)
		if err != nil {
			return err
		}
		if string(rest) != "rue" {
			return &Error{Kind: KindInvalidLiteral, Pos: h.start, Err: errString("expected \"true\"")}
		}
		h.boolVal = true
	case 'f':
		rest, err := h.src.Read(4, true)
		if err != nil {
			return err
		}
		if string(rest) != "alse" {
			return &Error{Kind: KindInvalidLiteral, Pos: h.start, Err: errString("expected \"false\"")}
		}
		h.boolVal = false
	default:
		return &Error{Kind: KindLogic, Pos: h.start, Err: errString("boolean handle did not start with 't' or 'f'")}
	}
	h.end = h.src.Tell()
	return nil
}

// Bool forces recognition of a Boolean handle and returns its decoded
// truth value.
func (h *Handle) Bool() (bool, error) {
	if h.variant != Boolean {
		return false, &Error{Kind: KindLogic, Pos: h.start, Err: errString("not a boolean value")}
	}
	if !h.Loaded() {
		if err := h.parseBoolean(); err != nil {
			return false, err
		}
	}
	return h.boolVal, nil
}

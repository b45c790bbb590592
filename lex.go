// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lazyjson

// Shared lexical primitives. These are free functions rather than methods
// of a base type, since none of them need per-handle state.

// skipWhitespace consumes any run of the four JSON whitespace bytes at the
// source's current position.
func skipWhitespace(src Source) error {
	for {
		b, ok, err := src.Peek()
		if err != nil {
			return err
		}
		if !ok || !isSpace(b) {
			return nil
		}
		if _, err := src.Read(1, true); err != nil {
			return err
		}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isValueTerminator reports whether b may legally follow a number or
// literal token: a structural byte, a separator, or whitespace. Used by the
// number recogniser to decide whether an unexpected byte ends the number or
// is a genuine grammar error.
func isValueTerminator(b byte) bool {
	switch b {
	case ',', ']', '}', ':', ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func hexVal(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}

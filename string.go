// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lazyjson

import (
	"strings"
	"unicode/utf8"

	"github.com/basinlabs/lazyjson/internal/escape"
	"go4.org/mem"
)

// StringValue is a typed view onto a String handle. Unlike Number or
// Boolean, a String handle keeps no persistent decoded state of its own;
// every StringValue method re-derives what it needs from the source.
type StringValue struct{ h *Handle }

// String returns a view over h, which must be a String variant. Unlike
// Number and Boolean, this does not force recognition: recognition happens
// lazily as characters are streamed or Decode is called.
func (h *Handle) String() (*StringValue, error) {
	if h.variant != String {
		return nil, &Error{Kind: KindLogic, Pos: h.start, Err: errString("not a string value")}
	}
	return &StringValue{h: h}, nil
}

// Chars returns a fresh, non-restartable iterator over the decoded UTF-8
// bytes of the string, starting from the handle's start offset regardless
// of how far a previous iterator (if any) progressed.
func (s *StringValue) Chars() *StringIter {
	return &StringIter{h: s.h, pos: s.h.start}
}

// Decode returns the fully decoded string. If the handle has already been
// parsed, this takes a fast path: it reads the (already validated) raw
// bytes in one shot and unescapes them with internal/escape, instead of
// re-running the streaming state machine.
func (s *StringValue) Decode() (string, error) {
	h := s.h
	if h.Loaded() {
		if err := h.src.SeekAbsolute(h.start + 1); err != nil {
			return "", err
		}
		n := int(h.end - h.start - 2)
		buf, err := h.src.Read(n, true)
		if err != nil {
			return "", err
		}
		dec, err := escape.Unquote(mem.B(buf))
		if err != nil {
			return "", &Error{Kind: KindInvalidString, Pos: h.start, Err: err}
		}
		return string(dec), nil
	}

	var sb strings.Builder
	it := s.Chars()
	for it.Next() {
		sb.Write(it.Bytes())
	}
	if it.Err() != nil {
		return "", it.Err()
	}
	return sb.String(), nil
}

// stringIterToEnd decodes h in full through Decode; for a handle not yet
// loaded this drains a fresh iterator, forcing h.end to be set. It returns
// the decoded content: Parse discards it, and the object walker uses it as
// the member's key.
func (h *Handle) stringIterToEnd() (string, error) {
	return (&StringValue{h: h}).Decode()
}

// StringIter is a stateful iterator that yields chunks of decoded UTF-8
// bytes from a JSON string, one escape sequence or one raw byte at a time.
// The reader is byte-oriented: an unescaped multi-byte UTF-8
// sequence in the source is delivered to the caller one raw byte per step,
// while an escape sequence (including a surrogate pair) is delivered as a
// single fully-decoded chunk.
type StringIter struct {
	h       *Handle
	pos     int64
	opened  bool
	done    bool
	err     error
	current []byte
}

// Next advances the iterator, returning true if a chunk is available.
func (it *StringIter) Next() bool {
	if it.done {
		return false
	}
	src := it.h.src
	if err := src.SeekAbsolute(it.pos); err != nil {
		return it.fail(err)
	}
	if !it.opened {
		b, err := readReq1(src)
		if err != nil {
			return it.fail(err)
		}
		if b != '"' {
			return it.fail(&Error{Kind: KindLogic, Pos: it.pos, Err: errString("string handle did not start with '\"'")})
		}
		it.opened = true
		it.pos = src.Tell()
	}

	b, err := readReq1(src)
	if err != nil {
		return it.fail(err)
	}
	switch {
	case b < 0x20:
		return it.fail(&Error{Kind: KindInvalidString, Pos: it.pos, Err: errString("control byte in string")})
	case b == '"':
		it.h.end = src.Tell()
		it.done = true
		return false
	case b == '\\':
		chunk, err := decodeEscape(src)
		if err != nil {
			return it.fail(err)
		}
		it.current = chunk
	default:
		it.current = []byte{b}
	}
	it.pos = src.Tell()
	return true
}

func (it *StringIter) fail(err error) bool {
	it.err = err
	it.done = true
	return false
}

// Bytes returns the current chunk. Valid only after a call to Next that
// returned true, and only until the next call to Next.
func (it *StringIter) Bytes() []byte { return it.current }

// Err returns the error, if any, that stopped iteration.
func (it *StringIter) Err() error { return it.err }

func readReq1(src Source) (byte, error) {
	buf, err := src.Read(1, true)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// decodeEscape decodes the escape body following a '\' already consumed
// from src.
func decodeEscape(src Source) ([]byte, error) {
	b, err := readReq1(src)
	if err != nil {
		return nil, err
	}
	switch b {
	case '"', '\\', '/':
		return []byte{b}, nil
	case 'b':
		return []byte{0x08}, nil
	case 'f':
		return []byte{0x0C}, nil
	case 'n':
		return []byte{0x0A}, nil
	case 'r':
		return []byte{0x0D}, nil
	case 't':
		return []byte{0x09}, nil
	case 'u':
		u, err := readHex4(src)
		if err != nil {
			return nil, err
		}
		return decodeUnicodeEscape(src, u)
	default:
		return nil, &Error{Kind: KindInvalidString, Pos: src.Tell(), Err: errString("invalid escape")}
	}
}

// decodeUnicodeEscape decodes a \uXXXX code unit already read as u, resolving
// surrogate pairs by reading a second \uXXXX escape from src if needed.
func decodeUnicodeEscape(src Source, u uint16) ([]byte, error) {
	switch {
	case u < 0xD800 || u > 0xDFFF:
		return encodeRune(rune(u)), nil
	case u >= 0xDC00:
		return nil, &Error{Kind: KindInvalidString, Pos: src.Tell(), Err: errString("invalid high surrogate")}
	}

	// u is a high surrogate; the next two bytes must be "\u" followed by a
	// low surrogate.
	b1, err := readReq1(src)
	if err != nil {
		return nil, err
	}
	b2, err := readReq1(src)
	if err != nil {
		return nil, err
	}
	if b1 != '\\' || b2 != 'u' {
		return nil, &Error{Kind: KindInvalidString, Pos: src.Tell(), Err: errString("high surrogate not followed by \\u escape")}
	}
	v, err := readHex4(src)
	if err != nil {
		return nil, err
	}
	if v < 0xDC00 || v > 0xDFFF {
		return nil, &Error{Kind: KindInvalidString, Pos: src.Tell(), Err: errString("invalid low surrogate")}
	}
	cp := 0x10000 + (rune(u-0xD800) << 10) + rune(v-0xDC00)
	return encodeRune(cp), nil
}

func encodeRune(r rune) []byte {
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, r)
	return buf[:n]
}

func readHex4(src Source) (uint16, error) {
	buf, err := src.Read(4, true)
	if err != nil {
		return 0, err
	}
	var v uint16
	for _, b := range buf {
		d := hexVal(b)
		if d < 0 {
			return 0, &Error{Kind: KindInvalidString, Pos: src.Tell(), Err: errString("invalid unicode escape")}
		}
		v = v<<4 | uint16(d)
	}
	return v, nil
}

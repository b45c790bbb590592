// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lazyjson

import (
	"errors"
	"io"
)

// A Source is a random-access stream of bytes. Handles share one Source and
// must therefore re-seek to the offset relevant to their own work before
// reading; callers may reposition a Source's cursor arbitrarily between any
// two operations on any handle derived from it.
//
// A Source is not safe for concurrent use by multiple goroutines.
type Source interface {
	// Read returns the next n bytes from the current position, advancing the
	// cursor by the number of bytes actually returned. If requireAll is true
	// and fewer than n bytes remain, Read fails with an unexpected-EOF error.
	// If requireAll is false, Read returns the short read without error
	// (except at EOF with zero bytes available, which still succeeds with an
	// empty slice).
	Read(n int, requireAll bool) ([]byte, error)

	// Peek returns the next byte without consuming it. ok is false at EOF.
	Peek() (b byte, ok bool, err error)

	// SeekAbsolute repositions the cursor to an absolute byte offset.
	SeekAbsolute(pos int64) error

	// SeekRelative repositions the cursor by delta bytes from its current
	// position.
	SeekRelative(delta int64) error

	// Tell reports the current cursor position.
	Tell() int64

	// EOF reports whether the cursor is at the end of the stream. It may
	// need to attempt a zero-effect read to find out.
	EOF() bool
}

// ByteSource adapts an io.ReadSeeker into a Source. It is the reference
// implementation used throughout this package; callers who already have a
// file or an in-memory buffer open can wrap it directly.
type ByteSource struct {
	r    io.ReadSeeker
	pos  int64
	size int64 // -1 if unknown
	eof  bool
}

// NewByteSource constructs a Source backed by r. If r also implements
// io.Seeker to a known end (via io.SeekEnd), the size is cached so EOF can
// be answered without a read; otherwise EOF is discovered lazily.
func NewByteSource(r io.ReadSeeker) *ByteSource {
	pos, _ := r.Seek(0, io.SeekCurrent)
	size := int64(-1)
	if end, err := r.Seek(0, io.SeekEnd); err == nil {
		size = end
		r.Seek(pos, io.SeekStart)
	}
	return &ByteSource{r: r, pos: pos, size: size}
}

func (s *ByteSource) Read(n int, requireAll bool) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	got, err := io.ReadFull(s.r, buf)
	s.pos += int64(got)
	buf = buf[:got]
	if err == nil {
		return buf, nil
	}
	if errors.Is(err, io.EOF) && got == 0 {
		s.eof = true
		if requireAll {
			return nil, &Error{Kind: KindUnexpectedEOF, Pos: s.pos}
		}
		return buf, nil
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		s.eof = true
		if requireAll {
			return nil, &Error{Kind: KindUnexpectedEOF, Pos: s.pos}
		}
		return buf, nil
	}
	return buf, &Error{Kind: KindIO, Pos: s.pos, Err: err}
}

func (s *ByteSource) Peek() (byte, bool, error) {
	buf, err := s.Read(1, false)
	if err != nil {
		return 0, false, err
	}
	if len(buf) == 0 {
		return 0, false, nil
	}
	if err := s.SeekRelative(-1); err != nil {
		return 0, false, err
	}
	return buf[0], true, nil
}

func (s *ByteSource) SeekAbsolute(pos int64) error {
	got, err := s.r.Seek(pos, io.SeekStart)
	if err != nil {
		return &Error{Kind: KindIO, Pos: pos, Err: err}
	}
	s.pos = got
	s.eof = false
	return nil
}

func (s *ByteSource) SeekRelative(delta int64) error {
	got, err := s.r.Seek(delta, io.SeekCurrent)
	if err != nil {
		return &Error{Kind: KindIO, Pos: s.pos + delta, Err: err}
	}
	s.pos = got
	s.eof = false
	return nil
}

func (s *ByteSource) Tell() int64 { return s.pos }

func (s *ByteSource) EOF() bool {
	if s.size >= 0 {
		return s.pos >= s.size
	}
	if s.eof {
		return true
	}
	_, ok, err := s.Peek()
	return err == nil && !ok
}

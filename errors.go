// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lazyjson

import "fmt"

// Kind classifies the error kinds defined by this package. Use errors.As to
// recover an *Error and inspect its Kind, or errors.Is against the sentinel
// Err* values below.
type Kind int

const (
	_ Kind = iota
	KindSourceUnusable
	KindUnexpectedEOF
	KindUnexpectedByte
	KindInvalidLiteral
	KindInvalidNumber
	KindInvalidString
	KindInvalidStructure
	KindReadOnly
	KindIO
	KindLogic
)

var kindStr = [...]string{
	KindSourceUnusable:   "invalid source",
	KindUnexpectedEOF:    "unexpected end of input",
	KindUnexpectedByte:   "unexpected byte",
	KindInvalidLiteral:   "invalid literal",
	KindInvalidNumber:    "invalid number",
	KindInvalidString:    "invalid string",
	KindInvalidStructure: "invalid container structure",
	KindReadOnly:         "read-only violation",
	KindIO:               "I/O failure",
	KindLogic:            "logic error",
}

func (k Kind) String() string {
	if k <= 0 || int(k) >= len(kindStr) {
		return "unknown error"
	}
	return kindStr[k]
}

// Error is the concrete error type reported by this package. It carries the
// byte offset at which the error was detected, when one is known.
type Error struct {
	Kind Kind
	Pos  int64 // -1 if the error has no meaningful position
	Err  error // underlying cause, or nil
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Pos >= 0 {
		return fmt.Sprintf("%s (offset %d)", msg, e.Pos)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a sentinel *Error for the same Kind, so
// callers can write errors.Is(err, lazyjson.ErrInvalidNumber).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Pos < 0 && t.Err == nil
}

// Sentinel errors for use with errors.Is. Each names one error kind; they
// carry no position because they only identify the kind.
var (
	ErrSourceUnusable   = &Error{Kind: KindSourceUnusable, Pos: -1}
	ErrUnexpectedEOF    = &Error{Kind: KindUnexpectedEOF, Pos: -1}
	ErrUnexpectedByte   = &Error{Kind: KindUnexpectedByte, Pos: -1}
	ErrInvalidLiteral   = &Error{Kind: KindInvalidLiteral, Pos: -1}
	ErrInvalidNumber    = &Error{Kind: KindInvalidNumber, Pos: -1}
	ErrInvalidString    = &Error{Kind: KindInvalidString, Pos: -1}
	ErrInvalidStructure = &Error{Kind: KindInvalidStructure, Pos: -1}
	ErrReadOnly         = &Error{Kind: KindReadOnly, Pos: -1}
	ErrIO               = &Error{Kind: KindIO, Pos: -1}
	ErrLogic            = &Error{Kind: KindLogic, Pos: -1}
)

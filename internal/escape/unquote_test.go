// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/basinlabs/lazyjson/internal/escape"
	"go4.org/mem"
)

func TestUnquoteNoEscapes(t *testing.T) {
	got, err := escape.Unquote(mem.S("hello"))
	if err != nil {
		t.Fatalf("Unquote: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("Unquote = %q, want hello", got)
	}
}

func TestUnquoteBasicEscapes(t *testing.T) {
	got, err := escape.Unquote(mem.S(`a\tb\nc\"d`))
	if err != nil {
		t.Fatalf("Unquote: %v", err)
	}
	if want := "a\tb\nc\"d"; string(got) != want {
		t.Errorf("Unquote = %q, want %q", got, want)
	}
}

func TestUnquoteSurrogatePair(t *testing.T) {
	got, err := escape.Unquote(mem.S(`\uD83D\uDE0A`))
	if err != nil {
		t.Fatalf("Unquote: %v", err)
	}
	if want := "\U0001F60A"; string(got) != want {
		t.Errorf("Unquote(surrogate pair) = %q, want %q", got, want)
	}
}

func TestUnquoteLoneLowSurrogateSubstitutesReplacementRune(t *testing.T) {
	got, err := escape.Unquote(mem.S(`\uDC00`))
	if err != nil {
		t.Fatalf("Unquote: %v", err)
	}
	if want := "�"; string(got) != want {
		t.Errorf("Unquote(lone low surrogate) = %q, want replacement rune", got)
	}
}

func TestUnquoteHighSurrogateNotFollowedByLow(t *testing.T) {
	got, err := escape.Unquote(mem.S(`\uD83D!`))
	if err != nil {
		t.Fatalf("Unquote: %v", err)
	}
	// No following \u escape: the high surrogate is substituted alone, and
	// the literal "!" passes through untouched.
	if want := "�!"; string(got) != want {
		t.Errorf("Unquote(unpaired high surrogate) = %q, want %q", got, want)
	}
}

func TestUnquoteIncompleteEscape(t *testing.T) {
	if _, err := escape.Unquote(mem.S(`abc\`)); err == nil {
		t.Error("Unquote with trailing backslash: got nil error")
	}
}

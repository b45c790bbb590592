// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lazyjson_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/basinlabs/lazyjson"
)

func TestByteSourceSeekAndTell(t *testing.T) {
	src := lazyjson.NewByteSource(strings.NewReader("abcdef"))
	buf, err := src.Read(3, true)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf) != "abc" {
		t.Fatalf("Read = %q, want abc", buf)
	}
	if got := src.Tell(); got != 3 {
		t.Fatalf("Tell = %d, want 3", got)
	}
	if err := src.SeekAbsolute(1); err != nil {
		t.Fatalf("SeekAbsolute: %v", err)
	}
	b, ok, err := src.Peek()
	if err != nil || !ok || b != 'b' {
		t.Fatalf("Peek = %q, %v, %v, want 'b', true, nil", b, ok, err)
	}
	if err := src.SeekRelative(2); err != nil {
		t.Fatalf("SeekRelative: %v", err)
	}
	if got := src.Tell(); got != 3 {
		t.Fatalf("Tell after SeekRelative = %d, want 3", got)
	}
}

func TestByteSourceEOF(t *testing.T) {
	src := lazyjson.NewByteSource(strings.NewReader("ab"))
	if src.EOF() {
		t.Fatal("EOF at start, want false")
	}
	if _, err := src.Read(2, true); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !src.EOF() {
		t.Fatal("EOF after consuming all bytes, want true")
	}
	if _, ok, err := src.Peek(); err != nil || ok {
		t.Fatalf("Peek at EOF = ok=%v err=%v, want ok=false err=nil", ok, err)
	}
}

func TestByteSourceRequireAllShortRead(t *testing.T) {
	src := lazyjson.NewByteSource(strings.NewReader("ab"))
	_, err := src.Read(5, true)
	if err == nil {
		t.Fatal("Read(5, true) on 2-byte source: got nil error, want unexpected EOF")
	}
	var lerr *lazyjson.Error
	if !errors.As(err, &lerr) || lerr.Kind != lazyjson.KindUnexpectedEOF {
		t.Errorf("Read error = %v, want KindUnexpectedEOF", err)
	}
}

func TestByteSourceRequireAllFalseShortRead(t *testing.T) {
	src := lazyjson.NewByteSource(strings.NewReader("ab"))
	buf, err := src.Read(5, false)
	if err != nil {
		t.Fatalf("Read(5, false): %v", err)
	}
	if string(buf) != "ab" {
		t.Fatalf("Read = %q, want ab", buf)
	}
}


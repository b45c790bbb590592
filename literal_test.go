// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lazyjson_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/basinlabs/lazyjson"
)

func TestNullValue(t *testing.T) {
	h := load(t, "null")
	if err := h.Null(); err != nil {
		t.Fatalf("Null: %v", err)
	}
	if h.End() != 4 {
		t.Errorf("End() = %d, want 4", h.End())
	}
}

func TestNullMalformed(t *testing.T) {
	h := load(t, "nul")
	err := h.Null()
	var lerr *lazyjson.Error
	if !errors.As(err, &lerr) || lerr.Kind != lazyjson.KindUnexpectedEOF {
		t.Errorf("Null() error = %v, want KindUnexpectedEOF", err)
	}
}

func TestBoolValues(t *testing.T) {
	for _, test := range []struct {
		text string
		want bool
	}{
		{"true", true},
		{"false", false},
	} {
		h := load(t, test.text)
		got, err := h.Bool()
		if err != nil {
			t.Fatalf("Bool(%q): %v", test.text, err)
		}
		if got != test.want {
			t.Errorf("Bool(%q) = %v, want %v", test.text, got, test.want)
		}
	}
}

func TestBoolWrongVariant(t *testing.T) {
	h := load(t, "null")
	_, err := h.Bool()
	var lerr *lazyjson.Error
	if !errors.As(err, &lerr) || lerr.Kind != lazyjson.KindLogic {
		t.Errorf("Bool() on null error = %v, want KindLogic", err)
	}
}

func TestBoolMalformed(t *testing.T) {
	src := lazyjson.NewByteSource(strings.NewReader("truX"))
	h, err := lazyjson.Load(src, true)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	_, err = h.Bool()
	var lerr *lazyjson.Error
	if !errors.As(err, &lerr) || lerr.Kind != lazyjson.KindInvalidLiteral {
		t.Errorf("Bool(truX) error = %v, want KindInvalidLiteral", err)
	}
}

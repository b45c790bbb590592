// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lazyjson_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/basinlabs/lazyjson"
)

func TestNumberInteger(t *testing.T) {
	h := load(t, "-42")
	n, err := h.Number()
	if err != nil {
		t.Fatalf("Number: %v", err)
	}
	if !n.IsInt() {
		t.Fatal("IsInt() = false, want true")
	}
	v, ok := n.Int64()
	if !ok || v != -42 {
		t.Errorf("Int64() = %d, %v, want -42, true", v, ok)
	}
	if n.RawText() != "-42" {
		t.Errorf("RawText() = %q, want -42", n.RawText())
	}
}

func TestNumberFloat(t *testing.T) {
	h := load(t, "3.14")
	n, err := h.Number()
	if err != nil {
		t.Fatalf("Number: %v", err)
	}
	if n.IsInt() {
		t.Fatal("IsInt() = true, want false")
	}
	if n.Float64() != 3.14 {
		t.Errorf("Float64() = %v, want 3.14", n.Float64())
	}
}

func TestNumberOverflowFallsBackToFloat(t *testing.T) {
	h := load(t, "99999999999999999999999999")
	n, err := h.Number()
	if err != nil {
		t.Fatalf("Number: %v", err)
	}
	if n.IsInt() {
		t.Fatal("IsInt() = true for an overflowing literal, want false")
	}
	if n.Float64() <= 0 {
		t.Errorf("Float64() = %v, want a large positive value", n.Float64())
	}
}

func TestNumberExponentSaturatesToInf(t *testing.T) {
	h := load(t, "1e400")
	n, err := h.Number()
	if err != nil {
		t.Fatalf("Number: %v", err)
	}
	if !math.IsInf(n.Float64(), 1) {
		t.Errorf("Float64() = %v, want +Inf", n.Float64())
	}
}

func TestNumberEOFTerminated(t *testing.T) {
	// A number with no trailing delimiter, ending exactly at EOF, is valid.
	h := load(t, "123")
	n, err := h.Number()
	if err != nil {
		t.Fatalf("Number: %v", err)
	}
	v, _ := n.Int64()
	if v != 123 {
		t.Errorf("Int64() = %d, want 123", v)
	}
}

func TestNumberLeadingZero(t *testing.T) {
	// "01" is not a valid JSON number: a leading zero may not be followed
	// by another digit.
	src := lazyjson.NewByteSource(strings.NewReader("01"))
	h, err := lazyjson.Load(src, true)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	_, err = h.Number()
	var lerr *lazyjson.Error
	if !errors.As(err, &lerr) || lerr.Kind != lazyjson.KindInvalidNumber {
		t.Errorf("Number(01) error = %v, want KindInvalidNumber", err)
	}
}

func TestNumberZeroAlone(t *testing.T) {
	h := load(t, "0")
	n, err := h.Number()
	if err != nil {
		t.Fatalf("Number: %v", err)
	}
	v, ok := n.Int64()
	if !ok || v != 0 {
		t.Errorf("Int64() = %d, %v, want 0, true", v, ok)
	}
}

func TestNumberMissingDigits(t *testing.T) {
	h := load(t, "-")
	_, err := h.Number()
	var lerr *lazyjson.Error
	if !errors.As(err, &lerr) || (lerr.Kind != lazyjson.KindInvalidNumber && lerr.Kind != lazyjson.KindUnexpectedEOF) {
		t.Errorf("Number(-) error = %v, want KindInvalidNumber or KindUnexpectedEOF", err)
	}
}

func TestNumberAny(t *testing.T) {
	hi := load(t, "7")
	ni, _ := hi.Number()
	if v, ok := ni.Any().(int64); !ok || v != 7 {
		t.Errorf("Any() = %#v, want int64(7)", ni.Any())
	}
	hf := load(t, "7.5")
	nf, _ := hf.Number()
	if v, ok := nf.Any().(float64); !ok || v != 7.5 {
		t.Errorf("Any() = %#v, want float64(7.5)", nf.Any())
	}
}

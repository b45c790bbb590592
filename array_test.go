// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lazyjson_test

import (
	"errors"
	"testing"

	"github.com/basinlabs/lazyjson"
)

func TestArrayEmpty(t *testing.T) {
	h := load(t, "[]")
	arr, err := h.Array()
	if err != nil {
		t.Fatalf("Array: %v", err)
	}
	n, err := arr.Len()
	if err != nil {
		t.Fatalf("Len: %v", err)
	}
	if n != 0 {
		t.Errorf("Len() = %d, want 0", n)
	}
}

func TestArrayIterationOrder(t *testing.T) {
	h := load(t, "[false, true, null]")
	arr, err := h.Array()
	if err != nil {
		t.Fatalf("Array: %v", err)
	}
	it := arr.NewIter()
	var variants []lazyjson.Variant
	for it.Next() {
		variants = append(variants, it.Value().Variant())
	}
	if it.Err() != nil {
		t.Fatalf("iteration: %v", it.Err())
	}
	want := []lazyjson.Variant{lazyjson.Boolean, lazyjson.Boolean, lazyjson.Null}
	if len(variants) != len(want) {
		t.Fatalf("got %v, want %v", variants, want)
	}
	for i := range want {
		if variants[i] != want[i] {
			t.Errorf("element %d variant = %v, want %v", i, variants[i], want[i])
		}
	}
}

func TestArrayAtIndependentLookup(t *testing.T) {
	h := load(t, "[false, true]")
	arr, err := h.Array()
	if err != nil {
		t.Fatalf("Array: %v", err)
	}
	v1, ok, err := arr.At(1)
	if err != nil || !ok {
		t.Fatalf("At(1) = %v, %v, %v", v1, ok, err)
	}
	b1, err := v1.Bool()
	if err != nil || b1 != true {
		t.Fatalf("At(1).Bool() = %v, %v, want true, nil", b1, err)
	}

	v0, ok, err := arr.At(0)
	if err != nil || !ok {
		t.Fatalf("At(0) = %v, %v, %v", v0, ok, err)
	}
	b0, err := v0.Bool()
	if err != nil || b0 != false {
		t.Fatalf("At(0).Bool() = %v, %v, want false, nil", b0, err)
	}
}

func TestArrayAtOutOfRange(t *testing.T) {
	h := load(t, "[1,2,3]")
	arr, _ := h.Array()
	_, ok, err := arr.At(10)
	if err != nil {
		t.Fatalf("At(10): %v", err)
	}
	if ok {
		t.Error("At(10) ok = true, want false")
	}
}

func TestArrayTrailingCommaFails(t *testing.T) {
	h := load(t, "[1,2,]")
	arr, _ := h.Array()
	_, err := arr.Len()
	var lerr *lazyjson.Error
	if !errors.As(err, &lerr) || lerr.Kind != lazyjson.KindInvalidStructure {
		t.Errorf("Len() on trailing comma error = %v, want KindInvalidStructure", err)
	}
}

func TestArrayCacheAcceleratesRepeatedAt(t *testing.T) {
	h := load(t, "[10,20,30,40]")
	arr, _ := h.Array()
	// Walk once to populate the cache, then fetch out of order; this
	// should not require rescanning from the start.
	if _, err := arr.Len(); err != nil {
		t.Fatalf("Len: %v", err)
	}
	v, ok, err := arr.At(3)
	if err != nil || !ok {
		t.Fatalf("At(3) = %v, %v, %v", v, ok, err)
	}
	n, err := v.Number()
	if err != nil {
		t.Fatalf("Number: %v", err)
	}
	got, _ := n.Int64()
	if got != 40 {
		t.Errorf("At(3) = %d, want 40", got)
	}
}

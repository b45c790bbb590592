// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package lazyjson implements a lazy, seek-based JSON reader.
//
// # Loading
//
// Load inspects the byte at the current position of a Source and returns a
// Handle for the JSON value that starts there. Load does not parse the
// value; it only classifies it:
//
//	h, err := lazyjson.Load(src, true)
//	if err != nil {
//	   log.Fatalf("Load failed: %v", err)
//	}
//
// # Handles
//
// A Handle represents a single JSON value at a fixed byte offset in a
// Source. Scalars (null, boolean, number) are parsed the first time their
// value is requested. Containers (array, object) are walked lazily: asking
// for an element whose offset is cached seeks to that element's bytes and
// parses only it; otherwise the container is walked forward from its start,
// parsing each preceding element to skip over it.
//
//	switch h.Variant() {
//	case lazyjson.Array:
//	   arr, _ := h.Array()
//	   it := arr.NewIter()
//	   for it.Next() {
//	      fmt.Println(it.Index(), it.Value())
//	   }
//	case lazyjson.String:
//	   str, _ := h.String()
//	   s, err := str.Decode()
//	}
//
// # Decoding
//
// Decode materialises a Handle (and, recursively, its descendants) into an
// ordinary Go value. This is the only operation that reads an entire value
// into memory. Navigating without calling Decode, with caching disabled,
// keeps memory use bounded independent of document size; with caching
// enabled, each container's position cache grows with the number of
// children walked.
package lazyjson

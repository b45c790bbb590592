// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lazyjson

// Variant is the type tag of a JSON value handle.
type Variant byte

// The six JSON value variants.
const (
	Null Variant = iota
	Boolean
	Number
	String
	Array
	Object
)

var variantStr = [...]string{
	Null:    "null",
	Boolean: "boolean",
	Number:  "number",
	String:  "string",
	Array:   "array",
	Object:  "object",
}

func (v Variant) String() string {
	if int(v) >= len(variantStr) {
		return "invalid"
	}
	return variantStr[v]
}

// A Handle represents a single JSON value located at a fixed byte offset in
// a Source. Its identity is (source, start, variant); start is assigned at
// construction and never changes. end is assigned once, the first time the
// value is fully recognised ("parsed"), and a handle whose end is known may
// be skipped over without re-running its recogniser.
type Handle struct {
	src      Source
	variant  Variant
	start    int64
	end      int64 // -1 until loaded
	useCache bool

	// Variant-specific state, populated on first parse.
	boolVal bool

	numRaw    []byte
	numIsInt  bool
	numInt    int64
	numFloat  float64
	numParsed bool

	arr *arrayState
	obj *objectState
}

// Load inspects the byte source at its current cursor position and returns
// a Handle for the JSON value beginning there. Load does not parse the
// value; Parse, Decode, or any of the variant-specific accessors do that
// lazily. useCache controls whether Array/Object handles descending from
// this one memoise child offsets.
func Load(src Source, useCache bool) (*Handle, error) {
	if src == nil {
		return nil, &Error{Kind: KindSourceUnusable, Pos: -1, Err: errNilSource}
	}
	startPos := src.Tell()
	_, hadByte, err := src.Peek()
	if err != nil {
		return nil, err
	}
	if !hadByte && startPos == 0 {
		return nil, &Error{Kind: KindSourceUnusable, Pos: -1, Err: errString("empty source")}
	}
	if err := skipWhitespace(src); err != nil {
		return nil, err
	}
	b, ok, err := src.Peek()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &Error{Kind: KindUnexpectedEOF, Pos: src.Tell()}
	}

	var v Variant
	switch {
	case b == '{':
		v = Object
	case b == '[':
		v = Array
	case b == '"':
		v = String
	case b == 't' || b == 'f':
		v = Boolean
	case b == 'n':
		v = Null
	case b == '-' || isDigit(b):
		v = Number
	default:
		return nil, &Error{Kind: KindUnexpectedByte, Pos: src.Tell(), Err: errUnexpectedByte(b)}
	}

	return &Handle{src: src, variant: v, start: src.Tell(), end: -1, useCache: useCache}, nil
}

// Variant returns the type tag of h.
func (h *Handle) Variant() Variant { return h.variant }

// Start returns the absolute byte offset of h's first byte.
func (h *Handle) Start() int64 { return h.start }

// End returns the absolute byte offset one past h's last byte, or -1 if h
// has not yet been parsed.
func (h *Handle) End() int64 { return h.end }

// Loaded reports whether h has been fully recognised (End is known).
func (h *Handle) Loaded() bool { return h.end >= 0 }

// Parse forces full recognition of h, advancing the source's cursor to
// h.End(). It is a no-op (beyond re-seeking) if h is already loaded.
func (h *Handle) Parse() error {
	if h.Loaded() {
		return h.src.SeekAbsolute(h.end)
	}
	switch h.variant {
	case Null:
		return h.parseNull()
	case Boolean:
		return h.parseBoolean()
	case Number:
		return h.parseNumber()
	case String:
		_, err := h.stringIterToEnd()
		return err
	case Array:
		return h.arrayWalkFull()
	case Object:
		return h.objectWalkFull()
	default:
		return &Error{Kind: KindLogic, Pos: h.start, Err: errUnknownVariant(h.variant)}
	}
}

var errNilSource = errString("nil source")

type errString string

func (e errString) Error() string { return string(e) }

func errUnexpectedByte(b byte) error { return errString(quoteByte(b)) }

func errUnknownVariant(v Variant) error { return errString("unknown variant: " + v.String()) }

func quoteByte(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return "unexpected byte '" + string(b) + "'"
	}
	const hex = "0123456789abcdef"
	return "unexpected byte 0x" + string([]byte{hex[b>>4], hex[b&0xf]})
}

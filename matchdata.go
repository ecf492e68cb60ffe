package xuma

// MatchingData is the single value type that flows from a DataInput to a
// ValueMatcher. It is a closed tagged union: exactly one of the accessors
// below is meaningful, selected by Kind.
//
// None represents "the input found nothing in the context" — not an
// error, a legitimate evaluation outcome. Inputs return None when the
// context lacks the field, and matchers return false on None rather
// than erroring.
type MatchingData struct {
	kind  matchingKind
	str   string
	bytes []byte
	b     bool
}

type matchingKind uint8

const (
	kindNone matchingKind = iota
	kindString
	kindBytes
	kindBool
)

// String wraps a string value.
func String(s string) MatchingData { return MatchingData{kind: kindString, str: s} }

// Bytes wraps a byte-slice value.
func Bytes(b []byte) MatchingData { return MatchingData{kind: kindBytes, bytes: b} }

// Bool wraps a boolean value.
func Bool(b bool) MatchingData { return MatchingData{kind: kindBool, b: b} }

// None is the value returned by a DataInput when the context has nothing
// for it to extract.
var None = MatchingData{kind: kindNone}

// IsNone reports whether this is the None variant.
func (d MatchingData) IsNone() bool { return d.kind == kindNone }

// AsString returns the string payload and true if this is the String
// variant.
func (d MatchingData) AsString() (string, bool) {
	if d.kind != kindString {
		return "", false
	}
	return d.str, true
}

// AsBytes returns the bytes payload and true if this is the Bytes
// variant.
func (d MatchingData) AsBytes() ([]byte, bool) {
	if d.kind != kindBytes {
		return nil, false
	}
	return d.bytes, true
}

// AsBool returns the bool payload and true if this is the Bool variant.
func (d MatchingData) AsBool() (bool, bool) {
	if d.kind != kindBool {
		return false, false
	}
	return d.b, true
}

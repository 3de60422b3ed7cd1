package ui

import (
	"strconv"
	"strings"
)

// ValueKind indicates the type of an attribute value.
type ValueKind int

const (
	// ValueInvalid is the zero kind. It has no rendering rule.
	ValueInvalid ValueKind = iota

	// ValueString represents a quoted string literal.
	ValueString

	// ValueNumber represents a bare numeric literal.
	ValueNumber

	// ValueBool represents a bare boolean literal.
	ValueBool

	// ValueRecord represents a parenthesized list of Key: Value pairs.
	ValueRecord

	// ValueColor represents a '#'-prefixed hexadecimal color.
	ValueColor

	// ValueIdent represents a bare identifier such as Top or Center.
	ValueIdent
)

// String returns a string representation of the value kind.
func (k ValueKind) String() string {
	switch k {
	case ValueString:
		return "String"

	case ValueNumber:
		return "Number"

	case ValueBool:
		return "Bool"

	case ValueRecord:
		return "Record"

	case ValueColor:
		return "Color"

	case ValueIdent:
		return "Ident"

	default:
		return "Invalid"
	}
}

// Value is a tagged union over the attribute value kinds.
// Exactly one of the payload fields is meaningful, selected by Kind.
type Value struct {
	Kind   ValueKind
	Text   string  // ValueString, ValueColor (hex digits), ValueIdent
	Number float64 // ValueNumber
	Bool   bool    // ValueBool
	Record []Attr  // ValueRecord
}

// Attr is a single attribute entry.
// Literal attributes render as "@Key = Value", others as "Key: Value".
type Attr struct {
	Key     string
	Value   Value
	Literal bool
}

// String creates a string [Value].
func String(s string) Value {
	return Value{Kind: ValueString, Text: s}
}

// Number creates a numeric [Value].
func Number(n float64) Value {
	return Value{Kind: ValueNumber, Number: n}
}

// Int creates a numeric [Value] from an integer.
func Int(n int) Value {
	return Number(float64(n))
}

// Bool creates a boolean [Value].
func Bool(b bool) Value {
	return Value{Kind: ValueBool, Bool: b}
}

// Ident creates a bare identifier [Value].
func Ident(name string) Value {
	return Value{Kind: ValueIdent, Text: name}
}

// Color creates a color [Value] from a hex string.
// A leading '#' is accepted and dropped.
func Color(hex string) Value {
	return Value{Kind: ValueColor, Text: strings.TrimPrefix(hex, "#")}
}

// Record creates a record [Value] from the given fields.
func Record(fields ...Attr) Value {
	return Value{Kind: ValueRecord, Record: fields}
}

// Field creates a "Key: Value" attribute.
func Field(key string, v Value) Attr {
	return Attr{Key: key, Value: v}
}

// Literal creates an "@Key = Value" attribute.
func Literal(key string, v Value) Attr {
	return Attr{Key: key, Value: v, Literal: true}
}

// Field returns the record field named key.
func (v Value) Field(key string) (Value, bool) {
	if v.Kind != ValueRecord {
		return Value{}, false
	}

	for _, f := range v.Record {
		if f.Key == key {
			return f.Value, true
		}
	}

	return Value{}, false
}

// Equal reports whether v and w are the same kind with the same payload.
func (v Value) Equal(w Value) bool {
	if v.Kind != w.Kind {
		return false
	}

	switch v.Kind {
	case ValueString, ValueIdent:
		return v.Text == w.Text

	case ValueColor:
		return strings.EqualFold(v.Text, w.Text)

	case ValueNumber:
		return v.Number == w.Number

	case ValueBool:
		return v.Bool == w.Bool

	case ValueRecord:
		if len(v.Record) != len(w.Record) {
			return false
		}

		for i := range v.Record {
			if v.Record[i].Key != w.Record[i].Key ||
				v.Record[i].Literal != w.Record[i].Literal ||
				!v.Record[i].Value.Equal(w.Record[i].Value) {
				return false
			}
		}

		return true

	default:
		return true
	}
}

// ToNative converts a Value to its native Go type.
// Records become ordered lists of single-key maps.
func (v Value) ToNative() any {
	switch v.Kind {
	case ValueString, ValueIdent:
		return v.Text

	case ValueColor:
		return "#" + v.Text

	case ValueNumber:
		if v.Number == float64(int64(v.Number)) {
			return int64(v.Number)
		}

		return v.Number

	case ValueBool:
		return v.Bool

	case ValueRecord:
		return attrsToNative(v.Record)

	default:
		return nil
	}
}

// formatNumber renders n as the shortest decimal that parses back to n.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// isHexColor reports whether s is a 3, 4, 6, or 8 digit hex string.
func isHexColor(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}

	for _, r := range s {
		if !isHexDigit(r) {
			return false
		}
	}

	return true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'f') ||
		(r >= 'A' && r <= 'F')
}

// isIdentifier reports whether s is a valid bare identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 && !isIdentifierStart(r) {
			return false
		}

		if i > 0 && !isIdentifierContinue(r) {
			return false
		}
	}

	return true
}

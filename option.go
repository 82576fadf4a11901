package frostql

import (
	"strconv"
	"strings"
)

// optionKind discriminates the value variants an option can carry.
type optionKind int

const (
	optionKindString optionKind = iota
	optionKindBool
	optionKindInt
)

// OptionValue is a discriminated reader-option value. Callers build one
// with Bool, Int, or String, which removes any ambiguity between an actual
// boolean and a string that merely spells a boolean literal.
type OptionValue struct {
	kind optionKind
	b    bool
	i    int64
	s    string
}

// Bool creates a boolean option value, serialized as the lower-case
// literal true or false.
func Bool(v bool) OptionValue {
	return OptionValue{kind: optionKindBool, b: v}
}

// Int creates an integer option value, serialized as a plain decimal.
func Int(v int64) OptionValue {
	return OptionValue{kind: optionKindInt, i: v}
}

// String creates a string option value. A value that case-insensitively
// equals "true" or "false" passes through with the caller's casing
// preserved; any other string is single-quoted for safe SQL embedding.
func String(v string) OptionValue {
	return OptionValue{kind: optionKindString, s: v}
}

// sqlValue serializes the option value for direct embedding in generated
// SQL.
func (v OptionValue) sqlValue() string {
	switch v.kind {
	case optionKindBool:
		return strconv.FormatBool(v.b)
	case optionKindInt:
		return strconv.FormatInt(v.i, 10)
	default:
		lowered := strings.ToLower(v.s)
		if lowered == "true" || lowered == "false" {
			return v.s
		}
		return QuoteLiteral(v.s)
	}
}

// OptionPair is a single key/value entry for Reader.Options. A slice of
// pairs keeps the caller-supplied application order, which a Go map would
// not.
type OptionPair struct {
	// Key is the option name, matched case-insensitively
	Key string
	// Value is the discriminated option value
	Value OptionValue
}

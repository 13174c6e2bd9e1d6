// Package models defines the raw cell value, the in-memory tabular source and
// the snapshot structures used for JSON output.
package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind identifies which variant of Value is populated.
type Kind uint8

const (
	// KindEmpty is an absent cell value.
	KindEmpty Kind = iota
	// KindText is a string value.
	KindText
	// KindNumber is a numeric value stored as float64.
	KindNumber
	// KindBool is a boolean value.
	KindBool
	// KindTime is a date/time value.
	KindTime
	// KindOther is any other source-native scalar.
	KindOther
)

var kindNames = [...]string{
	KindEmpty:  "empty",
	KindText:   "text",
	KindNumber: "number",
	KindBool:   "bool",
	KindTime:   "time",
	KindOther:  "other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is the untyped scalar stored at a grid position. The zero Value is
// empty.
type Value struct {
	kind Kind
	s    string
	n    float64
	b    bool
	t    time.Time
	o    any
}

// Empty returns the absent value.
func Empty() Value { return Value{} }

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Number returns a numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Time returns a date/time value.
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// Other wraps a source-native scalar that fits none of the other kinds.
func Other(v any) Value {
	if v == nil {
		return Value{}
	}
	return Value{kind: KindOther, o: v}
}

// Of maps a native Go scalar onto a Value. Integers and floats of every width
// become numbers; nil becomes empty; unknown types become KindOther.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Empty()
	case Value:
		return x
	case string:
		return Text(x)
	case bool:
		return Bool(x)
	case time.Time:
		return Time(x)
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return Number(float64(x))
	case int8:
		return Number(float64(x))
	case int16:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint:
		return Number(float64(x))
	case uint8:
		return Number(float64(x))
	case uint16:
		return Number(float64(x))
	case uint32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	}
	return Other(v)
}

// Kind returns the populated variant.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether the value is absent.
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// Str returns the text variant.
func (v Value) Str() (string, bool) { return v.s, v.kind == KindText }

// Num returns the number variant.
func (v Value) Num() (float64, bool) { return v.n, v.kind == KindNumber }

// Boolean returns the bool variant.
func (v Value) Boolean() (bool, bool) { return v.b, v.kind == KindBool }

// Timestamp returns the time variant.
func (v Value) Timestamp() (time.Time, bool) { return v.t, v.kind == KindTime }

// Interface returns the value as a plain Go value: nil, string, float64, bool,
// time.Time or the wrapped scalar.
func (v Value) Interface() any {
	switch v.kind {
	case KindText:
		return v.s
	case KindNumber:
		return v.n
	case KindBool:
		return v.b
	case KindTime:
		return v.t
	case KindOther:
		return v.o
	}
	return nil
}

// String renders the value as text. Empty values render as "".
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.s
	case KindNumber:
		return FormatNumber(v.n)
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	case KindTime:
		return v.t.Format(time.RFC3339)
	case KindOther:
		return fmt.Sprint(v.o)
	}
	return ""
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.s == o.s
	case KindNumber:
		return v.n == o.n || (math.IsNaN(v.n) && math.IsNaN(o.n))
	case KindBool:
		return v.b == o.b
	case KindTime:
		return v.t.Equal(o.t)
	case KindOther:
		return fmt.Sprint(v.o) == fmt.Sprint(o.o)
	}
	return true
}

// MarshalJSON encodes the value as its plain JSON counterpart.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.n) || math.IsInf(v.n, 0) {
			return json.Marshal(v.String())
		}
	case KindOther:
		return json.Marshal(v.String())
	}
	return json.Marshal(v.Interface())
}

// FormatNumber renders a float in its shortest plain decimal form.
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

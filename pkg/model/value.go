package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the primitive stored in a Value or AttrValue.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "null"
	}
}

// Value is the model bound to a FormGroup control.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

// String builds a string model.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number builds a numeric model.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Bool builds a boolean model.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Null is the empty model.
func Null() Value { return Value{} }

// ValueOf converts a Go primitive into a Value. Unsupported types fall back to
// their fmt representation.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case string:
		return String(x)
	case bool:
		return Bool(x)
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
	case json.Number:
		if n, err := x.Float64(); err == nil {
			return Number(n)
		}
		return String(x.String())
	default:
		return String(fmt.Sprint(v))
	}
}

// Kind returns the stored primitive kind.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether no model is set.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsEmpty reports whether the model counts as missing for required checks.
// Only null and the empty string are empty; false and 0 are values.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == ""
	default:
		return false
	}
}

// Truthy reports whether a checkable control should render as checked.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num != 0
	case KindString:
		switch strings.ToLower(strings.TrimSpace(v.str)) {
		case "true", "on", "1", "yes", "checked":
			return true
		}
	}
	return false
}

// String renders the model as attribute text.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Interface returns the underlying Go value.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// Equal compares kind and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	default:
		return true
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = Null()
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("model: decode value: %w", err)
	}
	switch raw.(type) {
	case string, bool, json.Number:
		*v = ValueOf(raw)
		return nil
	default:
		return fmt.Errorf("model: value must be a string, number or boolean, got %s", string(data))
	}
}

func formatNumber(n float64) string {
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return ""
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

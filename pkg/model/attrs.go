package model

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// AttrValue is a passthrough attribute value of kind string, bool or number.
type AttrValue struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

func AttrString(s string) AttrValue  { return AttrValue{kind: KindString, str: s} }
func AttrBool(b bool) AttrValue      { return AttrValue{kind: KindBool, b: b} }
func AttrNumber(n float64) AttrValue { return AttrValue{kind: KindNumber, num: n} }

// AttrOf converts a decoded value (JSON/YAML) into an AttrValue.
func AttrOf(v any) AttrValue {
	switch x := v.(type) {
	case AttrValue:
		return x
	case bool:
		return AttrBool(x)
	case string:
		return AttrString(x)
	case nil:
		return AttrValue{}
	}
	switch value := ValueOf(v); value.Kind() {
	case KindNumber:
		return AttrNumber(value.num)
	default:
		return AttrString(value.String())
	}
}

// Kind returns the stored primitive kind.
func (a AttrValue) Kind() Kind { return a.kind }

// Bare reports whether the attribute renders without a value (`required`).
func (a AttrValue) Bare() bool { return a.kind == KindBool }

// Omitted reports whether the attribute must not be rendered at all.
func (a AttrValue) Omitted() bool {
	return a.kind == KindNull || (a.kind == KindBool && !a.b)
}

// Truthy reports whether the attribute enables its behaviour.
func (a AttrValue) Truthy() bool {
	switch a.kind {
	case KindBool:
		return a.b
	case KindNumber:
		return a.num != 0
	case KindString:
		return !strings.EqualFold(strings.TrimSpace(a.str), "false")
	default:
		return false
	}
}

// Text renders the attribute value.
func (a AttrValue) Text() string {
	switch a.kind {
	case KindString:
		return a.str
	case KindNumber:
		return formatNumber(a.num)
	case KindBool:
		return strconv.FormatBool(a.b)
	default:
		return ""
	}
}

func (a AttrValue) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case KindString:
		return json.Marshal(a.str)
	case KindNumber:
		return json.Marshal(a.num)
	case KindBool:
		return json.Marshal(a.b)
	default:
		return []byte("null"), nil
	}
}

// Attrs maps native attribute names to values.
type Attrs map[string]AttrValue

// Truthy reports whether name is present and enabled.
func (a Attrs) Truthy(name string) bool {
	value, ok := a.lookup(name)
	return ok && value.Truthy()
}

// Get fetches an attribute case-insensitively.
func (a Attrs) Get(name string) (AttrValue, bool) {
	return a.lookup(name)
}

// Names returns the attribute names sorted.
func (a Attrs) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (a Attrs) lookup(name string) (AttrValue, bool) {
	if len(a) == 0 {
		return AttrValue{}, false
	}
	if value, ok := a[name]; ok {
		return value, true
	}
	for key, value := range a {
		if strings.EqualFold(strings.TrimSpace(key), name) {
			return value, true
		}
	}
	return AttrValue{}, false
}

// Dataset maps dataset keys onto values rendered as data-* attributes.
type Dataset map[string]any

// DatasetEntry is one rendered data-* attribute.
type DatasetEntry struct {
	Name  string
	Value string
}

// Entries returns data-* attributes sorted by name. Strings render verbatim;
// other values are serialised as JSON, falling back to fmt when marshalling
// fails.
func (d Dataset) Entries() []DatasetEntry {
	if len(d) == 0 {
		return nil
	}
	out := make([]DatasetEntry, 0, len(d))
	for key, raw := range d {
		name := DatasetAttrName(key)
		if name == "" {
			continue
		}
		out = append(out, DatasetEntry{Name: name, Value: datasetText(raw)})
	}
	slices.SortFunc(out, func(a, b DatasetEntry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// DatasetAttrName maps a dataset key to its attribute name the way the DOM
// dataset API does: camelCase becomes kebab-case under the data- prefix.
func DatasetAttrName(key string) string {
	key = strings.TrimSpace(key)
	key = strings.TrimPrefix(key, "data-")
	if key == "" {
		return ""
	}
	var builder strings.Builder
	builder.Grow(len(key) + 8)
	builder.WriteString("data-")
	for _, r := range key {
		if unicode.IsUpper(r) {
			builder.WriteByte('-')
			builder.WriteRune(unicode.ToLower(r))
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}

func datasetText(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	payload, err := json.Marshal(raw)
	if err != nil {
		return fmt.Sprint(raw)
	}
	return string(payload)
}

// Styles maps CSS properties onto values merged into the inline style.
type Styles map[string]string

// Inline renders the styles as a style attribute value with sorted
// properties.
func (s Styles) Inline() string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for key := range s {
		if strings.TrimSpace(key) == "" {
			continue
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s[key]), ";"))
		if value == "" {
			continue
		}
		parts = append(parts, strings.TrimSpace(key)+": "+value+";")
	}
	return strings.Join(parts, " ")
}

// MergeStyle appends extra declarations to an existing style attribute value.
func MergeStyle(base, extra string) string {
	base = strings.TrimSpace(base)
	extra = strings.TrimSpace(extra)
	switch {
	case base == "":
		return extra
	case extra == "":
		return base
	}
	if !strings.HasSuffix(base, ";") {
		base += ";"
	}
	return base + " " + extra
}

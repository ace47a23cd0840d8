package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseInputType(t *testing.T) {
	got, err := ParseInputType("")
	if err != nil || got != TypeText {
		t.Fatalf("empty type: want text, got %q (%v)", got, err)
	}
	got, err = ParseInputType(" TextArea ")
	if err != nil || got != TypeTextarea {
		t.Fatalf("textarea: want textarea, got %q (%v)", got, err)
	}
	if _, err := ParseInputType("color"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestValueOfKinds(t *testing.T) {
	cases := []struct {
		in   any
		kind Kind
		text string
	}{
		{"hello world", KindString, "hello world"},
		{100, KindNumber, "100"},
		{12.5, KindNumber, "12.5"},
		{false, KindBool, "false"},
		{nil, KindNull, ""},
	}
	for _, tc := range cases {
		v := ValueOf(tc.in)
		if v.Kind() != tc.kind {
			t.Fatalf("ValueOf(%v): want kind %s, got %s", tc.in, tc.kind, v.Kind())
		}
		if v.String() != tc.text {
			t.Fatalf("ValueOf(%v): want text %q, got %q", tc.in, tc.text, v.String())
		}
	}
}

func TestValueEmptyAndTruthy(t *testing.T) {
	if !String("").IsEmpty() || !Null().IsEmpty() {
		t.Fatalf("empty string and null must be empty")
	}
	if Bool(false).IsEmpty() || Number(0).IsEmpty() {
		t.Fatalf("false and 0 are values, not empty")
	}
	if !String("true").Truthy() || !Bool(true).Truthy() || !Number(1).Truthy() {
		t.Fatalf("expected truthy values")
	}
	if String("hello").Truthy() || Bool(false).Truthy() {
		t.Fatalf("expected falsy values")
	}
}

func TestValueJSONKeepsKind(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`12345`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.Kind() != KindNumber || v.String() != "12345" {
		t.Fatalf("unexpected number value: %s %q", v.Kind(), v.String())
	}
	if err := json.Unmarshal([]byte(`{"a":1}`), &v); err == nil {
		t.Fatalf("expected object model to be rejected")
	}
	payload, err := json.Marshal(Bool(true))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(payload) != "true" {
		t.Fatalf("unexpected payload %s", payload)
	}
}

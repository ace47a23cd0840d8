package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned when an input type is not part of the InputType
// enum.
var ErrUnknownType = errors.New("model: unknown input type")

// InputType selects the control a FormGroup renders.
type InputType string

const (
	TypeText     InputType = "text"
	TypeCheckbox InputType = "checkbox"
	TypeDate     InputType = "date"
	TypeNumber   InputType = "number"
	TypeTextarea InputType = "textarea"
	TypeSelect   InputType = "select"
	TypeRadio    InputType = "radio"
)

// InputTypes lists every supported type in declaration order.
func InputTypes() []InputType {
	return []InputType{
		TypeText,
		TypeCheckbox,
		TypeDate,
		TypeNumber,
		TypeTextarea,
		TypeSelect,
		TypeRadio,
	}
}

// ParseInputType resolves a raw type name. The empty string maps to TypeText.
func ParseInputType(raw string) (InputType, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return TypeText, nil
	}
	for _, candidate := range InputTypes() {
		if string(candidate) == name {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownType, raw)
}

// Valid reports whether t is a member of the enum. The zero value is valid and
// renders as TypeText.
func (t InputType) Valid() bool {
	if t == "" {
		return true
	}
	_, err := ParseInputType(string(t))
	return err == nil
}

// OrDefault returns TypeText for the zero value.
func (t InputType) OrDefault() InputType {
	if t == "" {
		return TypeText
	}
	return t
}

// IsInput reports whether the type renders as an <input> element.
func (t InputType) IsInput() bool {
	switch t.OrDefault() {
	case TypeTextarea, TypeSelect:
		return false
	default:
		return true
	}
}

// IsCheckable reports whether the control toggles a checked state instead of
// carrying free text.
func (t InputType) IsCheckable() bool {
	switch t {
	case TypeCheckbox, TypeRadio:
		return true
	default:
		return false
	}
}

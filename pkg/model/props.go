package model

import (
	"maps"
	"slices"
)

// SelectOption is a structured option for select and radio controls.
type SelectOption struct {
	Value    string `json:"value" yaml:"value"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Text returns the visible option label.
func (o SelectOption) Text() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}

// Props is everything a parent passes to a FormGroup on each render.
type Props struct {
	// Name is the form field name, also used as the name attribute when Attrs
	// does not provide one.
	Name  string
	Model Value
	Type  InputType
	Label string

	// Invalid overrides the inferred validation state when non-nil.
	Invalid         *bool
	InvalidFeedback string
	ValidFeedback   string

	Classes string
	Attrs   Attrs
	Data    Dataset
	CSS     Styles
	Events  Events

	// Options populate select controls. Content is raw child markup (option
	// elements) used when Options is empty.
	Options []SelectOption
	Content string
}

// Flag returns a pointer to b for the Invalid override.
func Flag(b bool) *bool {
	return &b
}

// Clone copies the props so the caller may mutate maps without affecting a
// mounted component.
func (p Props) Clone() Props {
	out := p
	if p.Invalid != nil {
		out.Invalid = Flag(*p.Invalid)
	}
	out.Attrs = maps.Clone(p.Attrs)
	out.Data = maps.Clone(p.Data)
	out.CSS = maps.Clone(p.CSS)
	out.Events = maps.Clone(p.Events)
	out.Options = slices.Clone(p.Options)
	return out
}

// Validate checks the props for values the renderer cannot represent.
func (p Props) Validate() error {
	if !p.Type.Valid() {
		_, err := ParseInputType(string(p.Type))
		return err
	}
	return nil
}

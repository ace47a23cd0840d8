package loader

import (
	"fmt"
	"maps"

	"github.com/goliatone/go-formgroup/pkg/model"
)

// Definition is the serialisable form of model.Props. Legacy aliases
// (error, errorMessage, successMessage, props) are accepted alongside the
// canonical keys.
type Definition struct {
	Name            string               `json:"name,omitempty" yaml:"name,omitempty"`
	Type            string               `json:"type,omitempty" yaml:"type,omitempty"`
	Label           string               `json:"label,omitempty" yaml:"label,omitempty"`
	Model           any                  `json:"model,omitempty" yaml:"model,omitempty"`
	Invalid         *bool                `json:"invalid,omitempty" yaml:"invalid,omitempty"`
	Error           *bool                `json:"error,omitempty" yaml:"error,omitempty"`
	InvalidFeedback string               `json:"invalidFeedback,omitempty" yaml:"invalidFeedback,omitempty"`
	ErrorMessage    string               `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
	ValidFeedback   string               `json:"validFeedback,omitempty" yaml:"validFeedback,omitempty"`
	SuccessMessage  string               `json:"successMessage,omitempty" yaml:"successMessage,omitempty"`
	Classes         string               `json:"classes,omitempty" yaml:"classes,omitempty"`
	Attrs           map[string]any       `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Props           map[string]any       `json:"props,omitempty" yaml:"props,omitempty"`
	Data            map[string]any       `json:"data,omitempty" yaml:"data,omitempty"`
	CSS             map[string]string    `json:"css,omitempty" yaml:"css,omitempty"`
	Options         []model.SelectOption `json:"options,omitempty" yaml:"options,omitempty"`
	Content         string               `json:"content,omitempty" yaml:"content,omitempty"`
}

// Props converts the definition into component props. Canonical keys win
// over their legacy aliases.
func (d Definition) Props() (model.Props, error) {
	inputType, err := model.ParseInputType(d.Type)
	if err != nil {
		return model.Props{}, fmt.Errorf("loader: group %q: %w", d.Name, err)
	}

	props := model.Props{
		Name:            d.Name,
		Type:            inputType,
		Label:           d.Label,
		Model:           model.ValueOf(d.Model),
		Invalid:         d.Invalid,
		InvalidFeedback: firstNonEmpty(d.InvalidFeedback, d.ErrorMessage),
		ValidFeedback:   firstNonEmpty(d.ValidFeedback, d.SuccessMessage),
		Classes:         d.Classes,
		Options:         d.Options,
		Content:         d.Content,
	}
	if props.Invalid == nil {
		props.Invalid = d.Error
	}

	if len(d.Attrs)+len(d.Props) > 0 {
		props.Attrs = make(model.Attrs, len(d.Attrs)+len(d.Props))
		for name, value := range d.Props {
			props.Attrs[name] = model.AttrOf(value)
		}
		for name, value := range d.Attrs {
			props.Attrs[name] = model.AttrOf(value)
		}
	}
	if len(d.Data) > 0 {
		props.Data = model.Dataset(maps.Clone(d.Data))
	}
	if len(d.CSS) > 0 {
		props.CSS = model.Styles(maps.Clone(d.CSS))
	}
	return props.Clone(), nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

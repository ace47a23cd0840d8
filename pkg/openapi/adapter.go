package openapi

import (
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formgroup/pkg/model"
)

const (
	contentTypeJSON = "application/json"

	// Strings longer than this render as a textarea.
	textareaThreshold = 255
)

// Operations lists the operation ids in the document, sorted.
func (d Document) Operations() []string {
	if d.spec == nil || d.spec.Paths == nil {
		return nil
	}
	var ids []string
	for _, item := range d.spec.Paths.Map() {
		for _, op := range item.Operations() {
			if op != nil && op.OperationID != "" {
				ids = append(ids, op.OperationID)
			}
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

// Props maps each property of the operation's JSON request body to FormGroup
// props, sorted by property name.
func (d Document) Props(operationID string) ([]model.Props, error) {
	op := d.operation(operationID)
	if op == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, operationID)
	}
	schema := requestSchema(op)
	if schema == nil {
		return nil, fmt.Errorf("%w: %q has no JSON request body", ErrNotFound, operationID)
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]model.Props, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		out = append(out, PropsFromSchema(name, ref.Value, slices.Contains(schema.Required, name)))
	}
	return out, nil
}

// PropsFromSchema maps a single property schema to FormGroup props.
func PropsFromSchema(name string, schema *openapi3.Schema, required bool) model.Props {
	props := model.Props{
		Name:  name,
		Type:  InputTypeFor(schema),
		Label: name,
		Model: model.ValueOf(schema.Default),
	}
	if title := strings.TrimSpace(schema.Title); title != "" {
		props.Label = title
	}

	attrs := model.Attrs{}
	if required {
		attrs["required"] = model.AttrBool(true)
	}
	if desc := strings.TrimSpace(schema.Description); desc != "" && props.Type != model.TypeSelect {
		attrs["placeholder"] = model.AttrString(desc)
	}
	if schema.MaxLength != nil && props.Type != model.TypeSelect {
		attrs["maxlength"] = model.AttrNumber(float64(*schema.MaxLength))
	}
	if schema.MinLength > 0 && props.Type != model.TypeSelect {
		attrs["minlength"] = model.AttrNumber(float64(schema.MinLength))
	}
	if props.Type == model.TypeNumber {
		if schema.Min != nil {
			attrs["min"] = model.AttrNumber(*schema.Min)
		}
		if schema.Max != nil {
			attrs["max"] = model.AttrNumber(*schema.Max)
		}
		if schema.Type.Is(openapi3.TypeInteger) {
			attrs["step"] = model.AttrNumber(1)
		}
	}
	if len(attrs) > 0 {
		props.Attrs = attrs
	}

	if props.Type == model.TypeSelect {
		props.Options = make([]model.SelectOption, 0, len(schema.Enum))
		for _, entry := range schema.Enum {
			props.Options = append(props.Options, model.SelectOption{
				Value: model.ValueOf(entry).String(),
			})
		}
	}
	return props
}

// InputTypeFor picks the control type for a property schema.
func InputTypeFor(schema *openapi3.Schema) model.InputType {
	if schema == nil {
		return model.TypeText
	}
	switch firstType(schema.Type) {
	case openapi3.TypeBoolean:
		return model.TypeCheckbox
	case openapi3.TypeInteger, openapi3.TypeNumber:
		return model.TypeNumber
	}

	switch {
	case len(schema.Enum) > 0:
		return model.TypeSelect
	case schema.Format == "date" || schema.Format == "date-time":
		return model.TypeDate
	case schema.Format == "textarea":
		return model.TypeTextarea
	case schema.MaxLength != nil && *schema.MaxLength > textareaThreshold:
		return model.TypeTextarea
	default:
		return model.TypeText
	}
}

func (d Document) operation(id string) *openapi3.Operation {
	id = strings.TrimSpace(id)
	if d.spec == nil || d.spec.Paths == nil || id == "" {
		return nil
	}
	for _, item := range d.spec.Paths.Map() {
		for _, op := range item.Operations() {
			if op != nil && op.OperationID == id {
				return op
			}
		}
	}
	return nil
}

func requestSchema(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	content := op.RequestBody.Value.Content
	if mt := content.Get(contentTypeJSON); mt != nil && mt.Schema != nil {
		return mt.Schema.Value
	}
	return nil
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	for _, t := range types.Slice() {
		if t != "" && t != "null" {
			return t
		}
	}
	return ""
}

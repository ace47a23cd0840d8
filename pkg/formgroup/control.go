package formgroup

import (
	"regexp"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formgroup/pkg/components"
	"github.com/goliatone/go-formgroup/pkg/model"
)

const (
	ClassControl      = "form-control"
	ClassCheckControl = "form-check-input"
	ClassGroup        = "form-group"
	ClassCheckGroup   = "form-check"

	// AttrEvents lists the events a client runtime should forward to the
	// server-side component.
	AttrEvents = "data-formgroup-on"
)

// Attributes the control computes itself; passthrough values for them are
// merged instead of copied.
var reservedAttrs = map[string]struct{}{
	"type":  {},
	"id":    {},
	"name":  {},
	"class": {},
	"style": {},
	"model": {},
	"value": {},

	"aria-invalid": {},
}

// attrNamePattern accepts the attribute names passthrough props may emit.
var attrNamePattern = regexp.MustCompile(`^[a-zA-Z_:][-a-zA-Z0-9_:.]*$`)

// buildControl computes the control attributes. Every name is emitted once:
// computed attributes come first, then passthrough Attrs in sorted name order,
// then the dataset. Later duplicates are dropped.
func buildControl(props model.Props, id string, validation model.Validation, logger *zap.Logger) components.Control {
	inputType := props.Type.OrDefault()
	attrs := make([]components.Attribute, 0, 8+len(props.Attrs)+len(props.Data))
	seen := make(map[string]struct{}, cap(attrs))
	emit := func(attr components.Attribute) {
		if _, dup := seen[attr.Name]; dup {
			logger.Debug("formgroup: duplicate attribute dropped", zap.String("attr", attr.Name))
			return
		}
		seen[attr.Name] = struct{}{}
		attrs = append(attrs, attr)
	}
	add := func(name, value string) {
		emit(components.Attribute{Name: name, Value: value})
	}
	passthrough := func(name string) bool {
		if !attrNamePattern.MatchString(name) {
			logger.Debug("formgroup: invalid attribute name skipped", zap.String("attr", name))
			return false
		}
		return true
	}

	if inputType.IsInput() {
		add("type", string(inputType))
	}
	add("id", id)

	name := props.Name
	if value, ok := props.Attrs.Get("name"); ok && !value.Omitted() {
		name = value.Text()
	}
	if name != "" {
		add("name", name)
	}

	add("class", controlClasses(props, validation))
	add("model", props.Model.String())

	explicitValue, hasValue := props.Attrs.Get("value")
	switch {
	case inputType.IsCheckable():
		if hasValue && !explicitValue.Omitted() {
			add("value", explicitValue.Text())
		}
		if checked(props, explicitValue, hasValue) {
			emit(components.Attribute{Name: "checked", Bare: true})
		}
	case inputType.IsInput():
		if hasValue && !explicitValue.Omitted() {
			add("value", explicitValue.Text())
		} else {
			add("value", props.Model.String())
		}
	}

	if value, ok := props.Attrs.Get("aria-invalid"); ok && !value.Omitted() {
		emit(components.Attribute{Name: "aria-invalid", Value: value.Text(), Bare: value.Bare()})
	} else if validation == model.Invalid {
		add("aria-invalid", "true")
	}

	for _, attrName := range props.Attrs.Names() {
		key := strings.ToLower(strings.TrimSpace(attrName))
		if key == "" {
			continue
		}
		if _, reserved := reservedAttrs[key]; reserved {
			continue
		}
		value := props.Attrs[attrName]
		if value.Omitted() || !passthrough(key) {
			continue
		}
		if value.Bare() {
			emit(components.Attribute{Name: key, Bare: true})
			continue
		}
		add(key, value.Text())
	}

	for _, entry := range props.Data.Entries() {
		if passthrough(entry.Name) {
			add(entry.Name, entry.Value)
		}
	}

	style := ""
	if value, ok := props.Attrs.Get("style"); ok && !value.Bare() {
		style = value.Text()
	}
	if style = model.MergeStyle(style, props.CSS.Inline()); style != "" {
		add("style", style)
	}

	if events := listenedEvents(props.Events); len(events) > 0 {
		add(AttrEvents, strings.Join(events, " "))
	}

	control := components.Control{
		Type:       inputType,
		Attributes: attrs,
	}
	switch inputType {
	case model.TypeTextarea:
		control.Text = props.Model.String()
	case model.TypeSelect:
		control.Options = selectOptions(props.Options, props.Model)
		control.Content = components.SanitizeOptions(props.Content)
	}
	return control
}

func controlClasses(props model.Props, validation model.Validation) string {
	base := ClassControl
	if props.Type.IsCheckable() {
		base = ClassCheckControl
	}
	var extra []string
	if value, ok := props.Attrs.Get("class"); ok && !value.Bare() {
		extra = model.ParseClassList(value.Text())
	}
	return model.MergeClasses(
		[]string{base},
		model.ParseClassList(props.Classes),
		extra,
		[]string{validation.Class()},
	)
}

func checked(props model.Props, explicitValue model.AttrValue, hasValue bool) bool {
	if props.Type == model.TypeRadio && hasValue && !explicitValue.Omitted() {
		return props.Model.String() == explicitValue.Text()
	}
	return props.Model.Truthy()
}

func selectOptions(options []model.SelectOption, current model.Value) []components.Option {
	if len(options) == 0 {
		return nil
	}
	selected := current.String()
	out := make([]components.Option, 0, len(options))
	for _, option := range options {
		out = append(out, components.Option{
			Value:    option.Value,
			Label:    option.Text(),
			Selected: !current.IsNull() && option.Value == selected,
			Disabled: option.Disabled,
		})
	}
	return out
}

// listenedEvents is the sorted union of the handler names and the binding
// events that drive update emission.
func listenedEvents(events model.Events) []string {
	names := append(events.Names(), model.BindingEvents()...)
	slices.Sort(names)
	return slices.Compact(names)
}

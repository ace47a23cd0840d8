package components

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-formgroup/pkg/model"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in control templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// NewDefaultRegistry returns a registry with a descriptor for every input
// type.
func NewDefaultRegistry() *Registry {
	registry := New()

	input := TemplateRenderer(PartialInput, TemplateInput)
	for _, inputType := range []model.InputType{
		model.TypeText,
		model.TypeCheckbox,
		model.TypeDate,
		model.TypeNumber,
		model.TypeRadio,
	} {
		registry.MustRegister(inputType, Descriptor{Renderer: input})
	}
	registry.MustRegister(model.TypeTextarea, Descriptor{
		Renderer: TemplateRenderer(PartialTextarea, TemplateTextarea),
	})
	registry.MustRegister(model.TypeSelect, Descriptor{
		Renderer: TemplateRenderer(PartialSelect, TemplateSelect),
	})

	return registry
}

// TemplateRenderer renders a control through templateName, or through the
// theme partial registered under partialKey when one is set.
func TemplateRenderer(partialKey, templateName string) Renderer {
	return func(buf *bytes.Buffer, control Control, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}

		resolved := templateName
		if candidate := strings.TrimSpace(data.Partials[partialKey]); candidate != "" {
			resolved = candidate
		}

		rendered, err := data.Template.RenderTemplate(resolved, map[string]any{
			"control": control,
		})
		if err != nil {
			return fmt.Errorf("components: render template %q: %w", resolved, err)
		}
		buf.WriteString(strings.TrimSpace(rendered))
		return nil
	}
}

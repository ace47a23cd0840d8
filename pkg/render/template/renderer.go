package template

import (
	"io"
)

// TemplateRenderer is the contract component renderers rely on. Names are
// resolved against the engine's loaders; RenderString parses inline template
// content.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

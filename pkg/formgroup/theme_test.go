package formgroup_test

import (
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formgroup/pkg/components"
	"github.com/goliatone/go-formgroup/pkg/formgroup"
	"github.com/goliatone/go-formgroup/pkg/model"
	"github.com/goliatone/go-formgroup/pkg/render/template/gotemplate"
)

func TestThemeMarkersAndCSSVars(t *testing.T) {
	fg := mount(t, model.Props{Model: model.String("x")}, formgroup.WithTheme(&theme.RendererConfig{
		Theme:   "acme",
		Variant: "dark",
		Tokens:  map[string]string{"brand": "#123456"},
	}))

	group := render(t, fg).MustFind(t, "div.form-group")
	if v, _ := group.Attr("data-theme"); v != "acme" {
		t.Fatalf("unexpected data-theme %q", v)
	}
	if v, _ := group.Attr("data-theme-variant"); v != "dark" {
		t.Fatalf("unexpected data-theme-variant %q", v)
	}
	if style, _ := group.Attr("style"); style != "--brand: #123456;" {
		t.Fatalf("unexpected css vars %q", style)
	}
}

func TestThemePartialOverridesControlTemplate(t *testing.T) {
	overrides := fstest.MapFS{
		"themes/acme/input.tmpl": {Data: []byte(`<input data-themed="acme"{% for attr in control.attributes %} {{ attr.name }}{% if not attr.bare %}="{{ attr.value }}"{% endif %}{% endfor %}>`)},
	}
	engine, err := gotemplate.New(
		gotemplate.WithFS(components.TemplatesFS()),
		gotemplate.WithFS(overrides),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	fg := mount(t, model.Props{Model: model.String("x")},
		formgroup.WithTemplateRenderer(engine),
		formgroup.WithTheme(&theme.RendererConfig{
			Partials: map[string]string{components.PartialInput: "themes/acme/input.tmpl"},
		}),
	)

	input := render(t, fg).MustFind(t, "input")
	if v, _ := input.Attr("data-themed"); v != "acme" {
		t.Fatalf("expected themed partial, got attrs %v", input.Attrs())
	}
	if !input.HasClass("form-control") {
		t.Fatalf("themed partial should still receive computed attributes")
	}
}

package gotemplate_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/goliatone/go-formgroup/pkg/render/template/gotemplate"
)

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()
	options = append([]gotemplate.Option{gotemplate.WithFS(os.DirFS("testdata"))}, options...)
	engine, err := gotemplate.New(options...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplateWritesOutput(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	result, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hello Ada!" {
		t.Fatalf("unexpected result %q", result)
	}
	if buf.String() != result {
		t.Fatalf("writer mismatch: %q vs %q", buf.String(), result)
	}
}

func TestEngine_RenderTemplateFromStruct(t *testing.T) {
	engine := newEngine(t)

	payload := struct {
		Name string `json:"name"`
	}{Name: "Grace"}
	result, err := engine.RenderTemplate("hello.tmpl", payload)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hello Grace!" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "staging" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_AutoescapesUnlessSafe(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("escape", map[string]any{"markup": "<b>x</b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(result, "<p>&lt;b&gt;x&lt;/b&gt;</p>") {
		t.Fatalf("expected escaped markup, got %q", result)
	}
	if !strings.Contains(result, "<p><b>x</b></p>") {
		t.Fatalf("expected safe markup, got %q", result)
	}
}

func TestEngine_RenderStringAndFilters(t *testing.T) {
	engine := newEngine(t)

	err := engine.RegisterFilter("shout_test", func(input any, _ any) (any, error) {
		return strings.ToUpper(input.(string)) + "!", nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout_test", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}

	result, err := engine.RenderString(`{{ name|shout_test }} {{ name|trim }}`, map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "ADA! ada" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_RequiresLoader(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without loaders")
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

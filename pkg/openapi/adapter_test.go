package openapi

import (
	"context"
	"errors"
	"os"
	"testing"
	"testing/fstest"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgroup/pkg/model"
)

func loadAccounts(t *testing.T) Document {
	t.Helper()
	doc, err := Load(context.Background(), "testdata/accounts.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return doc
}

func TestOperationsSorted(t *testing.T) {
	doc := loadAccounts(t)
	want := []string{"createAccount", "listAccounts"}
	if diff := cmp.Diff(want, doc.Operations()); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}
}

func TestPropsMapsRequestBody(t *testing.T) {
	doc := loadAccounts(t)

	fields, err := doc.Props("createAccount")
	if err != nil {
		t.Fatalf("props: %v", err)
	}

	var names []string
	types := map[string]model.InputType{}
	byName := map[string]model.Props{}
	for _, field := range fields {
		names = append(names, field.Name)
		types[field.Name] = field.Type
		byName[field.Name] = field
	}

	wantNames := []string{"bio", "birthday", "email", "newsletter", "plan", "seats"}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	wantTypes := map[string]model.InputType{
		"bio":        model.TypeTextarea,
		"birthday":   model.TypeDate,
		"email":      model.TypeText,
		"newsletter": model.TypeCheckbox,
		"plan":       model.TypeSelect,
		"seats":      model.TypeNumber,
	}
	if diff := cmp.Diff(wantTypes, types); diff != "" {
		t.Fatalf("types mismatch (-want +got):\n%s", diff)
	}

	email := byName["email"]
	if email.Label != "Email address" {
		t.Fatalf("expected title as label, got %q", email.Label)
	}
	if !email.Attrs.Truthy("required") {
		t.Fatalf("email should be required")
	}
	if email.Attrs["placeholder"].Text() != "you@example.com" {
		t.Fatalf("description should become placeholder")
	}
	if email.Attrs["maxlength"].Text() != "120" {
		t.Fatalf("unexpected maxlength %q", email.Attrs["maxlength"].Text())
	}

	plan := byName["plan"]
	if plan.Label != "plan" || plan.Model.String() != "free" {
		t.Fatalf("unexpected plan label/model %q/%q", plan.Label, plan.Model.String())
	}
	wantOptions := []model.SelectOption{{Value: "free"}, {Value: "pro"}}
	if diff := cmp.Diff(wantOptions, plan.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	seats := byName["seats"]
	if seats.Attrs["min"].Text() != "1" || seats.Attrs["max"].Text() != "50" || seats.Attrs["step"].Text() != "1" {
		t.Fatalf("unexpected number bounds %v", seats.Attrs.Names())
	}
	if seats.Attrs.Truthy("required") {
		t.Fatalf("seats is optional")
	}

	newsletter := byName["newsletter"]
	if newsletter.Model.Kind() != model.KindBool || !newsletter.Model.Truthy() {
		t.Fatalf("expected boolean default, got %v", newsletter.Model)
	}
}

func TestPropsUnknownOperation(t *testing.T) {
	doc := loadAccounts(t)
	if _, err := doc.Props("deleteAccount"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := doc.Props("listAccounts"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for body-less operation, got %v", err)
	}
}

func TestLoadFromFileSystem(t *testing.T) {
	raw, err := os.ReadFile("testdata/accounts.yaml")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	files := fstest.MapFS{"specs/accounts.yaml": {Data: raw}}

	doc, err := Load(context.Background(), "specs/accounts.yaml", WithFileSystem(files), WithValidation())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Operations()) != 2 {
		t.Fatalf("expected two operations, got %v", doc.Operations())
	}
}

func TestLoadResolvesRelativeExternalRefs(t *testing.T) {
	assertContact := func(t *testing.T, doc Document) {
		t.Helper()
		fields, err := doc.Props("createContact")
		if err != nil {
			t.Fatalf("props: %v", err)
		}
		var got []string
		for _, field := range fields {
			got = append(got, field.Name+":"+string(field.Type.OrDefault()))
		}
		if diff := cmp.Diff([]string{"name:text", "subscribed:checkbox"}, got); diff != "" {
			t.Fatalf("fields mismatch (-want +got):\n%s", diff)
		}
	}

	t.Run("disk", func(t *testing.T) {
		doc, err := Load(context.Background(), "testdata/refs/contacts.yaml", WithExternalRefs())
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		assertContact(t, doc)
	})

	t.Run("file system", func(t *testing.T) {
		files := fstest.MapFS{}
		for _, name := range []string{"contacts.yaml", "schemas.yaml"} {
			raw, err := os.ReadFile("testdata/refs/" + name)
			if err != nil {
				t.Fatalf("read fixture: %v", err)
			}
			files["api/"+name] = &fstest.MapFile{Data: raw}
		}
		doc, err := Load(context.Background(), "api/contacts.yaml", WithFileSystem(files), WithExternalRefs())
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		assertContact(t, doc)
	})
}

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := Parse(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty document")
	}
}

func TestInputTypeFor(t *testing.T) {
	long := uint64(256)
	short := uint64(255)
	cases := []struct {
		name   string
		schema *openapi3.Schema
		want   model.InputType
	}{
		{"nil", nil, model.TypeText},
		{"boolean", &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeBoolean}}, model.TypeCheckbox},
		{"number", &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeNumber}}, model.TypeNumber},
		{"date-time", &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}, Format: "date-time"}, model.TypeDate},
		{"textarea format", &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}, Format: "textarea"}, model.TypeTextarea},
		{"long string", &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}, MaxLength: &long}, model.TypeTextarea},
		{"threshold string", &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}, MaxLength: &short}, model.TypeText},
		{"enum", &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}, Enum: []any{"a"}}, model.TypeSelect},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := InputTypeFor(tc.schema); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

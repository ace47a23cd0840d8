package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgroup/pkg/formgroup"
	"github.com/goliatone/go-formgroup/pkg/model"
)

type stubDriver struct {
	inputs    []string
	confirm   bool
	selection int
	textarea  string
	err       error

	inputCfgs   []InputConfig
	confirmCfg  ConfirmConfig
	selectCfg   SelectConfig
	textareaCfg TextAreaConfig
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputCfgs = append(s.inputCfgs, cfg)
	if s.err != nil {
		return "", s.err
	}
	if len(s.inputs) == 0 {
		return "", nil
	}
	out := s.inputs[0]
	s.inputs = s.inputs[1:]
	return out, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.confirmCfg = cfg
	return s.confirm, s.err
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectCfg = cfg
	return s.selection, s.err
}

func (s *stubDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	s.textareaCfg = cfg
	return s.textarea, s.err
}

func mount(t *testing.T, props model.Props) *formgroup.FormGroup {
	t.Helper()
	fg, err := formgroup.New(props, formgroup.WithAutoBind())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return fg
}

func TestFillTextEmitsUpdate(t *testing.T) {
	fg := mount(t, model.Props{Name: "email", Label: "Email", Model: model.String("old")})

	var received []model.Value
	fg.OnUpdate(func(v model.Value) { received = append(received, v) })

	driver := &stubDriver{inputs: []string{"new@example.com"}}
	got, err := Fill(context.Background(), fg, driver)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if got.String() != "new@example.com" {
		t.Fatalf("unexpected value %q", got.String())
	}
	if driver.inputCfgs[0].Message != "Email" || driver.inputCfgs[0].Default != "old" {
		t.Fatalf("unexpected prompt config %+v", driver.inputCfgs[0])
	}

	want := []string{model.EventChange, model.EventUpdate}
	if diff := cmp.Diff(want, fg.EmittedNames()); diff != "" {
		t.Fatalf("emitted mismatch (-want +got):\n%s", diff)
	}
	if len(received) != 1 || received[0].String() != "new@example.com" {
		t.Fatalf("listener did not receive the answer: %v", received)
	}
	if fg.Model().String() != "new@example.com" {
		t.Fatalf("auto-bind should update the model")
	}
}

func TestFillCheckbox(t *testing.T) {
	fg := mount(t, model.Props{Type: model.TypeCheckbox, Label: "Subscribe", Model: model.Bool(true)})
	driver := &stubDriver{confirm: false}

	got, err := Fill(context.Background(), fg, driver)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if !driver.confirmCfg.Default {
		t.Fatalf("default should reflect the current model")
	}
	if got.Kind() != model.KindBool || got.Truthy() {
		t.Fatalf("expected false, got %v", got)
	}
}

func TestFillRadioUsesValueAttr(t *testing.T) {
	fg := mount(t, model.Props{
		Type:  model.TypeRadio,
		Label: "Pro plan",
		Attrs: model.Attrs{"value": model.AttrString("pro")},
	})
	got, err := Fill(context.Background(), fg, &stubDriver{confirm: true})
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if got.String() != "pro" {
		t.Fatalf("expected radio value, got %q", got.String())
	}
}

func TestFillNumber(t *testing.T) {
	fg := mount(t, model.Props{Type: model.TypeNumber, Name: "age"})
	driver := &stubDriver{inputs: []string{" 42 "}}

	got, err := Fill(context.Background(), fg, driver)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if got.Kind() != model.KindNumber || got.String() != "42" {
		t.Fatalf("unexpected number %v", got)
	}
	validate := driver.inputCfgs[0].Validator
	if validate == nil || validate("abc") == nil || validate("") != nil {
		t.Fatalf("number validator misbehaves")
	}
}

func TestFillDateValidator(t *testing.T) {
	fg := mount(t, model.Props{
		Type:  model.TypeDate,
		Attrs: model.Attrs{"required": model.AttrBool(true)},
	})
	driver := &stubDriver{inputs: []string{"2024-02-29"}}
	if _, err := Fill(context.Background(), fg, driver); err != nil {
		t.Fatalf("fill: %v", err)
	}
	validate := driver.inputCfgs[0].Validator
	if validate("") == nil || validate("29/02/2024") == nil || validate("2024-02-29") != nil {
		t.Fatalf("date validator misbehaves")
	}
}

func TestFillSelect(t *testing.T) {
	fg := mount(t, model.Props{
		Type:  model.TypeSelect,
		Label: "Role",
		Model: model.String("beta"),
		Options: []model.SelectOption{
			{Value: "alpha", Label: "Alpha"},
			{Value: "beta", Label: "Beta"},
		},
	})
	driver := &stubDriver{selection: 0}

	got, err := Fill(context.Background(), fg, driver)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if diff := cmp.Diff([]string{"Alpha", "Beta"}, driver.selectCfg.Options); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if driver.selectCfg.DefaultIndex != 1 {
		t.Fatalf("default index should follow the model, got %d", driver.selectCfg.DefaultIndex)
	}
	if got.String() != "alpha" {
		t.Fatalf("expected option value, got %q", got.String())
	}
}

func TestFillTextarea(t *testing.T) {
	fg := mount(t, model.Props{Type: model.TypeTextarea, Name: "bio"})
	got, err := Fill(context.Background(), fg, &stubDriver{textarea: "line one\nline two"})
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if got.String() != "line one\nline two" {
		t.Fatalf("unexpected textarea value %q", got.String())
	}
}

func TestFillPropagatesDriverError(t *testing.T) {
	fg := mount(t, model.Props{Name: "email"})
	_, err := Fill(context.Background(), fg, &stubDriver{err: ErrAborted})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if len(fg.EmittedNames()) != 0 {
		t.Fatalf("aborted prompt must not emit")
	}
}

func TestFillRequiresDriver(t *testing.T) {
	fg := mount(t, model.Props{})
	if _, err := Fill(context.Background(), fg, nil); err == nil {
		t.Fatalf("expected error without driver")
	}
}

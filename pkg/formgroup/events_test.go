package formgroup_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgroup/pkg/formgroup"
	"github.com/goliatone/go-formgroup/pkg/model"
	"github.com/goliatone/go-formgroup/pkg/testsupport"
)

func TestKeyupEmitsUpdate(t *testing.T) {
	fg := mount(t, model.Props{Model: model.String("initial value")})

	if err := fg.Trigger(testsupport.Context(), model.Event{Name: model.EventKeyUp, Key: "a"}); err != nil {
		t.Fatalf("trigger: %v", err)
	}

	emitted := fg.Emitted()
	updates := emitted[model.EventUpdate]
	if len(updates) != 1 {
		t.Fatalf("expected one update emission, got %d", len(updates))
	}
	if got := updates[0].Value.String(); got != "initial value" {
		t.Fatalf("update should carry the current model, got %q", got)
	}
	if len(emitted[model.EventKeyUp]) != 1 {
		t.Fatalf("expected keyup recorded")
	}
}

func TestUpdateCarriesNewValueToParent(t *testing.T) {
	fg := mount(t, model.Props{Model: model.String("Ad")})

	var received []string
	unsubscribe := fg.OnUpdate(func(v model.Value) {
		received = append(received, v.String())
	})

	next := model.String("Ada")
	if err := fg.Trigger(testsupport.Context(), model.Event{Name: model.EventInput, Value: &next}); err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if diff := cmp.Diff([]string{"Ada"}, received); diff != "" {
		t.Fatalf("listener mismatch (-want +got):\n%s", diff)
	}
	if fg.Model().String() != "Ad" {
		t.Fatalf("model must stay owned by the parent without auto-binding")
	}

	unsubscribe()
	if err := fg.Trigger(testsupport.Context(), model.Event{Name: model.EventChange, Value: &next}); err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if len(received) != 1 {
		t.Fatalf("unsubscribed listener still notified: %v", received)
	}
}

func TestAutoBindAppliesUpdates(t *testing.T) {
	fg := mount(t, model.Props{Model: model.String("")}, formgroup.WithAutoBind())

	next := model.String("typed")
	if err := fg.Trigger(testsupport.Context(), model.Event{Name: model.EventKeyUp, Value: &next}); err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if fg.Model().String() != "typed" {
		t.Fatalf("expected auto-bound model, got %q", fg.Model().String())
	}

	input := render(t, fg).MustFind(t, "input")
	if v, _ := input.Attr("value"); v != "typed" {
		t.Fatalf("re-render should reflect the bound model, got %q", v)
	}
}

func TestEventsHandlersReceiveNativeEvents(t *testing.T) {
	var keys []string
	fg := mount(t, model.Props{
		Model: model.String("initialValue"),
		Events: model.Events{
			"keydown": func(e model.Event) { keys = append(keys, e.Key) },
		},
	})

	if err := fg.Trigger(testsupport.Context(), model.Event{Name: "keydown", Key: "F"}); err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if diff := cmp.Diff([]string{"F"}, keys); diff != "" {
		t.Fatalf("handler mismatch (-want +got):\n%s", diff)
	}
	if _, ok := fg.Emitted()[model.EventUpdate]; ok {
		t.Fatalf("keydown must not emit update")
	}
	if diff := cmp.Diff([]string{"keydown"}, fg.EmittedNames()); diff != "" {
		t.Fatalf("emitted names mismatch (-want +got):\n%s", diff)
	}

	input := render(t, fg).MustFind(t, "input")
	if on, _ := input.Attr(formgroup.AttrEvents); on != "change input keydown keyup" {
		t.Fatalf("unexpected listened events %q", on)
	}
}

func TestHandlersMayCallBackIntoComponent(t *testing.T) {
	var fg *formgroup.FormGroup
	fg = mount(t, model.Props{
		Model: model.String("x"),
		Events: model.Events{
			model.EventChange: func(model.Event) { fg.SetModel(model.String("from-handler")) },
		},
	})
	fg.OnUpdate(func(model.Value) { _ = fg.Props() })

	if err := fg.Trigger(testsupport.Context(), model.Event{Name: model.EventChange}); err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if fg.Model().String() != "from-handler" {
		t.Fatalf("handler update lost, got %q", fg.Model().String())
	}
}

func TestTriggerRequiresEventName(t *testing.T) {
	fg := mount(t, model.Props{})
	if err := fg.Trigger(testsupport.Context(), model.Event{}); err == nil {
		t.Fatalf("expected error for unnamed event")
	}
}

func TestEmittedLogStaysWithinLimit(t *testing.T) {
	fg := mount(t, model.Props{}, formgroup.WithEmittedLimit(3))

	for i := 0; i < 10; i++ {
		value := model.Number(float64(i))
		if err := fg.Trigger(testsupport.Context(), model.Event{Name: model.EventKeyUp, Value: &value}); err != nil {
			t.Fatalf("trigger: %v", err)
		}
	}

	emitted := fg.Emitted()
	for _, name := range []string{model.EventKeyUp, model.EventUpdate} {
		entries := emitted[name]
		if len(entries) != 3 {
			t.Fatalf("%s: expected 3 entries, got %d", name, len(entries))
		}
		var got []string
		for _, entry := range entries {
			got = append(got, entry.Value.String())
		}
		if diff := cmp.Diff([]string{"7", "8", "9"}, got); diff != "" {
			t.Fatalf("%s: expected the newest entries (-want +got):\n%s", name, diff)
		}
	}
}

func TestEmittedLogDisabled(t *testing.T) {
	fg := mount(t, model.Props{}, formgroup.WithEmittedLimit(0))

	var updates int
	fg.OnUpdate(func(model.Value) { updates++ })
	if err := fg.Trigger(testsupport.Context(), model.Event{Name: model.EventInput}); err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if updates != 1 {
		t.Fatalf("listeners must still run, got %d calls", updates)
	}
	if names := fg.EmittedNames(); len(names) != 0 {
		t.Fatalf("expected no recorded events, got %v", names)
	}
}

package formgroup

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formgroup/pkg/model"
)

// Emission is one entry in the emitted-event log.
type Emission struct {
	Event model.Event
	Value model.Value
}

// Trigger dispatches a DOM event to the control. The matching Events handler
// runs first; binding events then emit "update" with the new value and
// notify OnUpdate listeners. Handlers and listeners run without the
// component lock held, so they may call back into the component.
func (g *FormGroup) Trigger(ctx context.Context, event model.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	event.Name = strings.TrimSpace(event.Name)
	if event.Name == "" {
		return errors.New("formgroup: event name is required")
	}

	g.mu.Lock()
	handler := g.props.Events[event.Name]
	value := g.props.Model
	if event.Value != nil {
		value = *event.Value
	}
	g.record(event.Name, Emission{Event: event, Value: value})

	binding := model.IsBindingEvent(event.Name)
	var listeners []func(model.Value)
	if binding {
		g.record(model.EventUpdate, Emission{Event: event, Value: value})
		if g.cfg.autoBind {
			g.props.Model = value
		}
		listeners = slices.Clone(g.listeners)
	}
	id := g.controlID()
	g.mu.Unlock()

	if handler != nil {
		handler(event)
	}
	for _, listener := range listeners {
		if listener != nil {
			listener(value)
		}
	}

	g.cfg.logger.Debug("formgroup event",
		zap.String("id", id),
		zap.String("event", event.Name),
		zap.Bool("handled", handler != nil),
		zap.Bool("update", binding),
	)
	return nil
}

// record appends to the emitted-event log within the configured limit.
// Callers hold g.mu.
func (g *FormGroup) record(name string, entry Emission) {
	limit := g.cfg.emittedLimit
	if limit <= 0 {
		return
	}
	entries := append(g.emitted[name], entry)
	if over := len(entries) - limit; over > 0 {
		entries = slices.Delete(entries, 0, over)
	}
	g.emitted[name] = entries
}

// OnUpdate subscribes to update emissions. The returned function removes the
// subscription.
func (g *FormGroup) OnUpdate(listener func(model.Value)) func() {
	if listener == nil {
		return func() {}
	}
	g.mu.Lock()
	idx := len(g.listeners)
	g.listeners = append(g.listeners, listener)
	g.mu.Unlock()

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if idx < len(g.listeners) {
			g.listeners[idx] = nil
		}
	}
}

// Emitted returns a copy of the emitted-event log keyed by event name.
func (g *FormGroup) Emitted() map[string][]Emission {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[string][]Emission, len(g.emitted))
	for name, entries := range g.emitted {
		out[name] = slices.Clone(entries)
	}
	return out
}

// EmittedNames returns the names of every event emitted so far, sorted.
func (g *FormGroup) EmittedNames() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Sorted(maps.Keys(g.emitted))
}

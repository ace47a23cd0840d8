package model

import "slices"

const (
	// EventUpdate is emitted to the parent whenever the control changes the
	// bound model.
	EventUpdate = "update"

	EventKeyUp  = "keyup"
	EventInput  = "input"
	EventChange = "change"
)

// Event is a DOM event dispatched to the rendered control.
type Event struct {
	Name string
	Key  string
	// Value is the control's value after the event. When nil the current
	// model is used.
	Value  *Value
	Detail map[string]any
}

// Handler receives native events forwarded to the control.
type Handler func(Event)

// Events maps event names onto handlers.
type Events map[string]Handler

// Names returns the registered event names sorted.
func (e Events) Names() []string {
	names := make([]string, 0, len(e))
	for name, handler := range e {
		if name == "" || handler == nil {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// BindingEvents lists the native events that update the bound model.
func BindingEvents() []string {
	return []string{EventKeyUp, EventInput, EventChange}
}

// IsBindingEvent reports whether name updates the bound model.
func IsBindingEvent(name string) bool {
	return slices.Contains(BindingEvents(), name)
}

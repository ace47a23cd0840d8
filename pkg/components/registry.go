package components

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-formgroup/pkg/model"
	rendertemplate "github.com/goliatone/go-formgroup/pkg/render/template"
)

// Renderer writes the markup for one control into buf.
type Renderer func(buf *bytes.Buffer, control Control, data ComponentData) error

// ComponentData carries the template engine and theme partial overrides a
// renderer may resolve templates through.
type ComponentData struct {
	Template rendertemplate.TemplateRenderer
	Partials map[string]string
}

// Descriptor bundles a control renderer with the stylesheets it depends on.
type Descriptor struct {
	Name        string
	Renderer    Renderer
	Stylesheets []string
}

// Registry maps input types onto control descriptors.
type Registry struct {
	mu       sync.RWMutex
	controls map[string]Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{controls: make(map[string]Descriptor)}
}

// Clone returns a copy that can be mutated without affecting r.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := New()
	for name, descriptor := range r.controls {
		cloned.controls[name] = cloneDescriptor(descriptor)
	}
	return cloned
}

// Register associates a descriptor with an input type, replacing any
// existing entry.
func (r *Registry) Register(inputType model.InputType, descriptor Descriptor) error {
	name := normalize(string(inputType))
	if name == "" {
		return fmt.Errorf("components: input type is required")
	}
	if !model.InputType(name).Valid() {
		return fmt.Errorf("components: %w %q", model.ErrUnknownType, name)
	}
	if descriptor.Renderer == nil {
		return fmt.Errorf("components: renderer for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	r.controls[name] = cloneDescriptor(descriptor)
	return nil
}

// MustRegister panics when Register fails.
func (r *Registry) MustRegister(inputType model.InputType, descriptor Descriptor) {
	if err := r.Register(inputType, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches the descriptor for an input type.
func (r *Registry) Descriptor(inputType model.InputType) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.controls[normalize(string(inputType.OrDefault()))]
	if !ok {
		return Descriptor{}, false
	}
	return cloneDescriptor(descriptor), true
}

// Names returns the registered type names sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.controls))
	for name := range r.controls {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Stylesheets returns the de-duplicated stylesheets for the given types.
func (r *Registry) Stylesheets(types ...model.InputType) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	seen := make(map[string]struct{})
	for _, inputType := range types {
		descriptor, ok := r.controls[normalize(string(inputType.OrDefault()))]
		if !ok {
			continue
		}
		for _, href := range descriptor.Stylesheets {
			if href == "" {
				continue
			}
			if _, exists := seen[href]; exists {
				continue
			}
			seen[href] = struct{}{}
			out = append(out, href)
		}
	}
	return out
}

func cloneDescriptor(src Descriptor) Descriptor {
	return Descriptor{
		Name:        src.Name,
		Renderer:    src.Renderer,
		Stylesheets: slices.Clone(src.Stylesheets),
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

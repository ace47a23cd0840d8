// Package formgroup is the registration entry point for the FormGroup
// component. It owns the process-wide control registry and exposes the
// helpers most callers need.
package formgroup

import (
	"context"
	"fmt"
	"sync"

	"github.com/goliatone/go-formgroup/pkg/components"
	fg "github.com/goliatone/go-formgroup/pkg/formgroup"
	"github.com/goliatone/go-formgroup/pkg/loader"
	"github.com/goliatone/go-formgroup/pkg/model"
)

// Props aliases model.Props so callers can stay on the root import.
type Props = model.Props

// InputType aliases model.InputType.
type InputType = model.InputType

// Component aliases the FormGroup component type.
type Component = fg.FormGroup

// Option aliases the component option type.
type Option = fg.Option

// Descriptor aliases components.Descriptor for custom control registration.
type Descriptor = components.Descriptor

var (
	registryOnce sync.Once
	registry     *components.Registry
)

// Registry returns the process-wide control registry, seeded with the
// built-in controls on first use.
func Registry() *components.Registry {
	registryOnce.Do(func() {
		registry = components.NewDefaultRegistry()
	})
	return registry
}

// Register replaces the control used for inputType in the process-wide
// registry. Components created afterwards through New pick it up.
func Register(inputType InputType, descriptor Descriptor) error {
	return Registry().Register(inputType, descriptor)
}

// MustRegister panics when Register fails.
func MustRegister(inputType InputType, descriptor Descriptor) {
	Registry().MustRegister(inputType, descriptor)
}

// New mounts a component backed by the process-wide registry. An explicit
// fg.WithRegistry option still wins.
func New(props Props, options ...Option) (*Component, error) {
	opts := make([]Option, 0, len(options)+1)
	opts = append(opts, fg.WithRegistry(Registry()))
	opts = append(opts, options...)
	return fg.New(props, opts...)
}

// RenderHTML renders props once through the process-wide registry.
func RenderHTML(ctx context.Context, props Props, options ...Option) ([]byte, error) {
	component, err := New(props, options...)
	if err != nil {
		return nil, err
	}
	return component.Render(ctx)
}

// RenderDefinition renders the named definition from store.
func RenderDefinition(ctx context.Context, store *loader.Store, name string, options ...Option) ([]byte, error) {
	if store == nil {
		return nil, fmt.Errorf("formgroup: definition store is required")
	}
	props, err := store.Props(name)
	if err != nil {
		return nil, err
	}
	return RenderHTML(ctx, props, options...)
}

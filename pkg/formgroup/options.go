package formgroup

import (
	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-formgroup/pkg/components"
	rendertemplate "github.com/goliatone/go-formgroup/pkg/render/template"
)

// Option configures a FormGroup.
type Option func(*config)

type config struct {
	registry  *components.Registry
	templates rendertemplate.TemplateRenderer
	theme     *theme.RendererConfig
	logger    *zap.Logger
	id        string
	autoBind  bool

	emittedLimit int
}

// DefaultEmittedLimit is the number of entries kept per event name in the
// emitted-event log.
const DefaultEmittedLimit = 256

// WithRegistry swaps the control registry.
func WithRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templates = renderer
		}
	}
}

// WithTheme applies go-theme renderer configuration: partial overrides,
// CSS variables and theme/variant markers.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithLogger attaches a zap logger. The default logger is a no-op.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithID fixes the control id instead of generating one. An "id" attribute in
// props still takes precedence.
func WithID(id string) Option {
	return func(cfg *config) {
		cfg.id = id
	}
}

// WithAutoBind makes the component apply every emitted update to its own
// model, the way a v-model binding would.
func WithAutoBind() Option {
	return func(cfg *config) {
		cfg.autoBind = true
	}
}

// WithEmittedLimit keeps at most n entries per event name in the emitted-event
// log, dropping the oldest first. Zero turns recording off; a negative n keeps
// the default.
func WithEmittedLimit(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.emittedLimit = n
		}
	}
}

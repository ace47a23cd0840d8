package formgroup

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/goliatone/go-formgroup/pkg/components"
	"github.com/goliatone/go-formgroup/pkg/model"
	rendertemplate "github.com/goliatone/go-formgroup/pkg/render/template"
	"github.com/goliatone/go-formgroup/pkg/render/template/gotemplate"
)

// ContentType is the media type of Render output.
const ContentType = "text/html; charset=utf-8"

var idSequence atomic.Uint64

func nextID() string {
	return "formgroup-" + strconv.FormatUint(idSequence.Add(1), 10)
}

var (
	defaultEngineOnce sync.Once
	defaultEngine     rendertemplate.TemplateRenderer
	defaultEngineErr  error
)

// DefaultTemplates returns the shared engine over the embedded templates.
func DefaultTemplates() (rendertemplate.TemplateRenderer, error) {
	defaultEngineOnce.Do(func() {
		engine, err := gotemplate.New(
			gotemplate.WithFS(components.TemplatesFS()),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			defaultEngineErr = fmt.Errorf("formgroup: configure template renderer: %w", err)
			return
		}
		defaultEngine = engine
	})
	return defaultEngine, defaultEngineErr
}

// FormGroup is one mounted component instance. It owns its props and the
// emitted-event log; the generated control id stays stable for the lifetime
// of the instance.
type FormGroup struct {
	mu sync.Mutex

	cfg   config
	props model.Props
	id    string

	emitted   map[string][]Emission
	listeners []func(model.Value)
}

// New mounts a FormGroup with the given props.
func New(props model.Props, options ...Option) (*FormGroup, error) {
	cfg := config{emittedLimit: DefaultEmittedLimit}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = components.NewDefaultRegistry()
	}
	if cfg.templates == nil {
		engine, err := DefaultTemplates()
		if err != nil {
			return nil, err
		}
		cfg.templates = engine
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if err := props.Validate(); err != nil {
		return nil, fmt.Errorf("formgroup: %w", err)
	}

	id := strings.TrimSpace(cfg.id)
	if id == "" {
		id = nextID()
	}

	return &FormGroup{
		cfg:     cfg,
		props:   props.Clone(),
		id:      id,
		emitted: make(map[string][]Emission),
	}, nil
}

// Render renders the component markup for the current props.
func Render(ctx context.Context, props model.Props, options ...Option) ([]byte, error) {
	fg, err := New(props, options...)
	if err != nil {
		return nil, err
	}
	return fg.Render(ctx)
}

// ID returns the control id the label points at.
func (g *FormGroup) ID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.controlID()
}

// Props returns a copy of the current props.
func (g *FormGroup) Props() model.Props {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.props.Clone()
}

// Model returns the current bound value.
func (g *FormGroup) Model() model.Value {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.props.Model
}

// SetProps replaces the props; the next Render reflects them.
func (g *FormGroup) SetProps(props model.Props) error {
	if err := props.Validate(); err != nil {
		return fmt.Errorf("formgroup: %w", err)
	}
	g.mu.Lock()
	g.props = props.Clone()
	g.mu.Unlock()
	return nil
}

// SetModel replaces only the bound value.
func (g *FormGroup) SetModel(value model.Value) {
	g.mu.Lock()
	g.props.Model = value
	g.mu.Unlock()
}

// Stylesheets lists the stylesheets the rendered control depends on.
func (g *FormGroup) Stylesheets() []string {
	g.mu.Lock()
	inputType := g.props.Type
	g.mu.Unlock()
	return g.cfg.registry.Stylesheets(inputType)
}

// Render renders the label, control and feedback markup.
func (g *FormGroup) Render(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	props := g.props.Clone()
	id := g.controlID()
	g.mu.Unlock()

	inputType := props.Type.OrDefault()
	descriptor, ok := g.cfg.registry.Descriptor(inputType)
	if !ok {
		return nil, fmt.Errorf("formgroup: control %q not registered", inputType)
	}

	validation := props.Validation()
	control := buildControl(props, id, validation, g.cfg.logger)
	partials := themePartials(g.cfg.theme)

	var markup bytes.Buffer
	if err := descriptor.Renderer(&markup, control, components.ComponentData{
		Template: g.cfg.templates,
		Partials: partials,
	}); err != nil {
		return nil, fmt.Errorf("formgroup: render %s control: %w", inputType, err)
	}

	rendered, err := g.cfg.templates.RenderTemplate(partials[components.PartialGroup], map[string]any{
		"group":   groupContext(props, id, g.cfg.theme),
		"control": markup.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("formgroup: render group: %w", err)
	}

	g.cfg.logger.Debug("formgroup rendered",
		zap.String("id", id),
		zap.String("type", string(inputType)),
		zap.String("validation", string(validation)),
	)
	return []byte(rendered), nil
}

func (g *FormGroup) controlID() string {
	if value, ok := g.props.Attrs.Get("id"); ok {
		if id := strings.TrimSpace(value.Text()); id != "" && !value.Bare() {
			return id
		}
	}
	return g.id
}

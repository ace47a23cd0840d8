package live

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/goliatone/go-formgroup/pkg/formgroup"
	"github.com/goliatone/go-formgroup/pkg/model"
	"github.com/goliatone/go-formgroup/pkg/render"
	"github.com/goliatone/go-formgroup/pkg/validation"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait).
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 8192
)

// Factory returns the props mounted for a new connection.
type Factory func(r *http.Request) ([]model.Props, error)

// Message is a client event.
type Message struct {
	Name  string       `json:"name"`
	Event string       `json:"event"`
	Key   string       `json:"key,omitempty"`
	Value *model.Value `json:"value,omitempty"`
}

// Reply is sent after every handled message.
type Reply struct {
	Name  string      `json:"name"`
	ID    string      `json:"id,omitempty"`
	HTML  string      `json:"html,omitempty"`
	Model model.Value `json:"model"`
	Valid bool        `json:"valid"`
	Error string      `json:"error,omitempty"`
}

// Handler upgrades requests to websocket sessions.
type Handler struct {
	factory    Factory
	upgrader   websocket.Upgrader
	logger     *zap.Logger
	options    []formgroup.Option
	noValidate bool
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithComponentOptions passes options to every mounted component.
func WithComponentOptions(options ...formgroup.Option) Option {
	return func(h *Handler) {
		h.options = append(h.options, options...)
	}
}

// WithCheckOrigin replaces the upgrader origin check.
func WithCheckOrigin(check func(r *http.Request) bool) Option {
	return func(h *Handler) {
		h.upgrader.CheckOrigin = check
	}
}

// WithoutValidation skips constraint checks after binding events.
func WithoutValidation() Option {
	return func(h *Handler) {
		h.noValidate = true
	}
}

// NewHandler returns a handler mounting the props factory returns.
func NewHandler(factory Factory, options ...Option) *Handler {
	h := &Handler{
		factory: factory,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.factory == nil {
		http.Error(w, "live: no factory configured", http.StatusInternalServerError)
		return
	}
	props, err := h.factory(r)
	if err != nil {
		h.logger.Error("live: build props", zap.Error(err))
		http.Error(w, "live: unable to build components", http.StatusInternalServerError)
		return
	}
	sess, err := newSession(props, h.options)
	if err != nil {
		h.logger.Error("live: mount components", zap.Error(err))
		http.Error(w, "live: unable to mount components", http.StatusInternalServerError)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.logger.Debug("live: upgrade failed", zap.Error(err))
		return
	}
	sess.validate = !h.noValidate
	sess.conn = conn
	sess.logger = h.logger.With(zap.String("remote_addr", r.RemoteAddr))
	sess.run(r.Context())
}

type session struct {
	conn     *websocket.Conn
	logger   *zap.Logger
	validate bool

	writeMu    sync.Mutex
	base       map[string]model.Props
	components map[string]*formgroup.FormGroup
}

func newSession(props []model.Props, options []formgroup.Option) (*session, error) {
	s := &session{
		base:       make(map[string]model.Props, len(props)),
		components: make(map[string]*formgroup.FormGroup, len(props)),
	}
	opts := append([]formgroup.Option{formgroup.WithAutoBind(), formgroup.WithEmittedLimit(0)}, options...)
	for _, p := range props {
		if p.Name == "" {
			return nil, errors.New("live: props name is required")
		}
		if _, exists := s.base[p.Name]; exists {
			return nil, fmt.Errorf("live: duplicate props %q", p.Name)
		}
		component, err := formgroup.New(p, opts...)
		if err != nil {
			return nil, fmt.Errorf("live: mount %q: %w", p.Name, err)
		}
		s.base[p.Name] = p.Clone()
		s.components[p.Name] = component
	}
	return s, nil
}

func (s *session) run(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	defer func() {
		_ = s.conn.Close()
		s.logger.Debug("live: session closed")
	}()

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go s.ping(ctx)

	for {
		var msg Message
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Info("live: read failed", zap.Error(err))
			}
			return
		}
		reply := s.handle(ctx, msg)
		if err := s.write(func() error { return s.conn.WriteJSON(reply) }); err != nil {
			s.logger.Info("live: write failed", zap.Error(err))
			return
		}
	}
}

func (s *session) ping(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := s.write(func() error {
				return s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			})
			if err != nil {
				return
			}
		}
	}
}

func (s *session) write(fn func() error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return fn()
}

// handle dispatches one event and renders the resulting state.
func (s *session) handle(ctx context.Context, msg Message) Reply {
	reply := Reply{Name: msg.Name}
	component, ok := s.components[msg.Name]
	if !ok {
		reply.Error = fmt.Sprintf("unknown component %q", msg.Name)
		return reply
	}

	err := component.Trigger(ctx, model.Event{Name: msg.Event, Key: msg.Key, Value: msg.Value})
	if err != nil {
		reply.Error = err.Error()
		return reply
	}

	if s.validate && model.IsBindingEvent(msg.Event) {
		next := s.base[msg.Name].Clone()
		next.Model = component.Model()
		var messages []string
		for _, issue := range validation.Check(next) {
			messages = append(messages, issue.Message)
		}
		if len(messages) > 0 {
			render.ApplyErrors(&next, messages)
		} else if next.Invalid == nil && !next.Missing() {
			next.Invalid = model.Flag(false)
		}
		if err := component.SetProps(next); err != nil {
			reply.Error = err.Error()
			return reply
		}
	}

	out, err := component.Render(ctx)
	if err != nil {
		reply.Error = err.Error()
		return reply
	}

	props := component.Props()
	reply.ID = component.ID()
	reply.HTML = string(out)
	reply.Model = props.Model
	reply.Valid = props.Validation() == model.Valid

	s.logger.Debug("live: event handled",
		zap.String("name", msg.Name),
		zap.String("event", msg.Event),
		zap.Bool("valid", reply.Valid),
	)
	return reply
}

var _ http.Handler = (*Handler)(nil)

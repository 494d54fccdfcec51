package forms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Controller owns the submission state of one mounted form instance.
type Controller struct {
	inst     *Instance
	client   Doer
	endpoint string
	strategy Strategy
	observer func(from, to State)
	log      *zap.Logger

	mu        sync.Mutex
	state     State
	errMsg    string
	fieldErrs FieldErrors
}

// Option configures a Controller.
type Option func(*Controller)

// WithClient sets the HTTP client used to reach the backend.
func WithClient(d Doer) Option {
	return func(c *Controller) {
		if d != nil {
			c.client = d
		}
	}
}

// WithEndpoint sets the URL submissions are posted to.
func WithEndpoint(url string) Option {
	return func(c *Controller) {
		if url != "" {
			c.endpoint = url
		}
	}
}

// WithStrategy overrides the definition's submission strategy.
func WithStrategy(s Strategy) Option {
	return func(c *Controller) {
		if s != nil {
			c.strategy = s
		}
	}
}

// WithObserver registers a callback for state transitions. It runs outside the lock.
func WithObserver(fn func(from, to State)) Option {
	return func(c *Controller) { c.observer = fn }
}

// WithLogger sets the logger for submission outcomes.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// NewController mounts a controller for inst in the idle state.
func NewController(inst *Instance, opts ...Option) *Controller {
	c := &Controller{
		inst:     inst,
		endpoint: "/",
		strategy: inst.Def.Strategy,
		log:      zap.NewNop(),
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.strategy == nil {
		c.strategy = URLEncoded{}
	}
	if c.client == nil {
		c.client = NewBackend("", 0, c.log)
	}
	return c
}

// Instance returns the form instance being submitted.
func (c *Controller) Instance() *Instance { return c.inst }

// State returns the current submission state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ErrorMessage returns the message shown in the error state.
func (c *Controller) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateError && c.errMsg == "" {
		return GenericErrorMessage
	}
	return c.errMsg
}

// FieldErrors returns validation messages from the last rejected submit.
func (c *Controller) FieldErrors() FieldErrors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fieldErrs
}

// SubmitDisabled reports whether the submit control is disabled.
func (c *Controller) SubmitDisabled() bool {
	return c.State().SubmitDisabled()
}

// Submit validates, serializes, and sends the instance. Invalid fields leave
// the state untouched and return ErrInvalid without contacting the backend.
// Any backend status in [200,400) is success and resets the instance.
func (c *Controller) Submit(ctx context.Context) (err error) {
	def := c.inst.Def

	c.mu.Lock()
	if c.state.SubmitDisabled() {
		c.mu.Unlock()
		return ErrSubmitDisabled
	}
	if errs := c.inst.Validate(); len(errs) > 0 {
		c.fieldErrs = errs
		c.mu.Unlock()
		return ErrInvalid
	}
	from := c.state
	c.state, c.errMsg, c.fieldErrs = StateSending, "", nil
	payload := c.inst.Payload()
	c.mu.Unlock()
	c.notify(from, StateSending)

	ctx, span := c.startSpan(ctx)
	start, status := time.Now(), 0
	defer func() { c.observe(ctx, span, start, status, err) }()

	body, hdr, err := c.strategy.Encode(payload)
	if err != nil {
		c.finish(StateError, GenericErrorMessage)
		return fmt.Errorf("forms: encode %s: %w", def.Name, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		c.finish(StateError, NetworkMessage)
		return fmt.Errorf("forms: build %s request: %w", def.Name, err)
	}
	for k, vs := range hdr {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("form submission failed", zap.String("form", def.Name), zap.String("instance", c.inst.ID), zap.Error(err))
		c.finish(StateError, NetworkMessage)
		return fmt.Errorf("forms: send %s: %w", def.Name, err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	if Succeeded(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		c.mu.Lock()
		c.inst.Reset()
		c.mu.Unlock()
		c.log.Info("form submitted",
			zap.String("form", def.Name),
			zap.String("instance", c.inst.ID),
			zap.String("strategy", c.strategy.Name()),
			zap.Int("status", resp.StatusCode),
		)
		c.finish(StateSuccess, "")
		return nil
	}

	c.log.Warn("form backend rejected submission",
		zap.String("form", def.Name),
		zap.String("instance", c.inst.ID),
		zap.Int("status", resp.StatusCode),
		zap.String("body", drainError(resp.Body)),
	)
	c.finish(StateError, StatusMessage(resp.StatusCode, def.FallbackEmail))
	return &StatusError{Form: def.Name, Code: resp.StatusCode}
}

func (c *Controller) finish(to State, msg string) {
	c.mu.Lock()
	from := c.state
	c.state, c.errMsg = to, msg
	c.mu.Unlock()
	c.notify(from, to)
}

func (c *Controller) notify(from, to State) {
	if c.observer != nil {
		c.observer(from, to)
	}
}

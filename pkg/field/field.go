package field

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/numentry/pkg/notify"
	"github.com/dmitrymomot/numentry/pkg/numformat"
)

// DefaultAttrName is the element attribute read for per-element
// configuration overrides.
const DefaultAttrName = "data-numeric-options"

// dispatch states. A field sits in idle until its value moves, carries
// the pending value through changed, and parks in notified once the
// outcome has been published.
type state int

const (
	stateIdle state = iota
	stateChanged
	stateNotified
)

// Field is a numeric constraint helper bound to one element. It is
// driven by the host's event wiring: call Keystroke after live edits,
// Change on change/blur, or Validate to force a full cycle. All methods
// are safe on a Field bound to a nil element; they degrade to no-ops.
//
// A Field is not safe for concurrent use. It is meant to live inside a
// single event-dispatch loop, which serializes access by construction.
type Field struct {
	id       string
	el       Element
	cfg      numformat.Config
	ctxLabel string
	messages [2]string

	onValid   Callback
	onInvalid Callback
	emitter   *notify.Emitter[Event]
	log       *slog.Logger

	last string
	st   state
}

// Option configures a Field at bind time. Configuration is resolved
// once; there is no live reconfiguration.
type Option func(*bindConfig)

type bindConfig struct {
	defaults  numformat.Config
	layer     numformat.Layer
	attrName  string
	ctxLabel  string
	messages  [2]string
	onValid   Callback
	onInvalid Callback
	emitter   *notify.Emitter[Event]
	log       *slog.Logger
}

// WithDefaults replaces the base configuration the override layers are
// resolved against. Use numformat.FromEnv() here to honor process-level
// settings.
func WithDefaults(cfg numformat.Config) Option {
	return func(bc *bindConfig) {
		bc.defaults = cfg
	}
}

// WithConfig supplies the caller override layer. It is resolved below
// the element attribute layer and above the defaults.
func WithConfig(layer numformat.Layer) Option {
	return func(bc *bindConfig) {
		bc.layer = layer
	}
}

// WithAttrName changes which element attribute is read for per-element
// overrides.
func WithAttrName(name string) Option {
	return func(bc *bindConfig) {
		if name != "" {
			bc.attrName = name
		}
	}
}

// WithContext sets the topic context label appended to published event
// topics, enabling finer-grained subscription.
func WithContext(label string) Option {
	return func(bc *bindConfig) {
		bc.ctxLabel = label
	}
}

// WithMessages overrides the outcome messages. Empty strings keep the
// built-in message for that outcome.
func WithMessages(invalid, valid string) Option {
	return func(bc *bindConfig) {
		if invalid != "" {
			bc.messages[CodeInvalid] = invalid
		}
		if valid != "" {
			bc.messages[CodeValid] = valid
		}
	}
}

// WithOnValid sets the callback invoked after a passing cycle.
func WithOnValid(cb Callback) Option {
	return func(bc *bindConfig) {
		bc.onValid = cb
	}
}

// WithOnInvalid sets the callback invoked after a failing cycle.
func WithOnInvalid(cb Callback) Option {
	return func(bc *bindConfig) {
		bc.onInvalid = cb
	}
}

// WithEmitter publishes outcome events on the given emitter. Without
// one, outcomes still reach the configured callbacks.
func WithEmitter(e *notify.Emitter[Event]) Option {
	return func(bc *bindConfig) {
		bc.emitter = e
	}
}

// WithLogger sets the logger. Silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(bc *bindConfig) {
		if log != nil {
			bc.log = log
		}
	}
}

// Bind attaches a Field to an element and resolves its configuration:
// defaults, then the WithConfig layer, then the element attribute
// layer, later sources winning per key. A nil element yields an inert
// Field whose methods are all no-ops.
func Bind(el Element, opts ...Option) *Field {
	bc := bindConfig{
		defaults: numformat.Default(),
		attrName: DefaultAttrName,
		messages: defaultMessages,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)), // noop logger by default
	}
	for _, opt := range opts {
		opt(&bc)
	}

	layers := make([]numformat.Layer, 0, 2)
	if bc.layer != nil {
		layers = append(layers, bc.layer)
	}
	if el != nil {
		if raw, ok := el.Attr(bc.attrName); ok {
			layers = append(layers, numformat.ParseAttr(raw))
		}
	}

	return &Field{
		id:        uuid.NewString(),
		el:        el,
		cfg:       numformat.Resolve(bc.defaults, layers...),
		ctxLabel:  bc.ctxLabel,
		messages:  bc.messages,
		onValid:   bc.onValid,
		onInvalid: bc.onInvalid,
		emitter:   bc.emitter,
		log:       bc.log,
	}
}

// ID returns the field's unique identifier.
func (f *Field) ID() string { return f.id }

// Config returns the resolved configuration.
func (f *Field) Config() numformat.Config { return f.cfg }

// Init marks the field ready and logs the resolved binding. Returns the
// field for chaining; a no-op when unbound.
func (f *Field) Init() *Field {
	if f.el == nil {
		return f
	}
	f.st = stateIdle
	f.last = ""
	f.log.Debug("field bound",
		slog.String("field_id", f.id),
		slog.String("context", f.ctxLabel),
		slog.Bool("negative", f.cfg.Negative),
		slog.String("decimal", string(f.cfg.Decimal)),
		slog.Int("places", f.cfg.Places),
	)
	return f
}

// Keystroke runs the live validation path: per-character legality of
// the current value, with illegal characters stripped from the element
// when the configuration delegates removal. It only qualifies when the
// configuration enables realtime validation, and only dispatches when
// the value actually changed since the last check.
func (f *Field) Keystroke() any {
	if f.el == nil || !f.cfg.Realtime {
		return nil
	}
	v, changed := f.detect()
	if !changed {
		return nil
	}
	return f.runLive(v)
}

// Change runs the lazy validation path: the whole value is checked
// against the resolved configuration. It qualifies on every call but
// dispatches only when the value changed since the last check.
func (f *Field) Change() any {
	if f.el == nil {
		return nil
	}
	v, changed := f.detect()
	if !changed {
		return nil
	}
	return f.runLazy(v)
}

// Validate forces a full cycle against the current value: the live
// check first, then the lazy check, each dispatching its outcome.
// Change detection is bypassed; an explicit call always validates.
// Returns the field for chaining and is a no-op when unbound.
func (f *Field) Validate() *Field {
	if f.el == nil {
		return f
	}
	v := f.el.Value()
	f.last = v
	f.st = stateChanged
	f.runLive(v)
	f.st = stateChanged
	f.runLazy(v)
	return f
}

// detect compares the element value to the last recorded one. Equal
// values short-circuit back to idle so events that fire without a real
// edit cost nothing; a differing value is recorded and carried forward.
func (f *Field) detect() (string, bool) {
	v := f.el.Value()
	if v == f.last {
		f.st = stateIdle
		return "", false
	}
	f.last = v
	f.st = stateChanged
	f.log.Debug("value changed", slog.String("field_id", f.id), slog.String("value", v))
	return v, true
}

func (f *Field) runLive(v string) any {
	legal := true
	for i, r := range v {
		if !numformat.CheckRune(r, v[:i], f.cfg) {
			legal = false
			break
		}
	}
	if !legal && f.cfg.StripInvalid {
		cleaned := numformat.Strip(v, f.cfg)
		f.el.SetValue(cleaned)
		f.last = cleaned
		f.log.Debug("stripped illegal characters",
			slog.String("field_id", f.id),
			slog.String("value", cleaned),
		)
	}
	code := CodeInvalid
	if legal {
		code = CodeValid
	}
	return f.dispatch(code, v)
}

func (f *Field) runLazy(v string) any {
	code := CodeValid
	if err := numformat.Check(v, f.cfg); err != nil {
		code = CodeInvalid
	}
	return f.dispatch(code, v)
}

// dispatch closes a validation cycle: it builds the outcome event,
// publishes it, then invokes the matching callback. The callback's
// return value becomes the dispatch result. Only a field holding a
// pending change dispatches; anything else is a stale call.
func (f *Field) dispatch(code Code, value string) any {
	if f.st != stateChanged {
		return nil
	}
	base := TopicInvalid
	cb := f.onInvalid
	if code == CodeValid {
		base = TopicValid
		cb = f.onValid
	}

	ev := Event{
		Code:    code,
		Message: f.messages[code],
		Topic:   notify.Topic{Base: base, Context: f.ctxLabel},
		Element: ElementState{Value: value, Ref: f.el, Config: f.cfg},
	}
	f.st = stateNotified

	if f.emitter != nil {
		_ = f.emitter.Publish(context.Background(), ev.Topic, ev)
	}
	f.log.Debug("validation dispatched",
		slog.String("field_id", f.id),
		slog.String("topic", ev.Topic.String()),
		slog.Int("code", int(code)),
	)

	if cb != nil {
		return cb(f, ev)
	}
	return nil
}

package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/numentry/pkg/field"
	"github.com/dmitrymomot/numentry/pkg/numformat"
)

// Result is one field's validation outcome in the response body.
type Result struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Value   string `json:"value"`
}

type response struct {
	Fields map[string]Result `json:"fields"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler validates submitted form values against a Schema using the
// same resolution and checking rules the client-side binding applies.
type Handler struct {
	schema   Schema
	defaults numformat.Config
	log      *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithDefaults replaces the base configuration schema layers resolve
// against.
func WithDefaults(cfg numformat.Config) Option {
	return func(h *Handler) {
		h.defaults = cfg
	}
}

// WithLogger sets the logger. Silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// New returns a router exposing POST /validate. The endpoint accepts an
// urlencoded form, checks every schema'd field present in it, and
// responds 200 with per-field outcomes; a failed check is a normal
// outcome (code 0), not an HTTP error.
func New(schema Schema, opts ...Option) http.Handler {
	h := &Handler{
		schema:   schema,
		defaults: numformat.Default(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Post("/validate", h.validate)
	return r
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/x-www-form-urlencoded" {
		writeJSON(w, http.StatusUnsupportedMediaType,
			errorResponse{Error: "expected application/x-www-form-urlencoded"})
		return
	}
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity,
			errorResponse{Error: "malformed form payload"})
		return
	}

	resp := response{Fields: make(map[string]Result)}
	for name, layer := range h.schema.Fields {
		if !r.PostForm.Has(name) {
			continue
		}
		value := r.PostForm.Get(name)
		cfg := numformat.Resolve(h.defaults, layer)

		code := field.CodeValid
		if err := numformat.Check(value, cfg); err != nil {
			code = field.CodeInvalid
		}
		resp.Fields[name] = Result{
			Code:    int(code),
			Message: field.DefaultMessage(code),
			Value:   value,
		}
		h.log.Debug("field checked",
			slog.String("field", name),
			slog.Int("code", int(code)),
		)
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"qrgen/internal/config"
	"qrgen/internal/generator"
	"qrgen/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Deps holds the services the v1 handlers call into.
type Deps struct {
	Generator generator.Generator
}

// Options configures request handling.
type Options struct {
	// MaxBodyBytes limits the size of JSON request bodies.
	MaxBodyBytes int64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxBodyBytes: cfg.HTTP.MaxBodyBytes}
}

// Handler serves the v1 QR API.
type Handler struct {
	deps     Deps
	options  Options
	validate *validator.Validate
}

func New(deps Deps, options Options) *Handler {
	return &Handler{deps: deps, options: options, validate: validator.New()}
}

// Routes registers the v1 endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/qr", h.GetQR)
	r.Post("/qr", h.PostQR)
	r.Post("/validate", h.PostValidate)
}

// decodeBody reads a size-limited JSON body into v and checks its validate tags.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, h.options.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return serrors.Wrap(serrors.ErrPayloadTooLarge, err, "request body exceeds %d bytes", tooLarge.Limit)
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	if err := h.validate.Struct(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

// Package generator turns candidate URLs into QR images. It validates input,
// delegates symbol encoding to a qrencoder.Encoder and reports typed errors:
// serrors.ErrInvalidInput wrapping a domain.Reason, or
// serrors.ErrEncodingFailed wrapping the encoder's error.
package generator

import (
	"context"
	"fmt"
	"qrgen/internal/config"
	"qrgen/pkg/domain"
	"qrgen/pkg/logger"
	"qrgen/pkg/qrencoder"
	"qrgen/pkg/serrors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "qrgen/internal/generator"

// Options configure how accepted URLs are rendered.
type Options struct {
	// Level is the error-correction level; the highest level by default.
	Level domain.RecoveryLevel
	// ModuleScale is the default side length of one module in pixels.
	ModuleScale int
	// MaxModuleScale caps scales passed to GenerateScaled.
	MaxModuleScale int
	// DisableBorder drops the quiet zone around symbols.
	DisableBorder bool
	// Canonicalize lower-cases the host and drops default ports before encoding.
	Canonicalize bool
}

// DefaultOptions returns the settings used when nothing is configured:
// highest recovery level, 8 pixels per module, quiet zone on.
func DefaultOptions() Options {
	return Options{
		Level:          domain.RecoveryHighest,
		ModuleScale:    8,
		MaxModuleScale: 64,
	}
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) (Options, error) {
	level, err := domain.ParseRecoveryLevel(cfg.QR.RecoveryLevel)
	if err != nil {
		return Options{}, fmt.Errorf("could not parse recovery level: %w", err)
	}

	return Options{
		Level:          level,
		ModuleScale:    cfg.QR.ModuleScale,
		MaxModuleScale: cfg.QR.MaxModuleScale,
		DisableBorder:  cfg.QR.DisableBorder,
		Canonicalize:   cfg.QR.Canonicalize,
	}, nil
}

// generator is the concrete implementation of the Generator interface. It
// holds no per-call state.
type generator struct {
	options     Options
	encoder     qrencoder.Encoder
	instruments *instruments
	tracer      trace.Tracer
}

// Ensure generator implements Generator.
var _ Generator = (*generator)(nil)

// New creates a Generator backed by encoder. Metrics are recorded on mp; a
// nil mp disables them.
func New(encoder qrencoder.Encoder, options Options, mp metric.MeterProvider) (Generator, error) {
	inst, err := newInstruments(mp)
	if err != nil {
		return nil, err
	}

	return &generator{
		options:     options,
		encoder:     encoder,
		instruments: inst,
		tracer:      otel.Tracer(tracerName),
	}, nil
}

// Validate classifies candidate. See the package-level Validate.
func (g *generator) Validate(candidate string) domain.ValidationResult {
	return Validate(candidate)
}

// Generate renders candidate with the configured module scale.
func (g *generator) Generate(ctx context.Context, candidate string) (*domain.QRImage, error) {
	return g.GenerateScaled(ctx, candidate, g.options.ModuleScale)
}

// GenerateScaled validates candidate and, when it is accepted, renders it
// with moduleScale pixels per module. The encoder is never called for a
// rejected candidate.
func (g *generator) GenerateScaled(ctx context.Context, candidate string, moduleScale int) (*domain.QRImage, error) {
	ctx, span := g.tracer.Start(ctx, "generator.Generate")
	defer span.End()

	start := time.Now()
	img, err := g.generate(ctx, candidate, moduleScale)
	g.instruments.record(ctx, time.Since(start), err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	return img, nil
}

func (g *generator) generate(ctx context.Context, candidate string, moduleScale int) (*domain.QRImage, error) {
	res := Validate(candidate)
	if !res.Valid() {
		logger.Debug(ctx, "rejected candidate URL", zap.Stringer("reason", res.Reason))

		return nil, serrors.Wrap(serrors.ErrInvalidInput, res.Reason, "invalid URL")
	}

	if moduleScale < 1 || moduleScale > g.options.MaxModuleScale {
		return nil, serrors.With(serrors.ErrBadRequest,
			"module scale must be between 1 and %d", g.options.MaxModuleScale)
	}

	payload := res.URL
	if g.options.Canonicalize {
		// accepted URLs net/url cannot parse are encoded verbatim
		if canonical, err := Canonicalize(payload); err == nil {
			payload = canonical
		} else {
			logger.Debug(ctx, "could not canonicalize URL", zap.Error(err))
		}
	}

	img, err := g.encoder.Encode(ctx, payload, qrencoder.Options{
		Level:         g.options.Level,
		ModuleScale:   moduleScale,
		DisableBorder: g.options.DisableBorder,
	})
	if err != nil {
		logger.Warn(ctx, "could not encode URL", zap.Int("length", len(payload)), zap.Error(err))

		return nil, serrors.Wrap(serrors.ErrEncodingFailed, err, "could not encode URL")
	}

	return img, nil
}

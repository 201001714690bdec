// Package skip2qr implements qrencoder.Encoder on top of
// github.com/skip2/go-qrcode.
package skip2qr

import (
	"context"
	"errors"
	"fmt"
	"qrgen/pkg/domain"
	"qrgen/pkg/logger"
	"qrgen/pkg/qrencoder"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// quietZone is the border width go-qrcode draws around a symbol, in modules.
const quietZone = 4

// ErrInvalidScale is returned when the module scale is below one pixel.
var ErrInvalidScale = errors.New("module scale must be at least 1")

// Encoder is a stateless qrencoder.Encoder. The zero value is ready to use.
type Encoder struct{}

// Ensure Encoder implements qrencoder.Encoder.
var _ qrencoder.Encoder = (*Encoder)(nil)

// New returns a new Encoder.
func New() *Encoder {
	return &Encoder{}
}

// Encode renders content with go-qrcode. go-qrcode picks the smallest
// version that fits; a negative size passed to Image renders each module as
// that many pixels.
func (e Encoder) Encode(ctx context.Context, content string, opts qrencoder.Options) (*domain.QRImage, error) {
	if opts.ModuleScale < 1 {
		return nil, ErrInvalidScale
	}

	if opts.Level == "" {
		opts.Level = domain.RecoveryHighest
	}

	level, err := recoveryLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	q, err := qrcode.New(content, level)
	if err != nil {
		return nil, fmt.Errorf("could not encode content: %w", err)
	}
	q.DisableBorder = opts.DisableBorder

	border := quietZone
	if opts.DisableBorder {
		border = 0
	}

	img := q.Image(-opts.ModuleScale)
	logger.Debug(ctx, "encoded QR symbol",
		zap.Int("version", q.VersionNumber),
		zap.String("level", string(opts.Level)),
		zap.Int("width", img.Bounds().Dx()),
	)

	return &domain.QRImage{
		Content:     content,
		Version:     q.VersionNumber,
		Level:       opts.Level,
		ModuleScale: opts.ModuleScale,
		Border:      border,
		Image:       img,
	}, nil
}

func recoveryLevel(l domain.RecoveryLevel) (qrcode.RecoveryLevel, error) {
	switch l {
	case domain.RecoveryLow:
		return qrcode.Low, nil
	case domain.RecoveryMedium:
		return qrcode.Medium, nil
	case domain.RecoveryQuartile:
		return qrcode.High, nil
	case domain.RecoveryHighest:
		return qrcode.Highest, nil
	default:
		return 0, fmt.Errorf("unsupported recovery level %q", l)
	}
}

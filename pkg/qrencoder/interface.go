// Package qrencoder defines the abstraction over QR matrix encoders. An
// encoder turns a payload into a rendered raster; choosing the payload and
// validating it is the caller's job.
package qrencoder

import (
	"context"
	"qrgen/pkg/domain"
)

// Options configures a single Encode call.
type Options struct {
	// Level is the error-correction level.
	Level domain.RecoveryLevel
	// ModuleScale is the side length of one module in pixels. Must be >= 1.
	ModuleScale int
	// DisableBorder drops the quiet zone around the symbol.
	DisableBorder bool
}

// Encoder renders QR symbols. Implementations pick the smallest symbol
// version that fits the payload and must not keep state between calls.
//
//go:generate mockgen -package mockqrencoder -source=interface.go -destination=mock/mockqrencoder.go *
type Encoder interface {
	// Encode renders content as a QR symbol. It fails when the content does
	// not fit the largest symbol version at the requested level.
	Encode(ctx context.Context, content string, opts Options) (*domain.QRImage, error)
}

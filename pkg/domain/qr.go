package domain

import (
	"fmt"
	"image"
	"strings"
)

// RecoveryLevel is the QR error-correction level. Higher levels tolerate more
// damage at the cost of capacity.
type RecoveryLevel string

const (
	// RecoveryLow recovers about 7% of data.
	RecoveryLow RecoveryLevel = "low"
	// RecoveryMedium recovers about 15% of data.
	RecoveryMedium RecoveryLevel = "medium"
	// RecoveryQuartile recovers about 25% of data.
	RecoveryQuartile RecoveryLevel = "quartile"
	// RecoveryHighest recovers about 30% of data.
	RecoveryHighest RecoveryLevel = "highest"
)

// ParseRecoveryLevel parses a case-insensitive recovery level name. The
// single-letter aliases L, M, Q and H are accepted too.
func ParseRecoveryLevel(s string) (RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return RecoveryLow, nil
	case "medium", "m":
		return RecoveryMedium, nil
	case "quartile", "q":
		return RecoveryQuartile, nil
	case "highest", "high", "h":
		return RecoveryHighest, nil
	default:
		return "", fmt.Errorf("unknown recovery level %q", s)
	}
}

// QRImage is a rendered QR symbol. Every generation produces a fresh value
// owned by the caller.
type QRImage struct {
	// Content is the exact payload encoded in the symbol.
	Content string
	// Version is the symbol version (1-40) chosen by the encoder.
	Version int
	// Level is the error-correction level used.
	Level RecoveryLevel
	// ModuleScale is the side length of one module in pixels.
	ModuleScale int
	// Border is the width of the quiet zone in modules.
	Border int
	// Image is the rendered raster.
	Image image.Image
}

// Width returns the raster width in pixels.
func (q *QRImage) Width() int {
	if q == nil || q.Image == nil {
		return 0
	}

	return q.Image.Bounds().Dx()
}

// Height returns the raster height in pixels.
func (q *QRImage) Height() int {
	if q == nil || q.Image == nil {
		return 0
	}

	return q.Image.Bounds().Dy()
}

package generator

import (
	"context"
	"qrgen/pkg/domain"
)

// Generator validates candidate URLs and renders accepted ones as QR codes.
// Implementations are safe for concurrent use.
//
//go:generate mockgen -package mockgenerator -source=interface.go -destination=mock/mockgenerator.go *
type Generator interface {
	// Validate classifies a candidate URL without side effects.
	Validate(candidate string) domain.ValidationResult
	// Generate renders candidate with the default module scale.
	Generate(ctx context.Context, candidate string) (*domain.QRImage, error)
	// GenerateScaled renders candidate with an explicit module scale.
	GenerateScaled(ctx context.Context, candidate string, moduleScale int) (*domain.QRImage, error)
}

package genai

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/genai/mock_generator.go -package=mock_genai

// Generator sends one prompt to a text-generation endpoint and returns the
// first candidate's text.
type Generator interface {
	Generate(ctx context.Context, text string) (string, error)
}

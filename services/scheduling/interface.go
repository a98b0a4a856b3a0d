package scheduling

import (
	"context"

	"meetsync/models"
)

// CompletionProvider abstracts the external language-model call so the
// non-deterministic upstream is swappable in tests.
type CompletionProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// SchedulingService turns three participants' availability into meeting
// suggestions.
type SchedulingService interface {
	// GenerateSuggestions validates the participants, asks the completion
	// endpoint for candidate meetings, and normalizes the reply.
	GenerateSuggestions(ctx context.Context, people []models.Person) (*models.AIResponse, error)
}

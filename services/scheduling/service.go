package scheduling

import (
	"context"

	"meetsync/models"
	"meetsync/utils"

	"go.uber.org/zap"
)

// DefaultSchedulingService wires the validation, prompt, completion and
// normalization steps into one stateless pipeline. Each call is one
// independent request/response cycle; no state crosses requests.
type DefaultSchedulingService struct {
	Completion CompletionProvider
}

// NewDefaultSchedulingService builds the service around a completion provider.
func NewDefaultSchedulingService(completion CompletionProvider) *DefaultSchedulingService {
	return &DefaultSchedulingService{Completion: completion}
}

// GenerateSuggestions implements SchedulingService.
func (s *DefaultSchedulingService) GenerateSuggestions(ctx context.Context, people []models.Person) (*models.AIResponse, error) {
	logger := utils.GetLogger()

	if err := ValidatePeople(people); err != nil {
		return nil, err
	}

	prompt := BuildPrompt(people)
	content, err := s.Completion.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result, err := NormalizeResponse(content)
	if err != nil {
		logger.Error("Failed to normalize AI response", zap.Error(err))
		return nil, err
	}

	if len(result.Suggestions) == 0 {
		logger.Debug("AI returned no usable suggestions")
	}
	return result, nil
}

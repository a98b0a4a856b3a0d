package scheduling

import (
	"encoding/json"
	"strings"

	"meetsync/models"
)

// NoAvailabilitySummary is returned when every suggestion was filtered out.
// An empty result is a successful outcome, not an error.
const NoAvailabilitySummary = "No common availability found among all participants."

// rawAIResponse mirrors the JSON shape the model is instructed to emit.
// Suggestions stays raw so a missing field is distinguishable from an empty
// list and individually broken entries can be dropped without failing the
// whole reply.
type rawAIResponse struct {
	Suggestions *[]json.RawMessage `json:"suggestions"`
	Summary     string             `json:"summary"`
}

// NormalizeResponse turns free-text model output into a typed AIResponse.
// The model's reply is not guaranteed well-formed, so the content is scrubbed
// before parsing: fenced-code markers are removed and anything outside the
// outermost braces is discarded. Structurally invalid suggestions are dropped
// silently; the model's output is best-effort and one bad entry should not
// fail the request.
func NormalizeResponse(content string) (*models.AIResponse, error) {
	clean := content
	clean = strings.ReplaceAll(clean, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &MalformedAIOutputError{Raw: content}
	}
	clean = strings.TrimSpace(clean[start : end+1])

	var raw rawAIResponse
	if err := json.Unmarshal([]byte(clean), &raw); err != nil {
		return nil, &MalformedAIOutputError{Raw: content}
	}
	if raw.Suggestions == nil {
		return nil, &MalformedAIOutputError{Raw: content}
	}

	kept := make([]models.MeetingSuggestion, 0, len(*raw.Suggestions))
	for _, entry := range *raw.Suggestions {
		var s models.MeetingSuggestion
		if err := json.Unmarshal(entry, &s); err != nil {
			continue
		}
		if s.Date != "" && s.Time != "" && s.ZipCode != "" {
			kept = append(kept, s)
		}
	}

	if len(kept) == 0 {
		return &models.AIResponse{
			Suggestions: []models.MeetingSuggestion{},
			Summary:     NoAvailabilitySummary,
		}, nil
	}

	return &models.AIResponse{Suggestions: kept, Summary: raw.Summary}, nil
}

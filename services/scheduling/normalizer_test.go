package scheduling

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"meetsync/models"
)

func TestNormalizeResponse(t *testing.T) {
	t.Run("parses clean JSON directly", func(t *testing.T) {
		content := `{"suggestions":[{"date":"2025-11-03","time":"10:00 AM - 11:00 AM","zipCode":"90210"}],"summary":"Works for everyone."}`
		result, err := NormalizeResponse(content)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(result.Suggestions) != 1 || result.Summary != "Works for everyone." {
			t.Fatalf("unexpected result: %+v", result)
		}
	})

	t.Run("strips code fences and surrounding prose", func(t *testing.T) {
		inner := `{"suggestions":[{"date":"2025-11-03","time":"10:00 AM - 11:00 AM","zipCode":"90210"}],"summary":"Best overlap."}`
		wrapped := "Sure! Here is the schedule:\n```json\n" + inner + "\n```\nLet me know if you need more options."

		got, err := NormalizeResponse(wrapped)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var want models.AIResponse
		if err := json.Unmarshal([]byte(inner), &want); err != nil {
			t.Fatalf("failed to parse reference JSON: %v", err)
		}
		if !reflect.DeepEqual(*got, want) {
			t.Fatalf("fenced result differs from direct parse:\ngot  %+v\nwant %+v", *got, want)
		}
	})

	t.Run("drops suggestions with missing fields silently", func(t *testing.T) {
		content := `{"suggestions":[
			{"date":"2025-11-03","time":"10-11","zipCode":"90210"},
			{"date":"","time":"10-11","zipCode":"90210"},
			{"date":"2025-11-04","time":"","zipCode":"90210"},
			{"date":"2025-11-05","time":"10-11","zipCode":""}
		]}`
		result, err := NormalizeResponse(content)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(result.Suggestions) != 1 {
			t.Fatalf("expected 1 surviving suggestion, got %d", len(result.Suggestions))
		}
		if result.Suggestions[0].Date != "2025-11-03" {
			t.Fatalf("wrong suggestion survived: %+v", result.Suggestions[0])
		}
	})

	t.Run("returns a successful empty result when nothing survives", func(t *testing.T) {
		for _, content := range []string{
			`{"suggestions": []}`,
			`{"suggestions":[{"date":"","time":"","zipCode":""}]}`,
		} {
			result, err := NormalizeResponse(content)
			if err != nil {
				t.Fatalf("content %q: expected success, got %v", content, err)
			}
			if len(result.Suggestions) != 0 {
				t.Fatalf("content %q: expected empty suggestions", content)
			}
			if result.Summary != NoAvailabilitySummary {
				t.Fatalf("content %q: unexpected summary %q", content, result.Summary)
			}
		}
	})

	t.Run("keeps more than three suggestions untruncated", func(t *testing.T) {
		content := `{"suggestions":[
			{"date":"2025-11-03","time":"a","zipCode":"1"},
			{"date":"2025-11-04","time":"b","zipCode":"2"},
			{"date":"2025-11-05","time":"c","zipCode":"3"},
			{"date":"2025-11-06","time":"d","zipCode":"4"}
		]}`
		result, err := NormalizeResponse(content)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(result.Suggestions) != 4 {
			t.Fatalf("expected all 4 suggestions kept, got %d", len(result.Suggestions))
		}
	})

	t.Run("rejects unusable model output", func(t *testing.T) {
		for _, content := range []string{
			"Sure! Here's the schedule: not json at all",
			"",
			"```json\n```",
			`{"summary":"no suggestions field"}`,
			`{"suggestions":"not an array"}`,
			"prefix { broken",
		} {
			_, err := NormalizeResponse(content)
			var malformedErr *MalformedAIOutputError
			if !errors.As(err, &malformedErr) {
				t.Fatalf("content %q: expected MalformedAIOutputError, got %v", content, err)
			}
		}
	})

	t.Run("captures the raw content for diagnostics", func(t *testing.T) {
		content := "Sure! Here's the schedule: not json at all"
		_, err := NormalizeResponse(content)
		var malformedErr *MalformedAIOutputError
		if !errors.As(err, &malformedErr) {
			t.Fatalf("expected MalformedAIOutputError, got %v", err)
		}
		if malformedErr.Raw != content {
			t.Fatalf("expected raw content to be preserved, got %q", malformedErr.Raw)
		}
	})
}

package scheduling

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	people := validPeople()
	prompt := BuildPrompt(people)

	t.Run("contains every person's name and zip code", func(t *testing.T) {
		for _, p := range people {
			if !strings.Contains(prompt, p.Name) {
				t.Fatalf("prompt is missing name %q", p.Name)
			}
			if !strings.Contains(prompt, p.ZipCode) {
				t.Fatalf("prompt is missing zip code %q", p.ZipCode)
			}
			if !strings.Contains(prompt, p.Email) {
				t.Fatalf("prompt is missing email %q", p.Email)
			}
		}
	})

	t.Run("contains every date and time pair verbatim", func(t *testing.T) {
		for _, p := range people {
			for _, slot := range p.Availability {
				line := "  " + slot.Date + ": " + strings.Join(slot.Times, ", ")
				if !strings.Contains(prompt, line) {
					t.Fatalf("prompt is missing availability line %q", line)
				}
			}
		}
	})

	t.Run("lists attendees as a comma-joined clause", func(t *testing.T) {
		want := "Consider the zip codes: Alice at 90210, Bob at 90001, Carol at 90402"
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt is missing the zip clause %q", want)
		}
	})

	t.Run("states the hard constraints", func(t *testing.T) {
		for _, want := range []string{
			"All 3 people must be available at the suggested times",
			"within 30 minutes travel distance",
			"Only suggest times within the next 7 days",
		} {
			if !strings.Contains(prompt, want) {
				t.Fatalf("prompt is missing constraint %q", want)
			}
		}
	})

	t.Run("pins the output shape", func(t *testing.T) {
		for _, want := range []string{
			"Respond with ONLY valid JSON (no markdown, no code blocks):",
			`"suggestions": [`,
			`"zipCode": "central zip code"`,
			`"summary": "Brief explanation of the best option"`,
		} {
			if !strings.Contains(prompt, want) {
				t.Fatalf("prompt is missing output instruction %q", want)
			}
		}
	})

	t.Run("is deterministic for identical input", func(t *testing.T) {
		again := BuildPrompt(validPeople())
		if prompt != again {
			t.Fatalf("prompt differs across identical calls")
		}
	})

	t.Run("keeps availability in input order", func(t *testing.T) {
		first := strings.Index(prompt, "2025-11-03")
		second := strings.Index(prompt, "2025-11-04")
		if first == -1 || second == -1 || first > second {
			t.Fatalf("availability dates are out of input order")
		}
	})
}

package scheduling

import (
	"fmt"
	"strings"

	"meetsync/models"
)

// systemInstruction is the fixed system turn sent with every scheduling
// request.
const systemInstruction = "You are a meeting scheduling assistant. Always respond with valid JSON only, no markdown formatting or code blocks."

// BuildPrompt serializes three participants into the instruction string for
// the completion endpoint. The wording is part of the behavioral contract:
// it states the hard constraints, lists each person's availability in input
// order, and pins the required output shape.
func BuildPrompt(people []models.Person) string {
	clauses := make([]string, 0, len(people))
	for _, p := range people {
		clauses = append(clauses, fmt.Sprintf("%s at %s", p.Name, p.ZipCode))
	}

	blocks := make([]string, 0, len(people))
	for _, p := range people {
		lines := make([]string, 0, len(p.Availability))
		for _, slot := range p.Availability {
			lines = append(lines, fmt.Sprintf("  %s: %s", slot.Date, strings.Join(slot.Times, ", ")))
		}
		blocks = append(blocks, fmt.Sprintf("\n%s (%s, Zip: %s):\n%s\n", p.Name, p.Email, p.ZipCode, strings.Join(lines, "\n")))
	}

	var sb strings.Builder
	sb.WriteString("You are an intelligent meeting scheduler. Analyze the following availability data for 3 people and find up to 3 optimal meeting times.\n\n")
	sb.WriteString("IMPORTANT CONSTRAINTS:\n")
	sb.WriteString("- All 3 people must be available at the suggested times\n")
	sb.WriteString("- The meeting location (zip code) should be within 30 minutes travel distance for all attendees\n")
	sb.WriteString("- Consider the zip codes: " + strings.Join(clauses, ", ") + "\n")
	sb.WriteString("- Only suggest times within the next 7 days\n\n")
	sb.WriteString("AVAILABILITY DATA:\n")
	sb.WriteString(strings.Join(blocks, "\n"))
	sb.WriteString("\n\nRespond with ONLY valid JSON (no markdown, no code blocks):\n")
	sb.WriteString(`{
  "suggestions": [
    {
      "date": "YYYY-MM-DD",
      "time": "HH:MM AM/PM - HH:MM AM/PM",
      "zipCode": "central zip code"
    }
  ],
  "summary": "Brief explanation of the best option"
}`)
	sb.WriteString("\n\nFind overlapping time slots where all 3 people are available and suggest a central meeting location.")
	return sb.String()
}

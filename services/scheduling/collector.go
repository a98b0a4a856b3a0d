package scheduling

import (
	"encoding/json"

	"meetsync/models"
)

// RequiredPeople is the exact number of participants a scheduling request
// must carry.
const RequiredPeople = 3

// ValidatePeople checks a candidate participant list for structural
// completeness: exactly three people, all fields present, and at least one
// availability slot per person. Order is preserved as given.
func ValidatePeople(people []models.Person) error {
	if len(people) != RequiredPeople {
		return NewValidationError("Exactly 3 people are required")
	}
	for i, p := range people {
		if p.Name == "" {
			return NewValidationError("person %d is missing a name", i+1)
		}
		if p.Email == "" {
			return NewValidationError("person %d is missing an email", i+1)
		}
		if p.ZipCode == "" {
			return NewValidationError("person %d is missing a zip code", i+1)
		}
		if len(p.Availability) == 0 {
			return NewValidationError("person %d has no availability", i+1)
		}
	}
	return nil
}

// ParsePeopleJSON decodes a raw JSON document of the form
// {"people": [...]} and validates the extracted participants. A syntax or
// shape failure yields a ParseError before any field validation occurs.
func ParsePeopleJSON(raw []byte) ([]models.Person, error) {
	var req models.MeetingRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, &ParseError{Message: "invalid JSON: " + err.Error()}
	}
	if req.People == nil {
		return nil, &ParseError{Message: "missing 'people' field"}
	}
	if err := ValidatePeople(req.People); err != nil {
		return nil, err
	}
	return req.People, nil
}

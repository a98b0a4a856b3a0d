// File: models/person.go
package models

// TimeSlot holds one day's offered windows for a participant.
type TimeSlot struct {
	Date  string   `bson:"date" json:"date"`   // Calendar date (YYYY-MM-DD)
	Times []string `bson:"times" json:"times"` // Human-readable time ranges, e.g. "9:00 AM - 10:00 AM"
}

// Person is one participant's scheduling input.
type Person struct {
	Name         string     `bson:"name" json:"name"`
	Email        string     `bson:"email" json:"email"`
	ZipCode      string     `bson:"zipCode" json:"zipCode"` // Opaque location text, never geocoded
	Availability []TimeSlot `bson:"availability" json:"availability"`
}

// MeetingRequest is the inbound payload for a scheduling request.
type MeetingRequest struct {
	People []Person `json:"people"`
}

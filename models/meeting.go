// File: models/meeting.go
package models

import "time"

// MeetingSuggestion is one candidate meeting proposed by the model.
type MeetingSuggestion struct {
	Date    string `bson:"date" json:"date"`       // Expected YYYY-MM-DD, not strictly validated
	Time    string `bson:"time" json:"time"`       // Free-text time range
	ZipCode string `bson:"zipCode" json:"zipCode"` // Model-chosen central location
}

// AIResponse is the normalized result of one scheduling request.
type AIResponse struct {
	Suggestions []MeetingSuggestion `bson:"suggestions" json:"suggestions"`
	Summary     string              `bson:"summary,omitempty" json:"summary,omitempty"`
}

// MeetingRecord is one persisted scheduling result, owned by a user.
type MeetingRecord struct {
	ID        string     `bson:"id" json:"id"`
	UserID    string     `bson:"userId" json:"userId"`
	Results   AIResponse `bson:"results" json:"results"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
}

// MeetingStats aggregates a user's saved meeting history for the dashboard.
type MeetingStats struct {
	Total               int     `json:"total"`
	LastSevenDays       int     `json:"lastSevenDays"`
	AverageParticipants float64 `json:"averageParticipants"`
}

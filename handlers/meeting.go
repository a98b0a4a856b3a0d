package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"meetsync/config"
	meetingRepo "meetsync/database/repository/meeting"
	"meetsync/models"
	"meetsync/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MeetingHandler serves the scheduling pipeline and the saved-results store.
type MeetingHandler struct {
	Scheduler scheduling.SchedulingService
	Records   meetingRepo.MeetingRecordRepository
	logger    *zap.Logger
}

// NewMeetingHandler creates a MeetingHandler.
func NewMeetingHandler(scheduler scheduling.SchedulingService, records meetingRepo.MeetingRecordRepository, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{Scheduler: scheduler, Records: records, logger: logger}
}

// FindMeeting runs one scheduling request: validate the three participants,
// ask the completion endpoint, normalize and return the suggestions.
func (h *MeetingHandler) FindMeeting(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.Error("Failed to read meeting request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	people, err := scheduling.ParsePeopleJSON(raw)
	if err != nil {
		h.respondSchedulingError(c, err)
		return
	}

	result, err := h.Scheduler.GenerateSuggestions(c.Request.Context(), people)
	if err != nil {
		h.respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// respondSchedulingError maps the scheduling error taxonomy onto HTTP
// responses. Upstream diagnostics and raw model output are only exposed
// outside production.
func (h *MeetingHandler) respondSchedulingError(c *gin.Context, err error) {
	var validationErr *scheduling.ValidationError
	var parseErr *scheduling.ParseError
	var configErr *scheduling.ConfigurationError
	var upstreamErr *scheduling.UpstreamError
	var emptyErr *scheduling.EmptyResponseError
	var malformedErr *scheduling.MalformedAIOutputError

	switch {
	case errors.As(err, &parseErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": parseErr.Message})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &configErr):
		h.logger.Error("Completion credential missing", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Groq API key not configured"})
	case errors.As(err, &upstreamErr):
		h.logger.Error("Completion endpoint failure",
			zap.Int("status", upstreamErr.StatusCode),
			zap.String("body", upstreamErr.Body))
		resp := gin.H{"error": "Failed to get AI response"}
		if !config.IsProduction() {
			resp["details"] = upstreamErr.Body
		}
		c.JSON(http.StatusInternalServerError, resp)
	case errors.As(err, &emptyErr):
		h.logger.Error("No content in AI response")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No response from AI"})
	case errors.As(err, &malformedErr):
		h.logger.Error("Failed to parse AI response", zap.String("content", malformedErr.Raw))
		resp := gin.H{"error": "Invalid AI response format"}
		if !config.IsProduction() {
			resp["debug"] = malformedErr.Raw
		}
		c.JSON(http.StatusInternalServerError, resp)
	default:
		h.logger.Error("Scheduling request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": err.Error()})
	}
}

// saveMeetingRequest is the inbound payload for SaveMeeting. Results stays a
// pointer so an absent field is distinguishable from an empty result.
type saveMeetingRequest struct {
	Results *models.AIResponse `json:"results"`
}

// SaveMeeting persists an AI response for the authenticated user.
func (h *MeetingHandler) SaveMeeting(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req saveMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Results == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No results provided"})
		return
	}

	record := models.MeetingRecord{
		UserID:  userID.(string),
		Results: *req.Results,
	}
	if _, err := h.Records.Create(c.Request.Context(), record); err != nil {
		h.logger.Error("Failed to save meeting record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save results"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Saved"})
}

// ListMeetings returns the authenticated user's saved results, newest first.
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	records, err := h.Records.GetByUserID(c.Request.Context(), userID.(string))
	if err != nil {
		h.logger.Error("Failed to list meeting records", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve meetings"})
		return
	}
	if records == nil {
		records = []models.MeetingRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"meetings": records})
}

// GetMeetingStats computes dashboard aggregates over the user's history:
// total saved results, results from the trailing 7 days, and the average
// participant count (3 when unknown).
func (h *MeetingHandler) GetMeetingStats(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	records, err := h.Records.GetByUserID(c.Request.Context(), userID.(string))
	if err != nil {
		h.logger.Error("Failed to load meeting records for stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats"})
		return
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	stats := models.MeetingStats{
		Total:               len(records),
		AverageParticipants: scheduling.RequiredPeople,
	}
	for _, r := range records {
		if r.CreatedAt.After(weekAgo) {
			stats.LastSevenDays++
		}
	}

	c.JSON(http.StatusOK, stats)
}

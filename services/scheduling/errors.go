package scheduling

import "fmt"

// ValidationError reports structurally invalid participant input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ParseError reports raw input that is not syntactically valid JSON.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// ConfigurationError reports a missing or unusable completion credential.
// It is raised before any network call is attempted.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// UpstreamError reports a non-success HTTP status from the completion
// endpoint. Body carries the raw upstream response for diagnostics only.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion endpoint returned status %d", e.StatusCode)
}

// EmptyResponseError reports a success response with no extractable
// message content.
type EmptyResponseError struct{}

func (e *EmptyResponseError) Error() string {
	return "no content in completion response"
}

// MalformedAIOutputError reports model output that could not be normalized
// into a suggestion list. Raw carries the unmodified model text.
type MalformedAIOutputError struct {
	Raw string
}

func (e *MalformedAIOutputError) Error() string {
	return "invalid AI response format"
}

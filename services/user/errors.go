package user

import "fmt"

// AuthError reports a failed registration or authentication attempt with a
// message safe to show the caller.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func NewAuthError(format string, args ...interface{}) error {
	return &AuthError{Message: fmt.Sprintf(format, args...)}
}

package panelclient

import "fmt"

// AuthError represents a failed login against the panel
type AuthError struct {
	Msg string
}

// Error returns the error message
func (e *AuthError) Error() string {
	return fmt.Sprintf("login failed: %s", e.Msg)
}

// APIError represents an envelope the panel answered with success=false
type APIError struct {
	Op  string
	Msg string
}

// Error returns the error message
func (e *APIError) Error() string {
	return fmt.Sprintf("panel API error during %s: %s", e.Op, e.Msg)
}

// NotFoundError represents a lookup the panel answered with an empty object
type NotFoundError struct {
	Resource string
	Key      string
}

// Error returns the error message
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// StatusError represents a non-OK HTTP response outside the envelope contract
type StatusError struct {
	Op     string
	Status int
	Body   string
}

// Error returns the error message
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed with status code: %d, response: %s", e.Op, e.Status, e.Body)
}

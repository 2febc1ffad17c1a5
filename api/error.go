package api

import (
	"errors"
	"fmt"
)

// Error is the single failure kind the client surfaces: a non-2xx backend
// response. Body holds the raw response text, which the views render inline.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("request failed: %d", e.Status)
}

// IsStatus reports whether err is a backend error with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

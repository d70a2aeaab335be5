package repository

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds surfaced by VCS operations. Callers distinguish them with
// errors.Is; anything not wrapped with one of these is a transport failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// wrapStatusErr classifies an API failure by HTTP status code.
func wrapStatusErr(op string, statusCode int, err error) error {
	if err == nil {
		return nil
	}
	switch statusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w: %v", op, ErrNotFound, err)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s: %w: %v", op, ErrUnauthorized, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

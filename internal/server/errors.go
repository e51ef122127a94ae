// Package server provides the HTTP REST API for the job search aggregator.
package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrCompanyRequired indicates a request without a company name
type ErrCompanyRequired struct{}

func (e *ErrCompanyRequired) Error() string {
	return "company name is required"
}

// ErrUnknownMode indicates an unsupported search mode
type ErrUnknownMode struct {
	Mode string
}

func (e *ErrUnknownMode) Error() string {
	return fmt.Sprintf("unknown search mode: %s", e.Mode)
}

// ErrSearchTimeout indicates the search exceeded its deadline
type ErrSearchTimeout struct{}

func (e *ErrSearchTimeout) Error() string {
	return "search timed out"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *ErrCompanyRequired, *ErrUnknownMode:
		return http.StatusBadRequest
	case *ErrSearchTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

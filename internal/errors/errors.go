// Package errors provides shared error types for the lookup clients.
package errors

import (
	"errors"
	"fmt"
)

// NotFoundError indicates the upstream API has no page or entity for the request.
type NotFoundError struct {
	Service    string // "wikipedia", "wikidata", "suggest"
	EntityType string // "page", "entity", "category"
	Identifier string // article reference or keyword
}

func (e *NotFoundError) Error() string {
	if e.EntityType != "" {
		return fmt.Sprintf("%s not found on %s: %s", e.EntityType, e.Service, e.Identifier)
	}
	return fmt.Sprintf("not found on %s: %s", e.Service, e.Identifier)
}

// NewNotFoundError creates a NotFoundError for a page lookup.
func NewNotFoundError(service, identifier string) *NotFoundError {
	return &NotFoundError{
		Service:    service,
		EntityType: "page",
		Identifier: identifier,
	}
}

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// UpstreamError indicates a non-success HTTP status from an upstream API.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string // truncated response body
}

func (e *UpstreamError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s returned status %d: %s", e.Service, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s returned status %d", e.Service, e.StatusCode)
}

// APIError is an error envelope returned inside a successful HTTP response,
// e.g. MediaWiki's <error code="..." info="..."/>.
type APIError struct {
	Service string
	Code    string
	Info    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error [%s]: %s", e.Service, e.Code, e.Info)
}

// DecodeError indicates a response body that could not be parsed.
type DecodeError struct {
	Service string
	Format  string // "xml" or "json"
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s %s response: %v", e.Service, e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsValidation returns true if err wraps a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsUpstream returns true if err wraps an UpstreamError or an APIError.
func IsUpstream(err error) bool {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return true
	}
	var api *APIError
	return errors.As(err, &api)
}

// Code returns a short machine-readable label for err, used as a metrics label.
func Code(err error) string {
	var (
		validation *ValidationError
		notFound   *NotFoundError
		upstream   *UpstreamError
		api        *APIError
		decode     *DecodeError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &validation):
		return "validation"
	case errors.As(err, &notFound):
		return "not_found"
	case errors.As(err, &upstream):
		return fmt.Sprintf("http_%d", upstream.StatusCode)
	case errors.As(err, &api):
		return api.Code
	case errors.As(err, &decode):
		return "decode"
	default:
		return "transport"
	}
}

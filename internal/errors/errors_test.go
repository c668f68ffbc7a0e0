package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		expected string
	}{
		{
			name:     "with entity type",
			err:      &NotFoundError{Service: "wikidata", EntityType: "entity", Identifier: "de:Berlin"},
			expected: "entity not found on wikidata: de:Berlin",
		},
		{
			name:     "without entity type",
			err:      &NotFoundError{Service: "wikipedia", Identifier: "en:Nowhere"},
			expected: "not found on wikipedia: en:Nowhere",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("wikipedia", "en:Nowhere")

	assert.Equal(t, "wikipedia", err.Service)
	assert.Equal(t, "page", err.EntityType)
	assert.Equal(t, "en:Nowhere", err.Identifier)
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name:     "field and value",
			err:      NewValidationError("article", "Berlin", "expected language:Title"),
			expected: `validation failed for article="Berlin": expected language:Title`,
		},
		{
			name:     "field only",
			err:      NewValidationError("keyword", "", "keyword is required"),
			expected: "validation failed for keyword: keyword is required",
		},
		{
			name:     "message only",
			err:      &ValidationError{Message: "bad input"},
			expected: "validation failed: bad input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestPredicates_Wrapped(t *testing.T) {
	validation := fmt.Errorf("synonyms: %w", NewValidationError("article", "x", "bad"))
	notFound := fmt.Errorf("facts: %w", NewNotFoundError("wikidata", "en:X"))
	upstream := fmt.Errorf("fetch: %w", &UpstreamError{Service: "wikipedia", StatusCode: 503})
	api := fmt.Errorf("fetch: %w", &APIError{Service: "wikipedia", Code: "badvalue", Info: "nope"})

	assert.True(t, IsValidation(validation))
	assert.False(t, IsValidation(notFound))
	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(upstream))
	assert.True(t, IsUpstream(upstream))
	assert.True(t, IsUpstream(api))
	assert.False(t, IsUpstream(validation))
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation", NewValidationError("article", "", "required"), "validation"},
		{"not found", NewNotFoundError("wikidata", "en:X"), "not_found"},
		{"upstream", &UpstreamError{Service: "suggest", StatusCode: 429}, "http_429"},
		{"api", &APIError{Service: "wikipedia", Code: "invalidtitle"}, "invalidtitle"},
		{"decode", &DecodeError{Service: "wikipedia", Format: "xml", Err: io.ErrUnexpectedEOF}, "decode"},
		{"transport", errors.New("dial tcp: refused"), "transport"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestDecodeError_Unwrap(t *testing.T) {
	err := &DecodeError{Service: "wikidata", Format: "json", Err: io.ErrUnexpectedEOF}

	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "failed to decode wikidata json response")
}

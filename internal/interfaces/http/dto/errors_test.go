package dto

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeRequestTooLarge, http.StatusRequestEntityTooLarge},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeInvalidJSON, http.StatusBadRequest},
		{ErrCodeMissingFields, http.StatusBadRequest},
		{ErrCodeInvalidFieldType, http.StatusBadRequest},
		{ErrCodeUnknownKind, http.StatusNotFound},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeUnsupportedOperation, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeForeignKeyViolation, http.StatusConflict},
		{ErrCodeConstraintViolation, http.StatusConflict},
		{ErrCodeHasReferences, http.StatusConflict},
		// Unknown code should return 500
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"NOT_FOUND", ErrCodeNotFound},
		{"INVALID_INPUT", ErrCodeInvalidInput},
		{"HAS_REFERENCES", ErrCodeHasReferences},
		{"ALREADY_EXISTS", ErrCodeAlreadyExists},
		{"FOREIGN_KEY_VIOLATION", ErrCodeForeignKeyViolation},
		{"CONSTRAINT_VIOLATION", ErrCodeConstraintViolation},
		{ErrCodeNotFound, ErrCodeNotFound},
		{"CUSTOM_ERROR", "CUSTOM_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeErrorCode(tt.input))
		})
	}
}

func TestErrorCodeFormat(t *testing.T) {
	for code := range ErrorCodeHTTPStatus {
		assert.True(t, strings.HasPrefix(code, "ERR_"), "code %s should start with ERR_", code)
		assert.Equal(t, strings.ToUpper(code), code)
	}
	for _, code := range domainCodeMapping {
		_, ok := ErrorCodeHTTPStatus[code]
		assert.True(t, ok, "mapped code %s has no status", code)
	}
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrCodeNotFound, "Resource not found")

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Resource not found", resp.Error.Message)
	assert.Empty(t, resp.Error.RequestID)
}

func TestNewFieldErrorResponse(t *testing.T) {
	resp := NewFieldErrorResponse(ErrCodeMissingFields, "missing", "req-1", []string{"name", "latitude"})

	require.NotNil(t, resp.Error)
	assert.Equal(t, "req-1", resp.Error.RequestID)
	assert.Equal(t, []string{"name", "latitude"}, resp.Error.Fields)
}

func TestErrorResponseJSON(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "Port not found", "req-test-123")

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, false, parsed["success"])
	assert.NotContains(t, parsed, "data")
	errObj := parsed["error"].(map[string]any)
	assert.Equal(t, ErrCodeNotFound, errObj["code"])
	assert.Equal(t, "req-test-123", errObj["request_id"])
	assert.NotContains(t, errObj, "fields")
}

func TestNewSuccessResponse(t *testing.T) {
	resp := NewSuccessResponse(CreatedResponse{ID: 3})

	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.Equal(t, CreatedResponse{ID: 3}, resp.Data)
}

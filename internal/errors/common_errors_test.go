package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_Constants(t *testing.T) {
	tests := []struct {
		name     string
		errType  ErrorType
		expected string
	}{
		{name: "schema error type", errType: ErrTypeSchema, expected: "SCHEMA"},
		{name: "parsing error type", errType: ErrTypeParsing, expected: "PARSING"},
		{name: "storage error type", errType: ErrTypeStorage, expected: "STORAGE"},
		{name: "validation error type", errType: ErrTypeValidation, expected: "VALIDATION"},
		{name: "not found error type", errType: ErrTypeNotFound, expected: "NOT_FOUND"},
		{name: "config error type", errType: ErrTypeConfig, expected: "CONFIG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.errType))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name:        "error without cause",
			appError:    NewAppError(ErrTypeConfig, "bad level", nil),
			wantMessage: "[CONFIG] bad level",
		},
		{
			name:        "error with cause",
			appError:    NewStorageError("write report", fmt.Errorf("disk full")),
			wantMessage: "[STORAGE] write report: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	err := NewStorageError("open report", os.ErrPermission)

	assert.True(t, errors.Is(err, os.ErrPermission))
	assert.Equal(t, os.ErrPermission, err.Unwrap())
}

func TestMissingColumnError(t *testing.T) {
	err := NewMissingColumnError([]string{"sex", "island"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.False(t, errors.Is(err, ErrSpeciesNotFound))
	assert.Equal(t, ErrTypeSchema, err.Type)
	assert.Contains(t, err.Error(), "sex, island")
	assert.Equal(t, []string{"sex", "island"}, err.Context["columns"])

	wrapped := fmt.Errorf("load dataset: %w", err)
	assert.True(t, errors.Is(wrapped, ErrMissingColumn))
	assert.True(t, IsType(wrapped, ErrTypeSchema))
}

func TestSpeciesNotFoundError(t *testing.T) {
	err := NewSpeciesNotFoundError("Emperor")

	assert.True(t, errors.Is(err, ErrSpeciesNotFound))
	assert.Equal(t, ErrTypeNotFound, err.Type)
	assert.Contains(t, err.Error(), `"Emperor"`)
	assert.Equal(t, "Emperor", err.Context["species"])
}

func TestIsType(t *testing.T) {
	assert.True(t, IsType(NewParsingError("bad number", nil), ErrTypeParsing))
	assert.False(t, IsType(NewParsingError("bad number", nil), ErrTypeStorage))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrTypeParsing))
	assert.False(t, IsType(nil, ErrTypeParsing))
}

func TestAppError_WithContext(t *testing.T) {
	err := &AppError{Type: ErrTypeParsing, Message: "bad row"}
	err.WithContext("line", 4).WithContext("column", "body_mass_g")

	assert.Equal(t, 4, err.Context["line"])
	assert.Equal(t, "body_mass_g", err.Context["column"])
}

package errors

import (
	"net/http"
	"testing"

	"labgas/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	assert.True(t, errors.Is(ErrDuplicateCylinderCode, ErrDuplicateKey))
	assert.True(t, errors.Is(ErrDuplicateElementName, ErrDuplicateKey))
	assert.True(t, errors.Is(ErrInvalidReference, ErrValidationFailed))
	assert.False(t, errors.Is(ErrCylinderNotFound, ErrElementNotFound))

	detailed := ErrValidationFailed.WithDetails("code is required")
	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.Equal(t, "code is required", detailed.Details())
	assert.Equal(t, "Dados de entrada inválidos: code is required", detailed.Error())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrCylinderNotFound.WrapMessage("lookup failed")

	appErr, ok := errors.AsType[AppError](wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "CYLINDER_NOT_FOUND", appErr.ErrorCode())
}

func TestUpstreamError(t *testing.T) {
	cause := errors.New("Invalid login credentials")
	err := NewUpstreamError(cause, http.StatusUnauthorized, "")

	assert.Equal(t, http.StatusUnauthorized, err.HTTPCode())
	assert.Equal(t, "UPSTREAM_ERROR", err.ErrorCode())
	assert.Equal(t, "Invalid login credentials", err.Message())
	assert.True(t, errors.Is(err, cause))

	explicit := NewUpstreamError(nil, http.StatusBadRequest, "rate limited")
	assert.Equal(t, "rate limited", explicit.Message())
	assert.Contains(t, explicit.Error(), "rate limited")
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to list cylinders")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to list cylinders", err.Details())
	assert.True(t, errors.Is(err, cause))
}

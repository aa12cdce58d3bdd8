package errors

import (
	"net/http"
	"testing"

	"passmanager/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrInvalidCredentials.WrapMessage("credential check failed")

	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
	assert.Equal(t, "Invalid username or password", appErr.Message())
}

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrServicePasswordNotFound.WithDetails("github")

	assert.True(t, errors.Is(err, ErrServicePasswordNotFound))
	assert.False(t, errors.Is(err, ErrUserNotFound))
	assert.Equal(t, "github", err.Details())
	assert.Empty(t, ErrServicePasswordNotFound.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create entry")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to create entry", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, errors.Is(err, cause))
}

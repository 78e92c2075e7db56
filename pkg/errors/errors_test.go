// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code extraction

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/skysort/sceneryctl/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "pack_not_found",
			code:    errors.ErrPackNotFound,
			message: "no such package",
			wantStr: "[PACK_NOT_FOUND] no such package",
		},
		{
			name:    "invalid_input",
			code:    errors.ErrInvalidInput,
			message: "bad target index",
			wantStr: "[INVALID_INPUT] bad target index",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("connection refused")
	err := errors.Wrap(inner, errors.ErrBackendUnavailable, "backend not reachable")
	require.NotNil(t, err)

	assert.Equal(t, "[BACKEND_UNAVAILABLE] backend not reachable: connection refused", err.Error())
	assert.ErrorIs(t, err, inner)

	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "ignored"))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrDeleteRejected, "cannot delete %s", "KSEA_Scenery")

	assert.True(t, errors.IsErrorCode(err, errors.ErrDeleteRejected))
	assert.False(t, errors.IsErrorCode(err, errors.ErrApplyRejected))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrDeleteRejected))
}

func TestGetErrorCode(t *testing.T) {
	err := errors.New(errors.ErrApplyInFlight, "apply already running")
	assert.Equal(t, errors.ErrApplyInFlight, errors.GetErrorCode(err))

	// wrapping preserves the outermost code
	wrapped := errors.Wrap(err, errors.ErrBackendFailure, "apply failed")
	assert.Equal(t, errors.ErrBackendFailure, errors.GetErrorCode(wrapped))

	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestIsStructured(t *testing.T) {
	assert.True(t, errors.IsStructured(errors.New(errors.ErrDeleteRejected, "in use")))
	assert.False(t, errors.IsStructured(stderrors.New("opaque")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrPackNotFound, "missing").
		WithDetail("folderName", "Orbx_TrueEarth")

	assert.Equal(t, "Orbx_TrueEarth", err.Details["folderName"])
}

package common

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{"not found", NotFound("message %s not found", "abc"), KindNotFound},
		{"conflict", Conflict("reaction already set"), KindConflict},
		{"validation", Validation("chat_id"), KindValidation},
		{"internal", Internal(errors.New("boom"), "insert failed"), KindInternal},
		{"wrapped", fmt.Errorf("send: %w", NotFound("chat 42")), KindNotFound},
		{"plain", errors.New("plain"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause, "failed to load chat %d", 42)

	assert.Equal(t, "failed to load chat 42: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "chat_id, user_id", Validation("chat_id, user_id").Error())
}

func TestGRPCCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected codes.Code
	}{
		{"nil", nil, codes.OK},
		{"not found", NotFound("x"), codes.NotFound},
		{"conflict", Conflict("x"), codes.AlreadyExists},
		{"validation", Validation("x"), codes.InvalidArgument},
		{"internal", errors.New("x"), codes.Internal},
		{"status passthrough", status.Error(codes.Unavailable, "down"), codes.Unavailable},
		{"canceled", context.Canceled, codes.Canceled},
		{"deadline", fmt.Errorf("wait: %w", context.DeadlineExceeded), codes.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GRPCCode(tt.err))
		})
	}
}

func TestToStatus_HidesInternalDetails(t *testing.T) {
	err := ToStatus(Internal(errors.New("mongo: socket closed"), "insert message"))

	s, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, s.Code())
	assert.Equal(t, "internal error", s.Message())
}

func TestToStatus_KeepsDomainMessage(t *testing.T) {
	err := ToStatus(fmt.Errorf("send: %w", Validation("chat_id, not a member")))

	s, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, s.Code())
	assert.Equal(t, "chat_id, not a member", s.Message())
}

func TestFromStatus_RoundTrip(t *testing.T) {
	for _, original := range []error{NotFound("m1"), Conflict("dup"), Validation("bad")} {
		back := FromStatus(ToStatus(original))
		assert.Equal(t, KindOf(original), KindOf(back))
	}

	plain := errors.New("not a status")
	assert.Equal(t, plain, FromStatus(plain))
	assert.Nil(t, FromStatus(nil))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(codes.NotFound))
	assert.Equal(t, http.StatusConflict, HTTPStatus(codes.AlreadyExists))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(codes.InvalidArgument))
	assert.Equal(t, 499, HTTPStatus(codes.Canceled))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(codes.Code(99)))
}

func TestErrorCodeName(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", ErrorCodeName(codes.NotFound))
	assert.Equal(t, "INVALID_ARGUMENT", ErrorCodeName(codes.InvalidArgument))
	assert.Equal(t, "INTERNAL", ErrorCodeName(codes.Internal))
}

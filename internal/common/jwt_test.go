package common

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator_RoundTrip(t *testing.T) {
	v := NewTokenValidator("test-secret")

	token, err := v.GenerateToken(42, time.Hour)
	require.NoError(t, err)

	userID, err := v.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokenValidator_Validate(t *testing.T) {
	v := NewTokenValidator("test-secret")

	subjectOnly := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "17",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	subjectToken, err := subjectOnly.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	expired, err := v.GenerateToken(5, -time.Minute)
	require.NoError(t, err)

	otherSecret, err := NewTokenValidator("other").GenerateToken(5, time.Hour)
	require.NoError(t, err)

	badSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"})
	badSubjectToken, err := badSubject.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		expectedID  int64
		expectError bool
	}{
		{name: "subject claim only", token: subjectToken, expectedID: 17},
		{name: "expired token", token: expired, expectError: true},
		{name: "wrong secret", token: otherSecret, expectError: true},
		{name: "non numeric subject", token: badSubjectToken, expectError: true},
		{name: "garbage", token: "not-a-jwt", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := v.Validate(tt.token)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}

func TestTokenValidator_NoSecret(t *testing.T) {
	v := NewTokenValidator("")

	_, err := v.GenerateToken(1, time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)

	_, err = v.Validate("anything")
	assert.ErrorIs(t, err, ErrNoSecret)
}

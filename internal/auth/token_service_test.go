package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenService_MintValidateRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Mint("session-1", 7, "a@b.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "session-1", claims.ID)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "a@b.com", claims.Username)
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	token, err := NewTokenService("secret-a").Mint("session-1", 7, "a@b.com")
	assert.NoError(t, err)

	_, err = NewTokenService("secret-b").Validate(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret")
	_, err := svc.Validate("not-a-token")
	assert.Error(t, err)
}

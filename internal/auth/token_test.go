package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	manager := NewTokenManager("test-secret", 24*time.Hour)
	userID := uuid.New()

	token, err := manager.Issue(userID, "customer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotID, gotRole, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "customer", gotRole)
}

func TestTokenManager_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 24*time.Hour)
	verifier := NewTokenManager("secret-b", 24*time.Hour)

	token, err := issuer.Issue(uuid.New(), "admin")
	require.NoError(t, err)

	_, _, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestTokenManager_Verify_Expired(t *testing.T) {
	manager := NewTokenManager("test-secret", -1*time.Hour)

	token, err := manager.Issue(uuid.New(), "customer")
	require.NoError(t, err)

	_, _, err = manager.Verify(token)
	assert.Error(t, err)
}

func TestTokenManager_Verify_Garbage(t *testing.T) {
	manager := NewTokenManager("test-secret", 24*time.Hour)

	_, _, err := manager.Verify("not.a.token")
	assert.Error(t, err)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2boat")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2boat", hash)

	assert.True(t, CheckPassword(hash, "hunter2boat"))
	assert.False(t, CheckPassword(hash, "wrongpassword"))
}

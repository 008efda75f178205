package auth

import (
	"testing"
	"time"

	"github.com/Domenick1991/travelgo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       "11111111-1111-1111-1111-111111111111",
		Username: "alice",
		Email:    "alice@example.com",
	}
}

func TestTokenManager_IssueVerify_RoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", 24*time.Hour)
	user := testUser()

	raw, err := manager.Issue(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, raw)

	claims, err := manager.Verify(raw)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Email, claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenManager_Verify_Expired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Hour)

	raw, err := manager.Issue(testUser())
	assert.NoError(t, err)

	claims, err := manager.Verify(raw)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	raw, err := issuer.Issue(testUser())
	assert.NoError(t, err)

	claims, err := verifier.Verify(raw)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_Verify_Malformed(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	for _, raw := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		claims, err := manager.Verify(raw)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	}
}

func TestTokenManager_Verify_Tampered(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	raw, err := manager.Issue(testUser())
	assert.NoError(t, err)

	tampered := raw[:len(raw)-2] + "xx"
	claims, err := manager.Verify(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	issued := time.Now().Truncate(time.Second)
	svc := NewJWTService("test-secret")
	svc.now = func() time.Time { return issued }

	doctorID := uuid.New()
	token, claims, err := svc.GenerateAccessToken(doctorID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, doctorID.String(), parsed.Subject)
	assert.Equal(t, RoleDoctor, parsed.Role)
	assert.Equal(t, claims.ID, parsed.ID)
	assert.Equal(t, issued.Add(time.Hour).Unix(), parsed.ExpiresAt.Unix())
	assert.Equal(t, issued.Unix(), parsed.IssuedAt.Unix())
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret-a").GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret")
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := svc.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsUnsignedAlg(t *testing.T) {
	claims := &Claims{
		Role: RoleDoctor,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTService("test-secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "hunter23"))
	assert.False(t, CheckPassword("not-a-hash", "hunter22"))
}

func TestTokenStore_NilCacheNeverRevokes(t *testing.T) {
	store := NewTokenStore(nil)
	ctx := context.Background()

	assert.NoError(t, store.Revoke(ctx, "jti", time.Minute))
	assert.NoError(t, store.Revoke(ctx, "jti", -time.Minute))
	assert.False(t, store.IsRevoked(ctx, "jti"))
}

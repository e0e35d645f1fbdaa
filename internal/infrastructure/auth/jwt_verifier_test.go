package auth

import (
	"context"
	"testing"
	"time"

	"frota_checklist/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier("")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestJWTVerifier_RoundTrip(t *testing.T) {
	v, err := NewJWTVerifier("s3cret")
	require.NoError(t, err)

	token, err := v.Issue(entities.Account{ID: "u1", Email: "ana@frota.com", Role: entities.UserRoleAdmin}, time.Hour)
	require.NoError(t, err)

	acc, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u1", acc.ID)
	assert.Equal(t, "ana@frota.com", acc.Email)
	assert.Equal(t, entities.UserRoleAdmin, acc.Role)
	assert.WithinDuration(t, time.Now(), acc.IssuedAt, 2*time.Second)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	v, _ := NewJWTVerifier("s3cret")
	other, _ := NewJWTVerifier("other")

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := other.Issue(entities.Account{ID: "u1"}, time.Hour)
		_, err := v.Verify(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, _ := v.Issue(entities.Account{ID: "u1"}, -time.Hour)
		_, err := v.Verify(context.Background(), token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("no subject", func(t *testing.T) {
		token, _ := v.Issue(entities.Account{}, time.Hour)
		_, err := v.Verify(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("other algorithm", func(t *testing.T) {
		claims := Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}}
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("s3cret"))
		_, err := v.Verify(context.Background(), token)
		assert.Error(t, err)
	})
}

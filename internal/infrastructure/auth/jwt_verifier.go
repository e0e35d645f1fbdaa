// Package auth verifies the bearer tokens presented to the API.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingSecret = errors.New("jwt secret is empty")

// Claims are the token claims issued by the identity provider.
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256 tokens signed with a shared secret.
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

var _ interfaces.IAuthVerifier = (*JWTVerifier)(nil)

func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &JWTVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(30*time.Second),
		),
	}, nil
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (entities.Account, error) {
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return entities.Account{}, err
	}
	if claims.Subject == "" {
		return entities.Account{}, fmt.Errorf("token has no subject")
	}
	acc := entities.Account{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  entities.UserRole(claims.Role),
	}
	if claims.IssuedAt != nil {
		acc.IssuedAt = claims.IssuedAt.Time
	}
	return acc, nil
}

// Issue signs a token for account valid for ttl. Used by the CLI and tests.
func (v *JWTVerifier) Issue(account entities.Account, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: account.Email,
		Name:  account.Name,
		Role:  string(account.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// Package session resolves the caller identity from an HS256 bearer token
// issued by the identity provider.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"ordertracker/internal/entities"
)

type claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type Authenticator struct {
	secret []byte
	admins map[string]struct{}
}

func NewAuthenticator(secret string, adminEmails []string) *Authenticator {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		admins[normalizeEmail(email)] = struct{}{}
	}

	return &Authenticator{
		secret: []byte(secret),
		admins: admins,
	}
}

// Resolve validates tokenString. The email claim wins over sub; the admin
// flag is decided by the allowlist, never by the token.
func (a *Authenticator) Resolve(tokenString string) (entities.Session, error) {
	var c claims
	_, err := jwt.ParseWithClaims(tokenString, &c, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entities.Session{}, ErrTokenExpired
		}
		return entities.Session{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	email := normalizeEmail(c.Email)
	if email == "" && strings.Contains(c.Subject, "@") {
		email = normalizeEmail(c.Subject)
	}
	if email == "" {
		return entities.Session{}, ErrNoEmail
	}

	_, isAdmin := a.admins[email]

	return entities.Session{
		Email:   email,
		IsAdmin: isAdmin,
	}, nil
}

// Issue signs a token for email. Used by tooling and tests; production tokens
// come from the identity provider.
func (a *Authenticator) Issue(email string, ttl time.Duration, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

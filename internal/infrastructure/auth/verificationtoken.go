// Package auth issues and validates the signed token that proves an
// email completed OTP verification before a ticket is submitted.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers tampered, mis-signed, and expired tokens.
var ErrInvalidToken = errors.New("invalid verification token")

type VerificationClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// VerificationTokenService signs short-lived HS256 tokens binding a
// verified email address.
type VerificationTokenService struct {
	secret []byte
	expiry time.Duration
}

func NewVerificationTokenService(secret string, expiry time.Duration) *VerificationTokenService {
	return &VerificationTokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

func (s *VerificationTokenService) Generate(email string) (string, error) {
	now := time.Now().UTC()

	claims := &VerificationClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign verification token: %w", err)
	}

	return signed, nil
}

// Validate parses the token and returns the verified email.
func (s *VerificationTokenService) Validate(tokenString string) (string, error) {
	claims := &VerificationClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Email == "" {
		return "", ErrInvalidToken
	}

	return claims.Email, nil
}

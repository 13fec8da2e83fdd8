// Package auth mints and validates the bearer tokens returned by signup and
// login. Tokens are HS256 JWTs carrying the user identity and an expiration
// window applied at issuance time.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avinash6982/TripMakerWeb-BE/internal/common"
)

// Claims binds a user identity to the registered JWT claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Identity is the verified content of a token.
type Identity struct {
	UserID string
	Email  string
}

// Issuer signs and verifies tokens with a symmetric secret. The secret is
// supplied at process start; callers enforce its presence in production.
type Issuer struct {
	secretKey        []byte
	validityDuration time.Duration
}

func NewIssuer(secretKey []byte, validityDuration time.Duration) *Issuer {
	return &Issuer{secretKey: secretKey, validityDuration: validityDuration}
}

// Issue produces a signed, time-limited token for the given user.
func (i *Issuer) Issue(userID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validityDuration)),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString(i.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify validates signature and expiration and returns the carried identity.
// No claim is trusted before the signature check succeeds. Expired tokens
// fail with common.ErrTokenExpired, everything else with common.ErrInvalidToken.
func (i *Issuer) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return &Identity{UserID: claims.UserID, Email: claims.Email}, nil
}

// Package auth provides JWT helpers (HS256) and the session-token
// revocation set used by the authentication service.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/clipsync/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenKind discriminates access tokens from refresh tokens. The kind is
// baked into the signed payload so one kind can never pass for the other.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Claims is the signed payload of a session token: the subject user, the
// expiry carried in RegisteredClaims, and the token kind.
type Claims struct {
	jwt.RegisteredClaims
	UserID string    `json:"uid"`
	Kind   TokenKind `json:"kind"`
}

// GenerateToken signs a token of the given kind for userID, valid for
// validityDuration from now.
func GenerateToken(userID string, kind TokenKind, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
		Kind:   kind,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseClaims verifies the signature and expiry of tokenString and returns
// its claims. Expired tokens yield common.ErrTokenExpired; any other defect
// (bad signature, malformed payload, wrong algorithm) yields
// common.ErrInvalidToken.
func ParseClaims(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// Package services contains server-side business logic. This file implements
// AuthService: issuing, verifying, refreshing and revoking session tokens.
package services

import (
	"time"

	"github.com/dmitrijs2005/clipsync/internal/common"
	"github.com/dmitrijs2005/clipsync/internal/server/auth"
	"github.com/dmitrijs2005/clipsync/internal/server/config"
	"github.com/google/uuid"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService issues and verifies signed session claims. Tokens are
// stateless and self-verifying; the revocation set is the only mutable
// shared state, consulted on every verification.
type AuthService struct {
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	blacklist                    *auth.Blacklist
}

// NewAuthService constructs an AuthService using the server config and the
// shared revocation set.
func NewAuthService(cfg *config.Config, blacklist *auth.Blacklist) *AuthService {
	return &AuthService{
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		blacklist:                    blacklist,
	}
}

// IssuePair mints an access/refresh token pair for userID. It fails only on
// signing-key trouble, which is an internal error.
func (s *AuthService) IssuePair(userID uuid.UUID) (*TokenPair, error) {
	access, err := auth.GenerateToken(userID.String(), auth.TokenKindAccess, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := auth.GenerateToken(userID.String(), auth.TokenKindRefresh, s.jwtSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Verify checks the revocation set first, so a revoked token is rejected
// regardless of signature validity or expiry. It then validates signature
// and expiry and returns the embedded claims.
func (s *AuthService) Verify(token string) (*auth.Claims, error) {
	if s.blacklist.Contains(token) {
		return nil, common.ErrInvalidToken
	}
	return auth.ParseClaims(token, s.jwtSecret)
}

// VerifyAccess verifies token and requires it to be of the access kind,
// returning the subject user id.
func (s *AuthService) VerifyAccess(token string) (uuid.UUID, error) {
	claims, err := s.Verify(token)
	if err != nil {
		return uuid.Nil, err
	}
	if claims.Kind != auth.TokenKindAccess {
		return uuid.Nil, common.ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, common.ErrInvalidToken
	}
	return userID, nil
}

// Refresh verifies refreshToken, rejects it when its kind is not refresh,
// and issues a new access token for the same subject. The refresh token is
// neither rotated nor revoked.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := s.Verify(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.Kind != auth.TokenKindRefresh {
		return "", common.ErrInvalidToken
	}

	access, err := auth.GenerateToken(claims.UserID, auth.TokenKindAccess, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return access, nil
}

// Revoke adds the given tokens to the revocation set. Idempotent, never
// fails.
func (s *AuthService) Revoke(tokens ...string) {
	s.blacklist.Add(tokens...)
}

// Logout revokes both tokens of a session.
func (s *AuthService) Logout(accessToken, refreshToken string) {
	s.blacklist.Add(accessToken, refreshToken)
}

package services

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/clipsync/internal/common"
	"github.com/dmitrijs2005/clipsync/internal/server/auth"
	"github.com/dmitrijs2005/clipsync/internal/server/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(accessTTL, refreshTTL time.Duration) *AuthService {
	cfg := &config.Config{
		SecretKey:                    "test-secret",
		AccessTokenValidityDuration:  accessTTL,
		RefreshTokenValidityDuration: refreshTTL,
	}
	return NewAuthService(cfg, auth.NewBlacklist())
}

func TestAuthService_IssuePairAndVerify(t *testing.T) {
	s := newTestAuthService(time.Minute, time.Hour)
	userID := uuid.New()

	pair, err := s.IssuePair(userID)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := s.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, auth.TokenKindAccess, claims.Kind)

	claims, err = s.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, auth.TokenKindRefresh, claims.Kind)
}

func TestAuthService_VerifyAccess(t *testing.T) {
	s := newTestAuthService(time.Minute, time.Hour)
	userID := uuid.New()

	pair, err := s.IssuePair(userID)
	require.NoError(t, err)

	got, err := s.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = s.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestAuthService_VerifyExpired(t *testing.T) {
	s := newTestAuthService(-time.Minute, time.Hour)

	pair, err := s.IssuePair(uuid.New())
	require.NoError(t, err)

	_, err = s.Verify(pair.AccessToken)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestAuthService_VerifyGarbage(t *testing.T) {
	s := newTestAuthService(time.Minute, time.Hour)

	_, err := s.Verify("not-a-token")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
	assert.False(t, errors.Is(err, common.ErrTokenExpired))
}

func TestAuthService_RevokedTokenRejected(t *testing.T) {
	s := newTestAuthService(time.Minute, time.Hour)

	pair, err := s.IssuePair(uuid.New())
	require.NoError(t, err)

	// valid before revocation
	_, err = s.Verify(pair.AccessToken)
	require.NoError(t, err)

	s.Revoke(pair.AccessToken)

	_, err = s.Verify(pair.AccessToken)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	// the untouched refresh token still works
	_, err = s.Verify(pair.RefreshToken)
	assert.NoError(t, err)
}

func TestAuthService_Refresh(t *testing.T) {
	s := newTestAuthService(time.Minute, time.Hour)
	userID := uuid.New()

	pair, err := s.IssuePair(userID)
	require.NoError(t, err)

	access, err := s.Refresh(pair.RefreshToken)
	require.NoError(t, err)

	got, err := s.VerifyAccess(access)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestAuthService_RefreshRejectsAccessToken(t *testing.T) {
	s := newTestAuthService(time.Minute, time.Hour)

	pair, err := s.IssuePair(uuid.New())
	require.NoError(t, err)

	_, err = s.Refresh(pair.AccessToken)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestAuthService_RefreshRejectsRevoked(t *testing.T) {
	s := newTestAuthService(time.Minute, time.Hour)

	pair, err := s.IssuePair(uuid.New())
	require.NoError(t, err)

	s.Revoke(pair.RefreshToken)

	_, err = s.Refresh(pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestAuthService_Logout(t *testing.T) {
	s := newTestAuthService(time.Minute, time.Hour)

	pair, err := s.IssuePair(uuid.New())
	require.NoError(t, err)

	s.Logout(pair.AccessToken, pair.RefreshToken)

	_, err = s.Verify(pair.AccessToken)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
	_, err = s.Verify(pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

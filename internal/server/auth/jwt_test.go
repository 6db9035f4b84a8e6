package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/clipsync/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	userID := "user-123"

	tok, err := GenerateToken(userID, TokenKindAccess, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseClaims(tok, secret)
	if err != nil {
		t.Fatalf("ParseClaims error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, userID)
	}
	if claims.Kind != TokenKindAccess {
		t.Fatalf("kind mismatch: got %q want %q", claims.Kind, TokenKindAccess)
	}
}

func TestParseClaims_KindSurvivesRoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken("u1", TokenKindRefresh, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseClaims(tok, secret)
	if err != nil {
		t.Fatalf("ParseClaims error: %v", err)
	}
	if claims.Kind != TokenKindRefresh {
		t.Fatalf("expected refresh kind, got %q", claims.Kind)
	}
}

func TestParseClaims_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken("u1", TokenKindAccess, secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseClaims(tok, secret)
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
	if err != common.ErrTokenExpired {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestParseClaims_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u2", TokenKindAccess, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseClaims(tok, []byte("wrong-secret"))
	if err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestParseClaims_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := ParseClaims("not.a.jwt", []byte("k"))
	if err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

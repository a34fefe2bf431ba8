package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/foodprint-app/foodprint/internal/common"
)

func TestNewTokenIssuer_EmptySecret(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenIssuer(nil, time.Hour); err == nil {
		t.Fatalf("expected error for empty secret, got nil")
	}
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer([]byte("super-secret"), time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer error: %v", err)
	}

	userID := "user-123"

	tok, err := issuer.Issue(userID)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	gotUserID, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer([]byte("secret"), -1*time.Second)
	if err != nil {
		t.Fatalf("NewTokenIssuer error: %v", err)
	}

	tok, err := issuer.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := issuer.Verify(tok); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	right, _ := NewTokenIssuer([]byte("right-secret"), time.Hour)
	wrong, _ := NewTokenIssuer([]byte("wrong-secret"), time.Hour)

	tok, err := right.Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := wrong.Verify(tok); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	t.Parallel()

	issuer, _ := NewTokenIssuer([]byte("secret"), time.Hour)

	tok, err := issuer.Issue("u3")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// flip a character inside the payload segment
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token structure: %q", tok)
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := issuer.Verify(tampered); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for tampered payload, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	issuer, _ := NewTokenIssuer([]byte("k"), time.Hour)

	if _, err := issuer.Verify("not.a.jwt"); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for malformed token, got %v", err)
	}
}

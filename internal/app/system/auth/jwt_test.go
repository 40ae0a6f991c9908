package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smartwastehq/smartwaste/internal/app/system/auth"
)

const testSecret = "test-secret-0123456789"

func TestJWTVerifier_ValidToken(t *testing.T) {
	token, err := auth.IssueToken(testSecret, "smartwaste-test", "uid-1", time.Minute)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	v := auth.NewJWTVerifier(testSecret, "smartwaste-test")
	subject, err := v.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if subject != "uid-1" {
		t.Errorf("subject: got %q, want %q", subject, "uid-1")
	}
}

func TestJWTVerifier_ExpiredToken(t *testing.T) {
	token, err := auth.IssueToken(testSecret, "", "uid-1", -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	v := auth.NewJWTVerifier(testSecret, "")
	if _, err := v.Verify(context.Background(), token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTVerifier_WrongSecret(t *testing.T) {
	token, err := auth.IssueToken("other-secret", "", "uid-1", time.Minute)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	v := auth.NewJWTVerifier(testSecret, "")
	if _, err := v.Verify(context.Background(), token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for bad signature, got %v", err)
	}
}

func TestJWTVerifier_WrongIssuer(t *testing.T) {
	token, err := auth.IssueToken(testSecret, "someone-else", "uid-1", time.Minute)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	v := auth.NewJWTVerifier(testSecret, "smartwaste-test")
	if _, err := v.Verify(context.Background(), token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for issuer mismatch, got %v", err)
	}
}

func TestJWTVerifier_Garbage(t *testing.T) {
	v := auth.NewJWTVerifier(testSecret, "")
	if _, err := v.Verify(context.Background(), "not-a-jwt"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for garbage input, got %v", err)
	}
}

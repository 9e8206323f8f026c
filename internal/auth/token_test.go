package auth

import (
	"testing"
	"time"

	"github.com/leaselink/leaselink/internal/domain"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", time.Hour)
	identity := domain.Identity{ID: 42, Email: "manager@leaselink.com", Role: domain.RoleManager}

	token, expiresAt, err := tm.Issue(identity)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expected future expiry, got %v", expiresAt)
	}

	got, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != identity {
		t.Fatalf("identity mismatch: got %+v want %+v", got, identity)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	// NewTokenManager clamps non-positive TTLs, so build the manager
	// directly to issue an already-expired token.
	tm := &TokenManager{secret: []byte("secret"), ttl: -1 * time.Second}

	token, _, err := tm.Issue(domain.Identity{ID: 1, Email: "a@b.c", Role: domain.RoleStaff})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := tm.Verify(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager("right-secret", time.Hour)
	verifier := NewTokenManager("wrong-secret", time.Hour)

	token, _, err := issuer.Issue(domain.Identity{ID: 7, Email: "x@y.z", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := verifier.Verify(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("k", time.Hour)
	if _, err := tm.Verify("not.a.jwt"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
	if _, err := tm.Verify(""); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}

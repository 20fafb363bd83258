package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ametova/valentine-api/internal/auth/service"
	"github.com/ametova/valentine-api/internal/common/clock"
)

const testSecret = "test-secret-key-must-be-long-enough"

func newIssuer() *service.TokenIssuer {
	mockClock := clock.NewMockClock(time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC))
	return service.NewTokenIssuer(testSecret, mockClock)
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := newIssuer()

	token, err := issuer.Issue("admin")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token == "" {
		t.Fatal("expected token to be set")
	}

	user, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("expected token to verify, got %v", err)
	}
	if user != "admin" {
		t.Errorf("expected user admin, got %s", user)
	}
}

func TestTokenIssuer_Verify_Garbage(t *testing.T) {
	issuer := newIssuer()

	for _, token := range []string{"", "not-a-token", "a.b.c", "...."} {
		if _, err := issuer.Verify(token); err == nil {
			t.Errorf("expected error for token %q", token)
		}
	}
}

func TestTokenIssuer_Verify_WrongSecret(t *testing.T) {
	issuer := newIssuer()
	other := service.NewTokenIssuer("a-completely-different-secret-value", clock.NewRealClock())

	token, err := other.Issue("admin")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := issuer.Verify(token); err == nil {
		t.Error("expected token signed with another secret to fail")
	}
}

func TestTokenIssuer_Verify_Tampered(t *testing.T) {
	issuer := newIssuer()

	token, err := issuer.Issue("admin")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Flipping the top bit of a base64url group always changes the decoded
	// bytes, even in a segment's final character where low bits are unused.
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	for i := 0; i < len(token); i++ {
		idx := strings.IndexByte(alphabet, token[i])
		if idx < 0 {
			continue
		}
		tampered := token[:i] + string(alphabet[(idx+32)%64]) + token[i+1:]
		if user, err := issuer.Verify(tampered); err == nil {
			t.Errorf("expected tampered token (pos %d) to fail, got user %q", i, user)
		}
	}
}

func TestTokenIssuer_Verify_MissingUserClaim(t *testing.T) {
	issuer := newIssuer()

	// A token for the empty user must never resolve to a principal.
	token, err := issuer.Issue("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := issuer.Verify(token); err == nil {
		t.Error("expected token with empty user claim to fail")
	}

	if !strings.Contains(token, ".") {
		t.Errorf("expected a structured token, got %q", token)
	}
}

package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ametova/valentine-api/internal/auth/session"
	"github.com/ametova/valentine-api/internal/common/clock"
	"github.com/ametova/valentine-api/internal/common/constants"
	commoncrypto "github.com/ametova/valentine-api/internal/common/crypto"
)

const testSecret = "test-secret-key-must-be-long-enough"

func newManager() *session.Manager {
	mockClock := clock.NewMockClock(time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC))
	return session.NewManager(testSecret, commoncrypto.NewUUIDGenerator(), mockClock, http.SameSiteLaxMode, false)
}

func issuedCookie(t *testing.T, m *session.Manager, user string) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	if err := m.Issue(rec, user); err != nil {
		t.Fatalf("failed to issue session: %v", err)
	}

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}

	t.Fatal("session cookie not set")
	return nil
}

func TestManager_IssueAndResolve(t *testing.T) {
	m := newManager()
	cookie := issuedCookie(t, m, "admin")

	if !cookie.HttpOnly {
		t.Error("expected session cookie to be http-only")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("expected SameSite lax, got %v", cookie.SameSite)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(cookie)

	user, ok := m.Resolve(req)
	if !ok {
		t.Fatal("expected session to resolve")
	}
	if user != "admin" {
		t.Errorf("expected user admin, got %s", user)
	}
}

func TestManager_Resolve_NoCookie(t *testing.T) {
	m := newManager()

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	if _, ok := m.Resolve(req); ok {
		t.Error("expected no principal without a cookie")
	}
}

func TestManager_Resolve_TamperedCookie(t *testing.T) {
	m := newManager()
	cookie := issuedCookie(t, m, "admin")

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(&http.Cookie{
		Name:  constants.SessionCookieName,
		Value: cookie.Value[:len(cookie.Value)-2] + "xx",
	})

	if _, ok := m.Resolve(req); ok {
		t.Error("expected tampered cookie to resolve to no principal")
	}
}

func TestManager_Resolve_ForeignSecret(t *testing.T) {
	m := newManager()
	other := session.NewManager("another-secret-entirely-different", commoncrypto.NewUUIDGenerator(), clock.NewRealClock(), http.SameSiteLaxMode, false)
	cookie := issuedCookie(t, other, "admin")

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(cookie)

	if _, ok := m.Resolve(req); ok {
		t.Error("expected cookie signed with another secret to fail")
	}
}

func TestManager_Clear(t *testing.T) {
	m := newManager()

	rec := httptest.NewRecorder()
	m.Clear(rec)

	var cleared *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			cleared = cookie
		}
	}

	if cleared == nil {
		t.Fatal("expected clearing cookie to be set")
	}
	if cleared.Value != "" {
		t.Errorf("expected empty cookie value, got %q", cleared.Value)
	}
	if cleared.MaxAge != -1 {
		t.Errorf("expected MaxAge -1, got %d", cleared.MaxAge)
	}
}

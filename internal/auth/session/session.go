package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ametova/valentine-api/internal/common/clock"
	"github.com/ametova/valentine-api/internal/common/constants"
	commoncrypto "github.com/ametova/valentine-api/internal/common/crypto"
)

// Manager backs the cookie session channel. The cookie value is a signed
// claim set carrying the principal and a per-session id; nothing is stored
// server-side.
type Manager struct {
	secret      []byte
	idGenerator commoncrypto.IDGenerator
	clock       clock.Clock
	sameSite    http.SameSite
	secure      bool
}

func NewManager(
	secret string,
	idGenerator commoncrypto.IDGenerator,
	clock clock.Clock,
	sameSite http.SameSite,
	secure bool,
) *Manager {
	return &Manager{
		secret:      []byte(secret),
		idGenerator: idGenerator,
		clock:       clock,
		sameSite:    sameSite,
		secure:      secure,
	}
}

func (m *Manager) Issue(w http.ResponseWriter, user string) error {
	sid, err := m.idGenerator.NewID()
	if err != nil {
		return err
	}

	claims := jwt.MapClaims{
		"u":   user,
		"sid": sid,
		"iat": m.clock.Now().Unix(),
	}

	value, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: m.sameSite,
		Secure:   m.secure,
	})

	return nil
}

// Resolve reads the session cookie and verifies its signature. A missing,
// malformed, or forged cookie resolves to no principal.
func (m *Manager) Resolve(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	parsed, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", false
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	user, _ := mapClaims["u"].(string)
	if user == "" {
		return "", false
	}

	return user, true
}

// Clear expires the session cookie. Safe to call with no session present.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: m.sameSite,
		Secure:   m.secure,
	})
}

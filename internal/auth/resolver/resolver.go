package resolver

import (
	"net/http"
	"strings"

	"github.com/ametova/valentine-api/internal/auth/service"
	"github.com/ametova/valentine-api/internal/auth/session"
)

// CredentialResolver extracts a principal from a request. Resolvers are
// tried in order; the first success wins.
type CredentialResolver interface {
	Resolve(r *http.Request) (string, bool)
}

func ResolvePrincipal(r *http.Request, resolvers []CredentialResolver) (string, bool) {
	for _, res := range resolvers {
		if user, ok := res.Resolve(r); ok {
			return user, true
		}
	}
	return "", false
}

type SessionResolver struct {
	sessions *session.Manager
}

func NewSessionResolver(sessions *session.Manager) *SessionResolver {
	return &SessionResolver{sessions: sessions}
}

func (sr *SessionResolver) Resolve(r *http.Request) (string, bool) {
	return sr.sessions.Resolve(r)
}

type BearerResolver struct {
	tokens *service.TokenIssuer
}

func NewBearerResolver(tokens *service.TokenIssuer) *BearerResolver {
	return &BearerResolver{tokens: tokens}
}

func (br *BearerResolver) Resolve(r *http.Request) (string, bool) {
	raw := r.Header.Get("Authorization")
	if raw == "" || !strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return "", false
	}

	tokenString := strings.TrimSpace(raw[len("bearer "):])
	if tokenString == "" {
		return "", false
	}

	user, err := br.tokens.Verify(tokenString)
	if err != nil {
		return "", false
	}

	return user, true
}

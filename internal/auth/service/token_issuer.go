package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ametova/valentine-api/internal/common/clock"
)

// TokenIssuer creates and verifies stateless bearer tokens. Tokens carry
// no expiry and cannot be revoked; logout only clears the cookie session.
type TokenIssuer struct {
	secret []byte
	clock  clock.Clock
}

func NewTokenIssuer(secret string, clock clock.Clock) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		clock:  clock,
	}
}

func (ti *TokenIssuer) Issue(user string) (string, error) {
	claims := jwt.MapClaims{
		"u":   user,
		"iat": ti.clock.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(ti.secret)
}

// Verify fails closed: any signature, method, or claim problem yields an
// error and no principal.
func (ti *TokenIssuer) Verify(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return ti.secret, nil
	})
	if err != nil || !parsed.Valid {
		if err == nil {
			err = errors.New("token is not valid")
		}
		return "", err
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims type")
	}

	user, _ := mapClaims["u"].(string)
	if user == "" {
		return "", errors.New("missing user claim")
	}

	return user, nil
}

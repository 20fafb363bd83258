package service

import (
	"context"

	commonerrors "github.com/ametova/valentine-api/internal/common/errors"
	"github.com/ametova/valentine-api/internal/common/logger"
	"github.com/ametova/valentine-api/internal/observability/metrics"
)

type AuthService struct {
	verifier *CredentialVerifier
	tokens   *TokenIssuer
	log      *logger.Logger
}

func NewAuthService(verifier *CredentialVerifier, tokens *TokenIssuer, log *logger.Logger) *AuthService {
	return &AuthService{
		verifier: verifier,
		tokens:   tokens,
		log:      log,
	}
}

type LoginResult struct {
	User  string
	Token string
}

func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	if !s.verifier.Verify(username, password) {
		s.log.WithFields(ctx, logger.Fields{
			"username": username,
			"action":   "login_failed",
		}).Warn("login failed: invalid credentials")
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return LoginResult{}, commonerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(username)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": username,
			"action":   "login_token_issue_failed",
		}).Errorf("login failed: token issue error: %v", err)
		return LoginResult{}, commonerrors.ErrInternalError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"username": username,
		"action":   "login_success",
	}).Info("login success")
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssued.Inc()

	return LoginResult{User: username, Token: token}, nil
}

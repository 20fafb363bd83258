package service

import (
	"context"
	"strings"

	commonerrors "github.com/ametova/valentine-api/internal/common/errors"
	"github.com/ametova/valentine-api/internal/common/logger"
	"github.com/ametova/valentine-api/internal/observability/metrics"
	"github.com/ametova/valentine-api/internal/response/repository"
)

type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

func NewService(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create trims the message, rejects blank input, and persists the result
// stamped with the authenticated principal.
func (s *Service) Create(ctx context.Context, message, user string) (string, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		s.log.WithFields(ctx, logger.Fields{
			"user":   user,
			"action": "response_rejected_empty",
		}).Warn("response rejected: empty message")
		return "", commonerrors.ErrEmptyMessage
	}

	id, err := s.repo.Create(ctx, trimmed, user)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user":   user,
			"action": "response_create_failed",
		}).Errorf("response create failed: %v", err)
		return "", err
	}

	s.log.WithFields(ctx, logger.Fields{
		"user":        user,
		"response_id": id,
		"action":      "response_created",
	}).Info("response created")
	metrics.ResponsesCreated.Inc()

	return id, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"cryptoshield/internal/dto"
	"cryptoshield/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrMissingClientName = errors.New("client_name is required")

// StatusStore persists status checks.
type StatusStore interface {
	Create(ctx context.Context, check *models.StatusCheck) error
	List(ctx context.Context, limit int) ([]*models.StatusCheck, error)
}

type StatusService struct {
	store     StatusStore
	listLimit int
	logger    *zap.Logger
}

func NewStatusService(store StatusStore, listLimit int, logger *zap.Logger) *StatusService {
	return &StatusService{
		store:     store,
		listLimit: listLimit,
		logger:    logger,
	}
}

func (s *StatusService) Create(ctx context.Context, req *dto.CreateStatusCheckRequest) (*dto.StatusCheckResponse, error) {
	if req.ClientName == "" {
		return nil, ErrMissingClientName
	}

	check := &models.StatusCheck{
		ID:         uuid.New(),
		ClientName: req.ClientName,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.store.Create(ctx, check); err != nil {
		return nil, err
	}

	return toStatusResponse(check), nil
}

func (s *StatusService) List(ctx context.Context) ([]*dto.StatusCheckResponse, error) {
	checks, err := s.store.List(ctx, s.listLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.StatusCheckResponse, 0, len(checks))
	for _, check := range checks {
		responses = append(responses, toStatusResponse(check))
	}

	return responses, nil
}

func toStatusResponse(check *models.StatusCheck) *dto.StatusCheckResponse {
	return &dto.StatusCheckResponse{
		ID:         check.ID.String(),
		ClientName: check.ClientName,
		Timestamp:  check.CreatedAt.Format(time.RFC3339),
	}
}

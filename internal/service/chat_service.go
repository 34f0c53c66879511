package service

import (
	"context"
	"errors"
	"time"

	"cryptoshield/internal/advisor"
	"cryptoshield/internal/dto"
	"cryptoshield/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrMissingIdentity is returned when the caller's name, email or phone
// is absent; surfaced before classification is attempted.
var ErrMissingIdentity = errors.New("user name, email and phone are required")

// ChatAuditStore persists the audit trail around one classification.
type ChatAuditStore interface {
	CreateMessage(ctx context.Context, msg *models.ChatMessage) error
	CreateResponse(ctx context.Context, resp *models.AdvisorResponse) error
}

type ChatService struct {
	audit  ChatAuditStore
	logger *zap.Logger
}

func NewChatService(audit ChatAuditStore, logger *zap.Logger) *ChatService {
	return &ChatService{
		audit:  audit,
		logger: logger,
	}
}

// Respond classifies the message and returns the advisory response.
// The inbound message is persisted before classification and the
// outbound response after it; a failed write on either side is logged
// and does not block the reply, since the classification is already
// computed and the audit trail is best-effort.
func (s *ChatService) Respond(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if req.UserInfo.Name == "" || req.UserInfo.Email == "" || req.UserInfo.Phone == "" {
		return nil, ErrMissingIdentity
	}

	msg := &models.ChatMessage{
		ID:        uuid.New(),
		UserName:  req.UserInfo.Name,
		UserEmail: req.UserInfo.Email,
		UserPhone: req.UserInfo.Phone,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.audit.CreateMessage(ctx, msg); err != nil {
		s.logger.Error("Failed to persist chat message",
			zap.String("message_id", msg.ID.String()),
			zap.Error(err),
		)
	}

	response, recommendations := advisor.Classify(req.Message, req.UserInfo.Name)

	record := &models.AdvisorResponse{
		ID:              uuid.New(),
		MessageID:       msg.ID,
		Response:        response,
		Recommendations: recommendations,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.audit.CreateResponse(ctx, record); err != nil {
		s.logger.Error("Failed to persist advisor response",
			zap.String("message_id", msg.ID.String()),
			zap.Error(err),
		)
	}

	return &dto.ChatResponse{
		Response:        response,
		Recommendations: recommendations,
	}, nil
}

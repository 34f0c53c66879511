package repository

import (
	"context"

	"cryptoshield/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ChatRepository stores the two halves of a chat audit pair. Records
// are write-only: nothing in the service reads them back.
type ChatRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewChatRepository(db *pgxpool.Pool, logger *zap.Logger) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ChatRepository) CreateMessage(ctx context.Context, msg *models.ChatMessage) error {
	query := squirrel.Insert("chat_messages").
		Columns("id", "user_name", "user_email", "user_phone", "message", "created_at").
		Values(msg.ID, msg.UserName, msg.UserEmail, msg.UserPhone, msg.Message, msg.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ChatRepository) CreateResponse(ctx context.Context, resp *models.AdvisorResponse) error {
	query := squirrel.Insert("advisor_responses").
		Columns("id", "message_id", "response", "recommendations", "created_at").
		Values(resp.ID, resp.MessageID, resp.Response, resp.Recommendations, resp.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

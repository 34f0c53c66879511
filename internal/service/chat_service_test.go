package service

import (
	"context"
	"errors"
	"testing"

	"cryptoshield/internal/dto"
	"cryptoshield/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChatAuditStore struct {
	messages      []*models.ChatMessage
	responses     []*models.AdvisorResponse
	messageError  error
	responseError error
}

func (f *fakeChatAuditStore) CreateMessage(ctx context.Context, msg *models.ChatMessage) error {
	if f.messageError != nil {
		return f.messageError
	}
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeChatAuditStore) CreateResponse(ctx context.Context, resp *models.AdvisorResponse) error {
	if f.responseError != nil {
		return f.responseError
	}
	f.responses = append(f.responses, resp)
	return nil
}

func chatRequest(message string) *dto.ChatRequest {
	return &dto.ChatRequest{
		Message: message,
		UserInfo: dto.UserInfo{
			Name:  "Sam",
			Email: "sam@example.com",
			Phone: "+4917612345678",
		},
	}
}

func TestChatService_Respond(t *testing.T) {
	store := &fakeChatAuditStore{}
	svc := NewChatService(store, zap.NewNop())

	resp, err := svc.Respond(context.Background(), chatRequest("I use a Ledger"))
	require.NoError(t, err)

	assert.Contains(t, resp.Response, "Sam")
	require.NotEmpty(t, resp.Recommendations)
	assert.Equal(t, "Hardware wallet usage = 40% premium reduction", resp.Recommendations[0])
}

func TestChatService_Respond_AuditTrail(t *testing.T) {
	store := &fakeChatAuditStore{}
	svc := NewChatService(store, zap.NewNop())

	resp, err := svc.Respond(context.Background(), chatRequest("what about 2FA?"))
	require.NoError(t, err)

	require.Len(t, store.messages, 1)
	require.Len(t, store.responses, 1)

	msg := store.messages[0]
	assert.Equal(t, "what about 2FA?", msg.Message)
	assert.Equal(t, "Sam", msg.UserName)
	assert.Equal(t, "sam@example.com", msg.UserEmail)
	assert.NotEqual(t, uuid.Nil, msg.ID)

	record := store.responses[0]
	assert.Equal(t, msg.ID, record.MessageID, "response must link back to its message")
	assert.Equal(t, resp.Response, record.Response)
	assert.Equal(t, resp.Recommendations, record.Recommendations)
}

func TestChatService_Respond_PersistenceFailureDoesNotBlock(t *testing.T) {
	store := &fakeChatAuditStore{
		messageError:  errors.New("connection refused"),
		responseError: errors.New("connection refused"),
	}
	svc := NewChatService(store, zap.NewNop())

	resp, err := svc.Respond(context.Background(), chatRequest("how do I lower my premium"))
	require.NoError(t, err)
	assert.Contains(t, resp.Response, "maximize your premium reductions")
}

func TestChatService_Respond_MissingIdentity(t *testing.T) {
	store := &fakeChatAuditStore{}
	svc := NewChatService(store, zap.NewNop())

	tests := []struct {
		name string
		info dto.UserInfo
	}{
		{"missing name", dto.UserInfo{Email: "a@b.c", Phone: "1"}},
		{"missing email", dto.UserInfo{Name: "Sam", Phone: "1"}},
		{"missing phone", dto.UserInfo{Name: "Sam", Email: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Respond(context.Background(), &dto.ChatRequest{Message: "hi", UserInfo: tt.info})
			assert.ErrorIs(t, err, ErrMissingIdentity)
		})
	}

	// Nothing may reach the audit trail when validation fails.
	assert.Empty(t, store.messages)
	assert.Empty(t, store.responses)
}

func TestChatService_Respond_EmptyMessageAllowed(t *testing.T) {
	store := &fakeChatAuditStore{}
	svc := NewChatService(store, zap.NewNop())

	resp, err := svc.Respond(context.Background(), chatRequest(""))
	require.NoError(t, err)
	assert.Contains(t, resp.Response, "Please ask me any questions")
	require.Len(t, store.messages, 1)
	assert.Equal(t, "", store.messages[0].Message)
}

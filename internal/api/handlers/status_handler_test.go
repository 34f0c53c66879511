package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"cryptoshield/internal/dto"
	"cryptoshield/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubStatusService struct {
	created *dto.StatusCheckResponse
	list    []*dto.StatusCheckResponse
	err     error
}

func (s *stubStatusService) Create(ctx context.Context, req *dto.CreateStatusCheckRequest) (*dto.StatusCheckResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubStatusService) List(ctx context.Context) ([]*dto.StatusCheckResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func statusTestApp(svc StatusService) *fiber.App {
	handler := NewStatusHandler(svc, zap.NewNop())
	app := fiber.New()
	app.Post("/api/status", handler.Create)
	app.Get("/api/status", handler.List)
	return app
}

func TestStatusHandler_Create(t *testing.T) {
	svc := &stubStatusService{
		created: &dto.StatusCheckResponse{
			ID:         "0c5a9f5e-7df5-43a7-9bb2-95a314a4b3f0",
			ClientName: "monitor-1",
			Timestamp:  "2025-01-02T15:04:05Z",
		},
	}
	app := statusTestApp(svc)

	req := httptest.NewRequest("POST", "/api/status", strings.NewReader(`{"client_name":"monitor-1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.StatusCheckResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "monitor-1", body.ClientName)
	assert.Equal(t, svc.created.ID, body.ID)
}

func TestStatusHandler_Create_InvalidBody(t *testing.T) {
	app := statusTestApp(&stubStatusService{})

	req := httptest.NewRequest("POST", "/api/status", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStatusHandler_Create_MissingClientName(t *testing.T) {
	app := statusTestApp(&stubStatusService{err: service.ErrMissingClientName})

	req := httptest.NewRequest("POST", "/api/status", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStatusHandler_Create_StoreFailure(t *testing.T) {
	app := statusTestApp(&stubStatusService{err: errors.New("connection refused")})

	req := httptest.NewRequest("POST", "/api/status", strings.NewReader(`{"client_name":"monitor-1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestStatusHandler_List(t *testing.T) {
	svc := &stubStatusService{
		list: []*dto.StatusCheckResponse{
			{ID: "a", ClientName: "monitor-1", Timestamp: "2025-01-02T15:04:05Z"},
			{ID: "b", ClientName: "monitor-2", Timestamp: "2025-01-02T15:05:05Z"},
		},
	}
	app := statusTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/status", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body []dto.StatusCheckResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body, 2)
	assert.Equal(t, "monitor-2", body[1].ClientName)
}

func TestStatusHandler_List_Failure(t *testing.T) {
	app := statusTestApp(&stubStatusService{err: errors.New("connection refused")})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/status", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

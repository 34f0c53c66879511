package handlers

import (
	"context"
	"errors"

	"cryptoshield/internal/dto"
	"cryptoshield/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatusService is the slice of the status service the handler needs.
type StatusService interface {
	Create(ctx context.Context, req *dto.CreateStatusCheckRequest) (*dto.StatusCheckResponse, error)
	List(ctx context.Context) ([]*dto.StatusCheckResponse, error)
}

type StatusHandler struct {
	statusService StatusService
	logger        *zap.Logger
}

func NewStatusHandler(statusService StatusService, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
		logger:        logger,
	}
}

// Create godoc
// @Summary Record a status check
// @Description Persists a status check for the named client and returns the stored record
// @Tags status
// @Accept json
// @Produce json
// @Param request body dto.CreateStatusCheckRequest true "Status check request"
// @Success 200 {object} dto.StatusCheckResponse
// @Failure 400 {object} map[string]string
// @Router /api/status [post]
func (h *StatusHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStatusCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.statusService.Create(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrMissingClientName) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to create status check", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create status check",
		})
	}

	return c.JSON(resp)
}

// List godoc
// @Summary List status checks
// @Description Returns up to the configured limit of persisted status checks
// @Tags status
// @Produce json
// @Success 200 {array} dto.StatusCheckResponse
// @Failure 500 {object} map[string]string
// @Router /api/status [get]
func (h *StatusHandler) List(c *fiber.Ctx) error {
	checks, err := h.statusService.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list status checks", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list status checks",
		})
	}

	return c.JSON(checks)
}

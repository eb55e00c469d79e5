package compare

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sheetmerge/core/logger"
	"sheetmerge/core/reconcile"
	"sheetmerge/core/table"
)

// Handler handles HTTP requests for reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the compare routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/compare")
	group.Post("/", h.HandleCompare)
	group.Post("/objects", h.HandleCompareObjects)
}

// HandleCompare reconciles two inline tables.
// @Summary Reconcile two tables
// @Description Classify rows of two inline tables by composite key and return the unified result plus left-only, right-only and duplicate buckets.
// @Tags compare
// @Accept json
// @Produce json
// @Param request body compare.Request true "Tables, key columns and options"
// @Success 200 {object} compare.Response "Reconciliation result"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /compare [post]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	resp, err := h.service.Compare(&req)
	if err != nil {
		l.Error("Compare failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(resp)
}

// HandleCompareObjects reconciles two stored datasets.
// @Summary Reconcile stored datasets
// @Description Reconcile two datasets loaded from bucket objects or database tables and write the result workbook back to the bucket.
// @Tags compare
// @Accept json
// @Produce json
// @Param request body compare.ObjectsRequest true "Input sources, key columns and output object"
// @Success 200 {object} compare.ObjectsResponse "Reconciliation summary"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /compare/objects [post]
func (h *Handler) HandleCompareObjects(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ObjectsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	resp, err := h.service.CompareObjects(c.Context(), &req)
	if err != nil {
		l.Error("Compare objects failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(resp)
}

// statusFor maps caller mistakes to 400 and everything else to 500.
func statusFor(err error) int {
	if errors.Is(err, table.ErrNoKeyColumns) ||
		errors.Is(err, table.ErrUnknownColumn) ||
		errors.Is(err, reconcile.ErrDuplicateLabel) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

package split

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sheetmerge/core/logger"
	"sheetmerge/core/table"
)

// Handler handles HTTP requests for partitioning.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the split routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/split")
	group.Post("/", h.HandleSplit)
	group.Post("/objects", h.HandleSplitObjects)
}

// HandleSplit partitions an inline table.
// @Summary Partition a table by key
// @Description Group the rows of an inline table by composite key and return one partition per distinct key value, in first-seen order.
// @Tags split
// @Accept json
// @Produce json
// @Param request body split.Request true "Table, key columns and options"
// @Success 200 {object} split.Response "Partitions"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /split [post]
func (h *Handler) HandleSplit(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	resp, err := h.service.Split(&req)
	if err != nil {
		l.Error("Split failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(resp)
}

// HandleSplitObjects partitions a stored workbook.
// @Summary Partition a stored workbook
// @Description Partition an xlsx object from the bucket by composite key and write a zip archive of one workbook per partition back to the bucket.
// @Tags split
// @Accept json
// @Produce json
// @Param request body split.ObjectsRequest true "Input object, key columns and output object"
// @Success 200 {object} split.ObjectsResponse "Partition summary"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /split/objects [post]
func (h *Handler) HandleSplitObjects(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ObjectsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	resp, err := h.service.SplitObjects(c.Context(), &req)
	if err != nil {
		l.Error("Split objects failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(resp)
}

// statusFor maps caller mistakes to 400 and everything else to 500.
func statusFor(err error) int {
	if errors.Is(err, table.ErrNoKeyColumns) || errors.Is(err, table.ErrUnknownColumn) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

package dumps

import (
	"errors"

	"deviceinfocompare/core/logger"
	"deviceinfocompare/core/utils"
	"deviceinfocompare/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for dumps and comparisons.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateDumpRequest is the body of POST /dumps.
type CreateDumpRequest struct {
	Description string `json:"description"`
}

// CreateDumpResponse is returned after a dump was stored.
type CreateDumpResponse struct {
	Dump        *Dump `json:"dump"`
	DeviceCount int   `json:"device_count"`
}

// RegisterRoutes registers the dump routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/dumps")
	group.Get("/", h.HandleListDumps)
	group.Post("/", h.HandleCreateDump)
	group.Delete("/", h.HandleClearDumps)
	group.Get("/:id/devices", h.HandleGetDevices)
	group.Delete("/:id", h.HandleRemoveDump)

	app.Get("/compare", h.HandleCompare)
}

// HandleListDumps returns every stored dump.
// @Summary List Dumps
// @Description List stored dumps with their device counts, oldest first.
// @Tags dumps
// @Produce json
// @Success 200 {array} DumpSummary "Dumps"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /dumps [get]
func (h *Handler) HandleListDumps(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	summaries, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Listing dumps failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(summaries)
}

// HandleCreateDump captures the live device list into a new dump.
// @Summary Create Dump
// @Description Capture the devices currently present and store them as a new dump.
// @Tags dumps
// @Accept json
// @Produce json
// @Param request body CreateDumpRequest false "Dump description"
// @Success 201 {object} CreateDumpResponse "Created dump"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 501 {object} map[string]string "Enumeration not supported"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /dumps [post]
func (h *Handler) HandleCreateDump(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CreateDumpRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	dump, count, err := h.service.DumpDevices(c.Context(), req.Description)
	if err != nil {
		l.Error("Dump creation failed", zap.Error(err))
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(CreateDumpResponse{Dump: dump, DeviceCount: count})
}

// HandleGetDevices returns the devices of a dump. Id 0 is the live list.
// @Summary Get Dump Devices
// @Description Get the devices stored in a dump, or the live device list for id 0.
// @Tags dumps
// @Produce json
// @Param id path int true "Dump ID"
// @Success 200 {array} reconcile.DeviceRecord "Devices"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /dumps/{id}/devices [get]
func (h *Handler) HandleGetDevices(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	devices, err := h.service.Snapshot(c.Context(), id)
	if err != nil {
		l.Error("Loading devices failed", zap.Uint("dump_id", id), zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(devices)
}

// HandleRemoveDump deletes a stored dump.
// @Summary Remove Dump
// @Description Delete a stored dump and its devices. Dump 0 cannot be removed.
// @Tags dumps
// @Produce json
// @Param id path int true "Dump ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /dumps/{id} [delete]
func (h *Handler) HandleRemoveDump(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.Remove(c.Context(), id); err != nil {
		l.Error("Dump removal failed", zap.Uint("dump_id", id), zap.Error(err))
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleClearDumps deletes every stored dump.
// @Summary Clear Dumps
// @Description Delete all stored dumps and devices.
// @Tags dumps
// @Produce json
// @Success 200 {object} map[string]int64 "Removed count"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /dumps [delete]
func (h *Handler) HandleClearDumps(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	removed, err := h.service.Clear(c.Context())
	if err != nil {
		l.Error("Clearing dumps failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"removed": removed})
}

// HandleCompare compares two snapshots.
// @Summary Compare Snapshots
// @Description Compare a current snapshot (default: live list) against a previous dump (default: most recent).
// @Tags compare
// @Produce json
// @Param current query int false "Current dump ID, 0 for the live list"
// @Param previous query int false "Previous dump ID, defaults to the most recent dump"
// @Success 200 {object} Comparison "Comparison"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /compare [get]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	currentID := CurrentDumpID
	if raw := c.Query("current"); raw != "" {
		id, err := utils.ParseID(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		currentID = id
	}

	var previousID *uint
	if raw := c.Query("previous"); raw != "" {
		id, err := utils.ParseID(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		previousID = &id
	}

	comparison, err := h.service.Compare(c.Context(), currentID, previousID)
	if err != nil {
		l.Error("Comparison failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(comparison)
}

// respondError maps service errors to HTTP status codes.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrDumpNotFound), errors.Is(err, ErrNoDumps):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrAbstractDump):
		status = fiber.StatusBadRequest
	case errors.Is(err, inventory.ErrUnsupportedPlatform):
		status = fiber.StatusNotImplemented
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

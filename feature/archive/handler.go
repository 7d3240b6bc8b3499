package archive

import (
	"errors"

	"deviceinfocompare/core/logger"
	"deviceinfocompare/core/utils"
	"deviceinfocompare/feature/dumps"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the dump archive.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the archive routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/archive")
	group.Get("/", h.HandleList)
	group.Post("/:id", h.HandleExport)
	group.Post("/:id/restore", h.HandleRestore)
	group.Delete("/:id", h.HandleDelete)
}

// HandleList lists archived dumps.
// @Summary List Archived Dumps
// @Description List the dump documents stored in the archive bucket.
// @Tags archive
// @Produce json
// @Success 200 {array} Entry "Archived dumps"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	entries, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Listing archive failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(entries)
}

// HandleExport uploads a dump to the archive.
// @Summary Export Dump
// @Description Upload a stored dump (or the live list for id 0) to the archive bucket.
// @Tags archive
// @Produce json
// @Param id path int true "Dump ID"
// @Success 201 {object} map[string]string "Object key"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive/{id} [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	key, err := h.service.Export(c.Context(), id)
	if err != nil {
		l.Error("Archive export failed", zap.Uint("dump_id", id), zap.Error(err))
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"key": key})
}

// HandleRestore stores an archived dump as a new local dump.
// @Summary Restore Dump
// @Description Download an archived dump and store it as a new dump.
// @Tags archive
// @Produce json
// @Param id path int true "Archived dump ID"
// @Success 201 {object} dumps.Dump "Restored dump"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive/{id}/restore [post]
func (h *Handler) HandleRestore(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	dump, err := h.service.Restore(c.Context(), c.Params("id"))
	if err != nil {
		l.Error("Archive restore failed", zap.String("ref", c.Params("id")), zap.Error(err))
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dump)
}

// HandleDelete removes an archived dump.
// @Summary Delete Archived Dump
// @Description Remove a dump document from the archive bucket.
// @Tags archive
// @Produce json
// @Param id path int true "Archived dump ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		l.Error("Archive delete failed", zap.String("ref", c.Params("id")), zap.Error(err))
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrArchiveNotFound), errors.Is(err, dumps.ErrDumpNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrUnsupportedVersion):
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

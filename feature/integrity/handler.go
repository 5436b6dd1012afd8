package integrity

import (
	"room-finder/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/drift", h.HandleDriftCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs the storage, schema and drift checks.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if storageReport, err := h.service.CheckStorage(c.Context()); err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = storageReport
	}

	if schemaReport, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schemaReport
	}

	if driftReport, err := h.service.CheckDrift(c.Context()); err != nil {
		report["drift"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["drift"] = driftReport
	}

	return c.JSON(report)
}

// HandleStorageCheck checks and optionally fixes the rooms snapshot.
// @Summary Check Storage
// @Description Checks the bucket and the rooms snapshot object. Optionally creates an empty snapshot.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Create missing bucket and snapshot"
// @Success 200 {object} checks.StorageReport "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckStorage(c.Context())
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if report.Status != "ok" {
		l.Warn("Storage problems detected", zap.Strings("errors", report.Errors))

		if fix && !report.ObjectExists {
			l.Info("Attempting to create rooms snapshot")
			if err := h.service.FixStorage(c.Context(), report); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix storage",
					"details": err.Error(),
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"object": report.Object,
			})
		}
	}

	return c.JSON(report)
}

// HandleSchemaCheck checks and optionally migrates the rooms table.
// @Summary Check Schema
// @Description Checks that the rooms table matches the room row model. Optionally migrates it.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Migrate the rooms table"
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Matched && fix {
		l.Info("Attempting to migrate rooms table")
		if err := h.service.FixSchema(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to fix schema",
				"details": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status":  "fixed",
			"missing": report.MissingColumns,
		})
	}

	return c.JSON(report)
}

// HandleDriftCheck compares the database rooms with the storage snapshot.
// @Summary Check Drift
// @Description Lists rooms that are missing, duplicated or different between the rooms table and the storage snapshot.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} reconcile.Report "Drift Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/drift [get]
func (h *Handler) HandleDriftCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckDrift(c.Context())
	if err != nil {
		l.Error("Drift check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.InSync {
		l.Warn("Room sources drifted",
			zap.Int("missing_database", report.Summary.MissingLeft),
			zap.Int("missing_storage", report.Summary.MissingRight),
			zap.Int("mismatches", report.Summary.Mismatches))
	}
	return c.JSON(report)
}

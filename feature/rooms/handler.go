package rooms

import (
	"bytes"
	"errors"

	"room-finder/core/logger"
	"room-finder/core/room"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for rooms.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the room routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/rooms")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleAdd)
	group.Get("/search", h.HandleSearch)
	group.Post("/reload", h.HandleReload)
	group.Post("/snapshot", h.HandleSnapshot)
}

// RoomList is the body of list and search responses.
type RoomList struct {
	Rooms []room.Room `json:"rooms"`
	Count int         `json:"count"`
}

// HandleList returns every stored room.
// @Summary List Rooms
// @Description List all available rooms, cheapest first.
// @Tags rooms
// @Produce json
// @Success 200 {object} RoomList "Rooms"
// @Router /rooms [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	rooms := h.service.Rooms()
	return c.JSON(RoomList{Rooms: rooms, Count: len(rooms)})
}

// HandleAdd inserts one record or an array of records.
// @Summary Add Rooms
// @Description Insert a room record or an array of records. Unavailable rooms are skipped.
// @Tags rooms
// @Accept json
// @Produce json
// @Success 201 {object} AddResult "Insert summary"
// @Failure 400 {object} map[string]string "Malformed body"
// @Failure 422 {object} map[string]interface{} "Invalid record"
// @Router /rooms [post]
func (h *Handler) HandleAdd(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := decodeBody(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := h.service.Add(records)
	if err != nil {
		var insertErr *InsertError
		if errors.As(err, &insertErr) {
			l.Info("Rejected room record", zap.Int("index", insertErr.Index), zap.Error(insertErr.Err))
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":    insertErr.Err.Error(),
				"index":    insertErr.Index,
				"inserted": res.Inserted,
			})
		}
		l.Error("Room insert failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(res)
}

// HandleSearch finds rooms within a budget.
// @Summary Search Rooms
// @Description Find rooms priced within [min, max]. With rooms > 1 only blocks of adjacent rooms on one floor are returned.
// @Tags rooms
// @Produce json
// @Param rooms query int false "Number of adjacent rooms" default(1)
// @Param min query number false "Minimum price" default(0)
// @Param max query number true "Maximum price"
// @Success 200 {object} RoomList "Matching rooms"
// @Failure 400 {object} map[string]string "Invalid query"
// @Router /rooms/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	q, err := ParseQuery(c.Query("rooms"), c.Query("min"), c.Query("max"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rooms := h.service.Search(c.Context(), q)
	return c.JSON(RoomList{Rooms: rooms, Count: len(rooms)})
}

// HandleReload rebuilds the ledger from a source.
// @Summary Reload Rooms
// @Description Replace all rooms with the contents of the database or the storage snapshot.
// @Tags rooms
// @Produce json
// @Param source query string true "database or storage"
// @Success 200 {object} map[string]interface{} "Reload summary"
// @Failure 400 {object} map[string]string "Unknown source"
// @Failure 422 {object} map[string]interface{} "Invalid record in source"
// @Failure 503 {object} map[string]string "Source not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /rooms/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	source := c.Query("source")

	n, err := h.service.Reload(c.Context(), source)
	if err != nil {
		var insertErr *InsertError
		switch {
		case errors.Is(err, ErrUnknownSource):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, ErrSourceUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		case errors.As(err, &insertErr):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": insertErr.Err.Error(),
				"index": insertErr.Index,
			})
		}
		l.Error("Room reload failed", zap.String("source", source), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"source": source, "rooms": n})
}

// HandleSnapshot writes the stored rooms to object storage.
// @Summary Snapshot Rooms
// @Description Write all stored rooms to the configured storage object.
// @Tags rooms
// @Produce json
// @Success 200 {object} map[string]interface{} "Snapshot summary"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /rooms/snapshot [post]
func (h *Handler) HandleSnapshot(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	n, err := h.service.Snapshot(c.Context())
	if err != nil {
		if errors.Is(err, ErrSourceUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Room snapshot failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"rooms":  n,
		"bucket": h.service.storageCfg.Bucket,
		"object": h.service.storageCfg.RoomsObject,
	})
}

// decodeBody accepts a single JSON record or an array of records.
func decodeBody(body []byte) ([]room.Fields, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("request body is empty")
	}
	if trimmed[0] == '[' {
		return DecodeJSON(trimmed)
	}

	wrapped := make([]byte, 0, len(trimmed)+2)
	wrapped = append(wrapped, '[')
	wrapped = append(wrapped, trimmed...)
	wrapped = append(wrapped, ']')
	return DecodeJSON(wrapped)
}

package favorite

import (
	"errors"
	"strconv"

	"world-crawler/core/logger"
	"world-crawler/core/vrchat"
	"world-crawler/feature/favorite/crawler"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for favorite worlds.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the favorites routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/favorites")
	group.Get("/", h.HandleList)
	group.Get("/schema", h.HandleSchema)
	group.Post("/sync", h.HandleSync)
	group.Get("/:worldId", h.HandleGet)
}

// HandleList returns the stored favorite worlds.
// @Summary List Favorite Worlds
// @Description List every stored world, optionally filtered by the favorited flag.
// @Tags favorites
// @Produce json
// @Param favorited query bool false "Only rows with this favorited flag"
// @Success 200 {array} models.FavoriteWorld "Stored worlds"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /favorites [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var favorited *bool
	if raw := c.Query("favorited"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "favorited must be a boolean",
			})
		}
		favorited = &v
	}

	rows, err := h.service.List(c.Context(), favorited)
	if err != nil {
		l.Error("Listing favorites failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(rows)
}

// HandleGet returns one stored world.
// @Summary Get Favorite World
// @Description Get the stored row of a world by its id.
// @Tags favorites
// @Produce json
// @Param worldId path string true "World id (e.g. 'wrld_...')"
// @Success 200 {object} models.FavoriteWorld "Stored world"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /favorites/{worldId} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	worldID := c.Params("worldId")
	l := logger.WithRayID(h.service.logger, c)

	row, err := h.service.Get(c.Context(), worldID)
	if errors.Is(err, ErrWorldNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		l.Error("Getting favorite failed", zap.String("world_id", worldID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(row)
}

// HandleSync runs one crawl cycle and returns its summary.
// @Summary Sync Favorites
// @Description Fetch the favorited worlds and reconcile them with the store.
// @Tags favorites
// @Produce json
// @Param from_cache query bool false "Use the latest archived payload instead of the API"
// @Success 200 {object} crawler.Summary "Cycle summary"
// @Failure 404 {object} map[string]string "No archived payload"
// @Failure 502 {object} map[string]string "Listing API returned nothing"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /favorites/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fromCache := c.QueryBool("from_cache", false)

	summary, err := h.service.Sync(c.Context(), fromCache)
	if err != nil {
		l.Error("Sync failed", zap.Bool("from_cache", fromCache), zap.Error(err))
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, crawler.ErrNoCache):
			status = fiber.StatusNotFound
		case errors.Is(err, vrchat.ErrEmptyResponse):
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(summary)
}

// HandleSchema checks the stored table against the model.
// @Summary Check Schema
// @Description Report the model columns missing from the favorite_world table.
// @Tags favorites
// @Produce json
// @Success 200 {object} SchemaReport "Schema report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /favorites/schema [get]
func (h *Handler) HandleSchema(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Schema(c.Context())
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(report)
}

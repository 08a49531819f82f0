package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/tirumala-planners/site-backend/internal/api/http/handler"
)

func (r *Router) registerAssetRoutes(api fiber.Router, h *handler.AssetHandler) {
	api.Get("/assets/:file", h.Get)
	api.Get("/files", h.List)
}

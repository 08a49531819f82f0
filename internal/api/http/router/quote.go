package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/tirumala-planners/site-backend/internal/api/http/handler"
)

func (r *Router) registerQuoteRoutes(api fiber.Router, h *handler.QuoteHandler) {
	api.Post("/send-quote", h.Submit)
}

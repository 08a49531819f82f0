package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/tirumala-planners/site-backend/internal/metrics"
	"github.com/tirumala-planners/site-backend/internal/service/catalog"
)

const headerCORP = "Cross-Origin-Resource-Policy"

type AssetHandler struct {
	svc catalog.Service
}

func NewAssetHandler(svc catalog.Service) *AssetHandler {
	return &AssetHandler{svc: svc}
}

// Get handles GET /api/assets/:file. The body is streamed inline so
// browsers display PDFs and images instead of downloading them.
func (h *AssetHandler) Get(c fiber.Ctx) error {
	r, asset, err := h.svc.Open(c.Params("file"))
	if err != nil {
		metrics.RecordAssetRequest("not_found")
		return notFound(c, "File not found")
	}

	metrics.RecordAssetRequest("served")
	c.Set(fiber.HeaderContentType, asset.ContentType)
	c.Set(fiber.HeaderContentDisposition, "inline")
	c.Set(headerCORP, "cross-origin")
	return c.SendStream(r, int(asset.Size))
}

// List handles GET /api/files?category=. An unknown or missing
// category returns the full catalog.
func (h *AssetHandler) List(c fiber.Ctx) error {
	names, err := h.svc.List(c.Query("category"))
	if err != nil {
		return internalError(c)
	}

	c.Set(headerCORP, "cross-origin")
	return ok(c, names)
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/tirumala-planners/site-backend/internal/service/quote"
)

type QuoteHandler struct {
	svc quote.Service
}

func NewQuoteHandler(svc quote.Service) *QuoteHandler {
	return &QuoteHandler{svc: svc}
}

type sendQuoteRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Submit handles POST /api/send-quote. The response bodies are fixed
// strings the public site matches on; persistence and delivery
// failures are deliberately indistinguishable to the caller.
func (h *QuoteHandler) Submit(c fiber.Ctx) error {
	var req sendQuoteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "All fields are required.")
	}

	_, err := h.svc.Submit(c.Context(), quote.Request{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, quote.ErrMissingFields) {
			return badRequest(c, "All fields are required.")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"text": "Failed to send email."})
	}

	return ok(c, fiber.Map{"text": "Form submitted and email sent successfully."})
}

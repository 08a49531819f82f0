package quote

import (
	"context"
	"log/slog"

	"github.com/tirumala-planners/site-backend/internal/domain"
	"github.com/tirumala-planners/site-backend/internal/metrics"
	"github.com/tirumala-planners/site-backend/internal/service/inquiry"
	"github.com/tirumala-planners/site-backend/internal/service/notify"
	"github.com/tirumala-planners/site-backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Request struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Service runs the submit workflow: validate, persist, notify. The two
// side effects are strictly sequential; a persistence failure prevents
// the notification so no email refers to an unsaved record.
type Service interface {
	Submit(ctx context.Context, req Request) (*domain.Inquiry, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type quoteService struct {
	store    inquiry.Service
	notifier notify.Service
}

func New(store inquiry.Service, notifier notify.Service) Service {
	return &quoteService{store: store, notifier: notifier}
}

func (s *quoteService) Submit(ctx context.Context, req Request) (*domain.Inquiry, error) {
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Message == "" {
		return nil, ErrMissingFields
	}

	inq, err := s.store.Create(ctx, inquiry.CreateRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	rid := reqctx.RequestIDFromContext(ctx)
	if err != nil {
		slog.Error("quote submission: persist failed", "request_id", rid, "error", err)
		return nil, err
	}
	metrics.RecordInquiryPersisted()

	if err := s.notifier.InquiryReceived(ctx, inq); err != nil {
		// The record is already saved; the caller still sees a failure.
		slog.Error("quote submission: notification failed", "request_id", rid, "inquiry_id", inq.ID, "error", err)
		metrics.RecordNotification("failed")
		return nil, err
	}
	metrics.RecordNotification("sent")

	slog.Info("quote submission accepted", "request_id", rid, "inquiry_id", inq.ID, "name", inq.Name)
	return inq, nil
}

package inquiry

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tirumala-planners/site-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Service is the contact store. It is append-only: records are created
// once per submission and never updated or deleted.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*domain.Inquiry, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type inquiryService struct {
	db *gorm.DB
}

func New(db *gorm.DB) Service {
	return &inquiryService{db: db}
}

func (s *inquiryService) Create(ctx context.Context, req CreateRequest) (*domain.Inquiry, error) {
	rec := &domain.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return rec, nil
}

package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tirumala-planners/site-backend/internal/domain"
	"github.com/tirumala-planners/site-backend/pkg/email"
)

const subject = "New Customer Inquiry - Tirumala Planners"

// Mailer is the outbound transport. Satisfied by *email.Client.
type Mailer interface {
	Send(ctx context.Context, m email.Message) error
	IsEnabled() bool
}

// Service emails the site owner about a new inquiry.
type Service interface {
	InquiryReceived(ctx context.Context, inq *domain.Inquiry) error
}

type notifyService struct {
	mailer Mailer
	owner  string
}

func New(mailer Mailer, owner string) Service {
	return &notifyService{mailer: mailer, owner: owner}
}

func (s *notifyService) InquiryReceived(ctx context.Context, inq *domain.Inquiry) error {
	if !s.mailer.IsEnabled() {
		// Development mode: log instead of sending.
		slog.Info("email disabled, skipping owner notification",
			"inquiry_id", inq.ID, "name", inq.Name, "email", inq.Email)
		return nil
	}

	msg := email.Message{
		To:       []string{s.owner},
		Subject:  subject,
		TextBody: bodyFor(inq),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliver, err)
	}
	return nil
}

func bodyFor(inq *domain.Inquiry) string {
	return fmt.Sprintf(`You have received a new customer request from the Tirumala Planners website. Please find the details below:

Name: %s

Email: %s

Phone: %s

Message: %s`, inq.Name, inq.Email, inq.Phone, inq.Message)
}

package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tirumala-planners/site-backend/internal/domain"
	"github.com/tirumala-planners/site-backend/pkg/email"
)

type fakeMailer struct {
	enabled bool
	sendErr error
	sent    []email.Message
}

func (f *fakeMailer) Send(ctx context.Context, m email.Message) error {
	f.sent = append(f.sent, m)
	return f.sendErr
}

func (f *fakeMailer) IsEnabled() bool { return f.enabled }

var testInquiry = &domain.Inquiry{
	ID:      7,
	Name:    "Ravi Kumar",
	Email:   "ravi@example.com",
	Phone:   "+91 9000000000",
	Message: "Need a quote for a duplex elevation.",
}

func TestInquiryReceived_BuildsMessage(t *testing.T) {
	m := &fakeMailer{enabled: true}
	svc := New(m, "owner@tirumalaplanners.com")

	if err := svc.InquiryReceived(context.Background(), testInquiry); err != nil {
		t.Fatalf("InquiryReceived() error = %v", err)
	}
	if len(m.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(m.sent))
	}

	msg := m.sent[0]
	if len(msg.To) != 1 || msg.To[0] != "owner@tirumalaplanners.com" {
		t.Errorf("To = %v, want the configured owner", msg.To)
	}
	if msg.Subject != "New Customer Inquiry - Tirumala Planners" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	for _, field := range []string{testInquiry.Name, testInquiry.Email, testInquiry.Phone, testInquiry.Message} {
		if !strings.Contains(msg.TextBody, field) {
			t.Errorf("body missing %q:\n%s", field, msg.TextBody)
		}
	}
}

func TestInquiryReceived_TransportFailure(t *testing.T) {
	m := &fakeMailer{enabled: true, sendErr: errors.New("smtp: auth failed")}
	svc := New(m, "owner@tirumalaplanners.com")

	err := svc.InquiryReceived(context.Background(), testInquiry)
	if !errors.Is(err, ErrDeliver) {
		t.Errorf("error = %v, want ErrDeliver", err)
	}
}

func TestInquiryReceived_DisabledSkipsSend(t *testing.T) {
	m := &fakeMailer{enabled: false}
	svc := New(m, "owner@tirumalaplanners.com")

	if err := svc.InquiryReceived(context.Background(), testInquiry); err != nil {
		t.Fatalf("InquiryReceived() error = %v", err)
	}
	if len(m.sent) != 0 {
		t.Errorf("expected no send attempts, got %d", len(m.sent))
	}
}

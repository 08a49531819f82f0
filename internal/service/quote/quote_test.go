package quote

import (
	"context"
	"errors"
	"testing"

	"github.com/tirumala-planners/site-backend/internal/domain"
	"github.com/tirumala-planners/site-backend/internal/service/inquiry"
)

type fakeStore struct {
	created []inquiry.CreateRequest
	err     error
	nextID  uint
}

func (f *fakeStore) Create(ctx context.Context, req inquiry.CreateRequest) (*domain.Inquiry, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, req)
	f.nextID++
	return &domain.Inquiry{
		ID:      f.nextID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}, nil
}

type fakeNotifier struct {
	received []*domain.Inquiry
	err      error
}

func (f *fakeNotifier) InquiryReceived(ctx context.Context, inq *domain.Inquiry) error {
	if f.err != nil {
		return f.err
	}
	f.received = append(f.received, inq)
	return nil
}

var validRequest = Request{
	Name:    "Ravi Kumar",
	Email:   "ravi@example.com",
	Phone:   "+91 9000000000",
	Message: "Need a quote.",
}

func TestSubmit_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"empty name", Request{Email: "a@b.c", Phone: "1", Message: "m"}},
		{"empty email", Request{Name: "a", Phone: "1", Message: "m"}},
		{"empty phone", Request{Name: "a", Email: "a@b.c", Message: "m"}},
		{"empty message", Request{Name: "a", Email: "a@b.c", Phone: "1"}},
		{"all empty", Request{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			notifier := &fakeNotifier{}
			svc := New(store, notifier)

			_, err := svc.Submit(context.Background(), tt.req)
			if !errors.Is(err, ErrMissingFields) {
				t.Errorf("Submit() error = %v, want ErrMissingFields", err)
			}
			if len(store.created) != 0 {
				t.Errorf("store called %d times, want 0", len(store.created))
			}
			if len(notifier.received) != 0 {
				t.Errorf("notifier called %d times, want 0", len(notifier.received))
			}
		})
	}
}

func TestSubmit_PersistFailureSkipsNotification(t *testing.T) {
	store := &fakeStore{err: inquiry.ErrPersist}
	notifier := &fakeNotifier{}
	svc := New(store, notifier)

	_, err := svc.Submit(context.Background(), validRequest)
	if !errors.Is(err, inquiry.ErrPersist) {
		t.Errorf("Submit() error = %v, want ErrPersist", err)
	}
	if len(notifier.received) != 0 {
		t.Errorf("notifier called %d times after persist failure, want 0", len(notifier.received))
	}
}

func TestSubmit_NotifyFailureAfterPersist(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	svc := New(store, notifier)

	_, err := svc.Submit(context.Background(), validRequest)
	if err == nil {
		t.Fatal("Submit() expected error when notification fails")
	}
	// The record is kept even though the caller sees a failure.
	if len(store.created) != 1 {
		t.Errorf("store called %d times, want 1", len(store.created))
	}
}

func TestSubmit_Success(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	svc := New(store, notifier)

	inq, err := svc.Submit(context.Background(), validRequest)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if inq.ID == 0 {
		t.Error("expected assigned ID")
	}
	if len(store.created) != 1 || len(notifier.received) != 1 {
		t.Fatalf("store calls = %d, notifier calls = %d, want 1 and 1", len(store.created), len(notifier.received))
	}
	if notifier.received[0].ID != inq.ID {
		t.Errorf("notifier saw record %d, want %d", notifier.received[0].ID, inq.ID)
	}
}

func TestSubmit_DuplicatesNotDeduplicated(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	svc := New(store, notifier)

	for i := 0; i < 2; i++ {
		if _, err := svc.Submit(context.Background(), validRequest); err != nil {
			t.Fatalf("Submit() #%d error = %v", i+1, err)
		}
	}
	if len(store.created) != 2 {
		t.Errorf("store calls = %d, want 2", len(store.created))
	}
	if len(notifier.received) != 2 {
		t.Errorf("notifier calls = %d, want 2", len(notifier.received))
	}
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/service"
)

type mockNewsletterService struct {
	subscribeFunc func(ctx context.Context, email, source string) (*model.Subscriber, error)
}

func (m *mockNewsletterService) Subscribe(ctx context.Context, email, source string) (*model.Subscriber, error) {
	if m.subscribeFunc != nil {
		return m.subscribeFunc(ctx, email, source)
	}
	return &model.Subscriber{Email: email, IsActive: true}, nil
}

func (m *mockNewsletterService) Unsubscribe(ctx context.Context, email string) error { return nil }

func (m *mockNewsletterService) List(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int64, error) {
	return nil, 0, nil
}

func (m *mockNewsletterService) Delete(ctx context.Context, id string) error { return nil }

func TestNewsletterHandler_Subscribe_Success(t *testing.T) {
	h := NewNewsletterHandler(&mockNewsletterService{}, testPages())

	body := `{"email":"dora@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewsletterHandler_Subscribe_Duplicate(t *testing.T) {
	mock := &mockNewsletterService{
		subscribeFunc: func(ctx context.Context, email, source string) (*model.Subscriber, error) {
			return nil, service.ErrAlreadySubscribed
		},
	}
	h := NewNewsletterHandler(mock, testPages())

	body := `{"email":"dora@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for duplicate subscription, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "already subscribed") {
		t.Errorf("expected a human-readable duplicate message, got %q", body)
	}
}

func TestNewsletterHandler_Subscribe_InvalidEmail(t *testing.T) {
	h := NewNewsletterHandler(&mockNewsletterService{}, testPages())

	body := `{"email":"not-an-email"}`
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestNewsletterHandler_Unsubscribe_Success(t *testing.T) {
	h := NewNewsletterHandler(&mockNewsletterService{}, testPages())

	body := `{"email":"dora@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/unsubscribe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Unsubscribe(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

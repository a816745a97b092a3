package service

import (
	"context"
	"errors"
	"testing"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockNewsletterRepo struct {
	findByEmailFunc func(ctx context.Context, email string) (*model.Subscriber, error)
	createFunc      func(ctx context.Context, s *model.Subscriber) error
	reactivateFunc  func(ctx context.Context, id string) (*model.Subscriber, error)
	deactivateFunc  func(ctx context.Context, email string) error
}

func (m *mockNewsletterRepo) FindByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	return m.findByEmailFunc(ctx, email)
}

func (m *mockNewsletterRepo) Create(ctx context.Context, s *model.Subscriber) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, s)
	}
	return nil
}

func (m *mockNewsletterRepo) Reactivate(ctx context.Context, id string) (*model.Subscriber, error) {
	if m.reactivateFunc != nil {
		return m.reactivateFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNewsletterRepo) Deactivate(ctx context.Context, email string) error {
	if m.deactivateFunc != nil {
		return m.deactivateFunc(ctx, email)
	}
	return nil
}

func (m *mockNewsletterRepo) List(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int64, error) {
	return nil, 0, nil
}

func (m *mockNewsletterRepo) Delete(ctx context.Context, id string) error { return nil }

func TestNewsletterService_Subscribe_New(t *testing.T) {
	var created *model.Subscriber
	repo := &mockNewsletterRepo{
		findByEmailFunc: func(ctx context.Context, email string) (*model.Subscriber, error) {
			return nil, repository.ErrNotFound
		},
		createFunc: func(ctx context.Context, s *model.Subscriber) error {
			created = s
			return nil
		},
	}
	svc := NewNewsletterService(repo)

	sub, err := svc.Subscribe(context.Background(), "  User@Example.COM ", "footer")
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if created == nil {
		t.Fatal("expected Create to be called")
	}
	if sub.Email != "user@example.com" {
		t.Errorf("expected normalized email, got %q", sub.Email)
	}
	if !sub.IsActive {
		t.Error("new subscriber should be active")
	}
	if sub.Source != "footer" {
		t.Errorf("expected source footer, got %q", sub.Source)
	}
}

func TestNewsletterService_Subscribe_AlreadyActive(t *testing.T) {
	repo := &mockNewsletterRepo{
		findByEmailFunc: func(ctx context.Context, email string) (*model.Subscriber, error) {
			return &model.Subscriber{Email: email, IsActive: true}, nil
		},
		createFunc: func(ctx context.Context, s *model.Subscriber) error {
			t.Error("Create must not be called for an active duplicate")
			return nil
		},
	}
	svc := NewNewsletterService(repo)

	_, err := svc.Subscribe(context.Background(), "a@b.com", "")
	if !errors.Is(err, ErrAlreadySubscribed) {
		t.Errorf("expected ErrAlreadySubscribed, got %v", err)
	}
}

func TestNewsletterService_Subscribe_ReactivatesInactive(t *testing.T) {
	id := primitive.NewObjectID()
	var reactivated string
	repo := &mockNewsletterRepo{
		findByEmailFunc: func(ctx context.Context, email string) (*model.Subscriber, error) {
			return &model.Subscriber{ID: id, Email: email, IsActive: false}, nil
		},
		reactivateFunc: func(ctx context.Context, gotID string) (*model.Subscriber, error) {
			reactivated = gotID
			return &model.Subscriber{ID: id, IsActive: true}, nil
		},
		createFunc: func(ctx context.Context, s *model.Subscriber) error {
			t.Error("Create must not be called when a record exists")
			return nil
		},
	}
	svc := NewNewsletterService(repo)

	sub, err := svc.Subscribe(context.Background(), "a@b.com", "")
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if reactivated != id.Hex() {
		t.Errorf("expected Reactivate(%s), got %q", id.Hex(), reactivated)
	}
	if !sub.IsActive {
		t.Error("reactivated subscriber should be active")
	}
}

func TestNewsletterService_Subscribe_DuplicateRace(t *testing.T) {
	repo := &mockNewsletterRepo{
		findByEmailFunc: func(ctx context.Context, email string) (*model.Subscriber, error) {
			return nil, repository.ErrNotFound
		},
		createFunc: func(ctx context.Context, s *model.Subscriber) error {
			return repository.ErrDuplicate
		},
	}
	svc := NewNewsletterService(repo)

	_, err := svc.Subscribe(context.Background(), "a@b.com", "")
	if !errors.Is(err, ErrAlreadySubscribed) {
		t.Errorf("expected ErrAlreadySubscribed on index conflict, got %v", err)
	}
}

func TestNewsletterService_Unsubscribe_Unknown(t *testing.T) {
	repo := &mockNewsletterRepo{
		deactivateFunc: func(ctx context.Context, email string) error {
			return repository.ErrNotFound
		},
		findByEmailFunc: func(ctx context.Context, email string) (*model.Subscriber, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewNewsletterService(repo)

	if err := svc.Unsubscribe(context.Background(), "nobody@example.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNewsletterService_Unsubscribe_Normalizes(t *testing.T) {
	var got string
	repo := &mockNewsletterRepo{
		deactivateFunc: func(ctx context.Context, email string) error {
			got = email
			return nil
		},
		findByEmailFunc: func(ctx context.Context, email string) (*model.Subscriber, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewNewsletterService(repo)

	if err := svc.Unsubscribe(context.Background(), " A@B.COM"); err != nil {
		t.Fatalf("Unsubscribe failed: %v", err)
	}
	if got != "a@b.com" {
		t.Errorf("expected normalized email, got %q", got)
	}
}

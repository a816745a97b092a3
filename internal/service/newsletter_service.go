package service

import (
	"context"
	"errors"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/repository"
)

// NewsletterService defines subscribe/unsubscribe and subscriber
// administration.
type NewsletterService interface {
	// Subscribe creates a subscription for the normalized email, or
	// reactivates a previously unsubscribed one. An active duplicate
	// returns ErrAlreadySubscribed.
	Subscribe(ctx context.Context, email, source string) (*model.Subscriber, error)
	// Unsubscribe soft-deletes the subscription; unknown emails return
	// repository.ErrNotFound.
	Unsubscribe(ctx context.Context, email string) error
	List(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int64, error)
	Delete(ctx context.Context, id string) error
}

type newsletterServiceImpl struct {
	repo repository.NewsletterRepository
}

// NewNewsletterService creates a NewsletterService backed by the given
// repository.
func NewNewsletterService(repo repository.NewsletterRepository) NewsletterService {
	return &newsletterServiceImpl{repo: repo}
}

func (s *newsletterServiceImpl) Subscribe(ctx context.Context, email, source string) (*model.Subscriber, error) {
	email = model.NormalizeEmail(email)

	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil && existing.IsActive:
		return nil, ErrAlreadySubscribed
	case err == nil:
		// Previously unsubscribed: reactivate in place, one document.
		return s.repo.Reactivate(ctx, existing.ID.Hex())
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	sub := &model.Subscriber{
		Email:    email,
		IsActive: true,
		Source:   source,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		// The unique index can still fire under a concurrent subscribe.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}
	return sub, nil
}

func (s *newsletterServiceImpl) Unsubscribe(ctx context.Context, email string) error {
	return s.repo.Deactivate(ctx, model.NormalizeEmail(email))
}

func (s *newsletterServiceImpl) List(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int64, error) {
	return s.repo.List(ctx, opts)
}

func (s *newsletterServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

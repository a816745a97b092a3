package repository

import (
	"context"

	"github.com/structura/backend/internal/model"
)

// NewsletterRepository defines the persistence interface for newsletter
// subscribers. Emails are normalized by the caller before they reach this
// layer.
type NewsletterRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Subscriber, error)
	Create(ctx context.Context, s *model.Subscriber) error
	// Reactivate flips an inactive subscription back on and refreshes
	// subscribedAt, keeping the original document.
	Reactivate(ctx context.Context, id string) (*model.Subscriber, error)
	// Deactivate soft-deletes the subscription for the given email.
	Deactivate(ctx context.Context, email string) error
	List(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int64, error)
	Delete(ctx context.Context, id string) error
}

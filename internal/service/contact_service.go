package service

import (
	"context"
	"time"

	"github.com/structura/backend/internal/model"
)

// ContactService defines the business logic for contact submissions and
// their moderation workflow.
type ContactService interface {
	// Submit stores a public contact-form submission with workflow
	// defaults applied.
	Submit(ctx context.Context, c *model.Contact) error
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, int64, error)
	// Get returns the submission and marks it read on first view.
	Get(ctx context.Context, id string) (*model.Contact, error)
	SetStatus(ctx context.Context, id, status string) (*model.Contact, error)
	SetPriority(ctx context.Context, id, priority string) (*model.Contact, error)
	Assign(ctx context.Context, id, adminID string) (*model.Contact, error)
	SetFollowUp(ctx context.Context, id string, at *time.Time) (*model.Contact, error)
	AddNote(ctx context.Context, id, text, author string) (*model.Contact, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*model.ContactStats, error)
}

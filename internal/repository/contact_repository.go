package repository

import (
	"context"
	"time"

	"github.com/structura/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact
// submissions.
type ContactRepository interface {
	Create(ctx context.Context, c *model.Contact) error
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, int64, error)
	// FindByIDMarkRead returns the submission and, when it is still unread,
	// flips isRead in the same atomic operation. A second read is a no-op.
	FindByIDMarkRead(ctx context.Context, id string) (*model.Contact, error)
	SetStatus(ctx context.Context, id, status string) (*model.Contact, error)
	SetPriority(ctx context.Context, id, priority string) (*model.Contact, error)
	Assign(ctx context.Context, id, adminID string) (*model.Contact, error)
	SetFollowUp(ctx context.Context, id string, at *time.Time) (*model.Contact, error)
	AddNote(ctx context.Context, id string, note model.ContactNote) (*model.Contact, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*model.ContactStats, error)
}

package repository

import (
	"context"

	"github.com/structura/backend/internal/model"
)

// JourneyRepository defines the persistence interface for company timeline
// entries.
type JourneyRepository interface {
	List(ctx context.Context, opts model.JourneyListOptions) ([]*model.JourneyEntry, int64, error)
	// ListAllActive returns every active entry sorted for the public
	// timeline (year descending, then order, then month).
	ListAllActive(ctx context.Context) ([]*model.JourneyEntry, error)
	FindByID(ctx context.Context, id string) (*model.JourneyEntry, error)
	Create(ctx context.Context, e *model.JourneyEntry) error
	Update(ctx context.Context, e *model.JourneyEntry) error
	Delete(ctx context.Context, id string) error
	ToggleFlag(ctx context.Context, id, field string) (*model.JourneyEntry, error)
}

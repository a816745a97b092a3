package repository

import (
	"context"

	"github.com/structura/backend/internal/model"
)

// ProjectRepository defines the persistence interface for projects.
type ProjectRepository interface {
	List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, int64, error)
	FindByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id string) error
	// ToggleFlag atomically flips a boolean field (isFeatured or isActive)
	// and returns the updated document.
	ToggleFlag(ctx context.Context, id, field string) (*model.Project, error)
	Stats(ctx context.Context) (*model.ProjectStats, error)
}

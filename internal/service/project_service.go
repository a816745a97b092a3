package service

import (
	"context"
	"time"

	"github.com/structura/backend/internal/model"
)

// ProjectPatch carries the fields of a partial project update. Nil means
// "leave unchanged".
type ProjectPatch struct {
	Name           *string
	Description    *string
	Category       *string
	Location       *string
	Client         *string
	StartDate      *time.Time
	EndDate        *time.Time
	Status         *string
	Budget         *string
	Images         []model.ProjectImage
	Features       []string
	Specifications *model.ProjectSpecs
	Highlights     []string
	IsFeatured     *bool
	IsActive       *bool
}

// ProjectService defines the business logic for construction projects.
type ProjectService interface {
	List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, int64, error)
	// Get returns one project. When publicOnly is set, inactive projects
	// are reported as not found.
	Get(ctx context.Context, id string, publicOnly bool) (*model.Project, error)
	Create(ctx context.Context, p *model.Project, createdBy string) error
	Update(ctx context.Context, id string, patch ProjectPatch, updatedBy string) (*model.Project, error)
	Delete(ctx context.Context, id string) error
	ToggleFeatured(ctx context.Context, id string) (*model.Project, error)
	ToggleActive(ctx context.Context, id string) (*model.Project, error)
	Stats(ctx context.Context) (*model.ProjectStats, error)
}

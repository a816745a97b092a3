package repository

import (
	"context"

	"github.com/structura/backend/internal/model"
)

// ServiceRepository defines the persistence interface for the service
// catalog.
type ServiceRepository interface {
	List(ctx context.Context, opts model.ServiceListOptions) ([]*model.Service, int64, error)
	FindByID(ctx context.Context, id string) (*model.Service, error)
	Create(ctx context.Context, s *model.Service) error
	Update(ctx context.Context, s *model.Service) error
	Delete(ctx context.Context, id string) error
	ToggleFlag(ctx context.Context, id, field string) (*model.Service, error)
}

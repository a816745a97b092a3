package service

import (
	"context"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/repository"
)

// ServicePatch carries the fields of a partial catalog update. Nil means
// "leave unchanged".
type ServicePatch struct {
	Name           *string
	Description    *string
	Category       *string
	Pricing        *model.ServicePricing
	Specifications *model.ServiceSpecs
	Features       []string
	IsFeatured     *bool
	IsActive       *bool
	Order          *int
}

// CatalogService defines the business logic for the construction service
// catalog.
type CatalogService interface {
	List(ctx context.Context, opts model.ServiceListOptions) ([]*model.Service, int64, error)
	Get(ctx context.Context, id string, publicOnly bool) (*model.Service, error)
	Create(ctx context.Context, svc *model.Service, createdBy string) error
	Update(ctx context.Context, id string, patch ServicePatch, updatedBy string) (*model.Service, error)
	Delete(ctx context.Context, id string) error
	ToggleFeatured(ctx context.Context, id string) (*model.Service, error)
	ToggleActive(ctx context.Context, id string) (*model.Service, error)
}

type catalogServiceImpl struct {
	repo repository.ServiceRepository
}

// NewCatalogService creates a CatalogService backed by the given repository.
func NewCatalogService(repo repository.ServiceRepository) CatalogService {
	return &catalogServiceImpl{repo: repo}
}

func (s *catalogServiceImpl) List(ctx context.Context, opts model.ServiceListOptions) ([]*model.Service, int64, error) {
	return s.repo.List(ctx, opts)
}

func (s *catalogServiceImpl) Get(ctx context.Context, id string, publicOnly bool) (*model.Service, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if publicOnly && !svc.IsActive {
		return nil, repository.ErrNotFound
	}
	return svc, nil
}

func (s *catalogServiceImpl) Create(ctx context.Context, svc *model.Service, createdBy string) error {
	svc.IsActive = true
	svc.CreatedBy = createdBy
	svc.UpdatedBy = createdBy
	return s.repo.Create(ctx, svc)
}

func (s *catalogServiceImpl) Update(ctx context.Context, id string, patch ServicePatch, updatedBy string) (*model.Service, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		svc.Name = *patch.Name
	}
	if patch.Description != nil {
		svc.Description = *patch.Description
	}
	if patch.Category != nil {
		svc.Category = *patch.Category
	}
	if patch.Pricing != nil {
		svc.Pricing = *patch.Pricing
	}
	if patch.Specifications != nil {
		svc.Specifications = *patch.Specifications
	}
	if patch.Features != nil {
		svc.Features = patch.Features
	}
	if patch.IsFeatured != nil {
		svc.IsFeatured = *patch.IsFeatured
	}
	if patch.IsActive != nil {
		svc.IsActive = *patch.IsActive
	}
	if patch.Order != nil {
		svc.Order = *patch.Order
	}
	svc.UpdatedBy = updatedBy

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *catalogServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *catalogServiceImpl) ToggleFeatured(ctx context.Context, id string) (*model.Service, error) {
	return s.repo.ToggleFlag(ctx, id, "isFeatured")
}

func (s *catalogServiceImpl) ToggleActive(ctx context.Context, id string) (*model.Service, error) {
	return s.repo.ToggleFlag(ctx, id, "isActive")
}

package service

import (
	"context"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/repository"
)

type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

// decorate computes derived values at the serialization boundary; nothing
// derived is stored.
func decorate(p *model.Project) *model.Project {
	if p != nil {
		p.DurationMonths = p.Duration()
	}
	return p
}

func (s *projectServiceImpl) List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, int64, error) {
	projects, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	for _, p := range projects {
		decorate(p)
	}
	return projects, total, nil
}

func (s *projectServiceImpl) Get(ctx context.Context, id string, publicOnly bool) (*model.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if publicOnly && !p.IsActive {
		return nil, repository.ErrNotFound
	}
	return decorate(p), nil
}

func (s *projectServiceImpl) Create(ctx context.Context, p *model.Project, createdBy string) error {
	if p.Status == "" {
		p.Status = "Planning"
	}
	p.IsActive = true
	p.CreatedBy = createdBy
	p.UpdatedBy = createdBy
	p.NormalizeMainImage()

	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}
	decorate(p)
	return nil
}

func (s *projectServiceImpl) Update(ctx context.Context, id string, patch ProjectPatch, updatedBy string) (*model.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Client != nil {
		p.Client = *patch.Client
	}
	if patch.StartDate != nil {
		p.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		p.EndDate = patch.EndDate
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Budget != nil {
		p.Budget = *patch.Budget
	}
	if patch.Images != nil {
		p.Images = patch.Images
	}
	if patch.Features != nil {
		p.Features = patch.Features
	}
	if patch.Specifications != nil {
		p.Specifications = *patch.Specifications
	}
	if patch.Highlights != nil {
		p.Highlights = patch.Highlights
	}
	if patch.IsFeatured != nil {
		p.IsFeatured = *patch.IsFeatured
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	p.UpdatedBy = updatedBy
	p.NormalizeMainImage()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return decorate(p), nil
}

func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *projectServiceImpl) ToggleFeatured(ctx context.Context, id string) (*model.Project, error) {
	p, err := s.repo.ToggleFlag(ctx, id, "isFeatured")
	if err != nil {
		return nil, err
	}
	return decorate(p), nil
}

func (s *projectServiceImpl) ToggleActive(ctx context.Context, id string) (*model.Project, error) {
	p, err := s.repo.ToggleFlag(ctx, id, "isActive")
	if err != nil {
		return nil, err
	}
	return decorate(p), nil
}

func (s *projectServiceImpl) Stats(ctx context.Context) (*model.ProjectStats, error) {
	return s.repo.Stats(ctx)
}

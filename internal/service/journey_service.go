package service

import (
	"context"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/repository"
)

// JourneyPatch carries the fields of a partial timeline-entry update. Nil
// means "leave unchanged".
type JourneyPatch struct {
	Title       *string
	Description *string
	Year        *int
	Month       *int
	Type        *string
	Category    *string
	Metrics     *model.JourneyMetrics
	Highlights  []string
	Tags        []string
	IsFeatured  *bool
	IsActive    *bool
	Order       *int
}

// JourneyService defines the business logic for the company timeline.
type JourneyService interface {
	List(ctx context.Context, opts model.JourneyListOptions) ([]*model.JourneyEntry, int64, error)
	// Timeline returns all active entries grouped by year, newest first.
	Timeline(ctx context.Context) ([]*model.TimelineYear, error)
	Get(ctx context.Context, id string, publicOnly bool) (*model.JourneyEntry, error)
	Create(ctx context.Context, e *model.JourneyEntry, createdBy string) error
	Update(ctx context.Context, id string, patch JourneyPatch, updatedBy string) (*model.JourneyEntry, error)
	Delete(ctx context.Context, id string) error
	ToggleFeatured(ctx context.Context, id string) (*model.JourneyEntry, error)
	ToggleActive(ctx context.Context, id string) (*model.JourneyEntry, error)
}

type journeyServiceImpl struct {
	repo repository.JourneyRepository
}

// NewJourneyService creates a JourneyService backed by the given repository.
func NewJourneyService(repo repository.JourneyRepository) JourneyService {
	return &journeyServiceImpl{repo: repo}
}

func (s *journeyServiceImpl) List(ctx context.Context, opts model.JourneyListOptions) ([]*model.JourneyEntry, int64, error) {
	return s.repo.List(ctx, opts)
}

func (s *journeyServiceImpl) Timeline(ctx context.Context) ([]*model.TimelineYear, error) {
	entries, err := s.repo.ListAllActive(ctx)
	if err != nil {
		return nil, err
	}

	// Entries arrive sorted by year descending; group preserving order.
	var years []*model.TimelineYear
	for _, e := range entries {
		if len(years) == 0 || years[len(years)-1].Year != e.Year {
			years = append(years, &model.TimelineYear{Year: e.Year})
		}
		last := years[len(years)-1]
		last.Entries = append(last.Entries, e)
	}
	return years, nil
}

func (s *journeyServiceImpl) Get(ctx context.Context, id string, publicOnly bool) (*model.JourneyEntry, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if publicOnly && !e.IsActive {
		return nil, repository.ErrNotFound
	}
	return e, nil
}

func (s *journeyServiceImpl) Create(ctx context.Context, e *model.JourneyEntry, createdBy string) error {
	e.IsActive = true
	e.CreatedBy = createdBy
	e.UpdatedBy = createdBy
	return s.repo.Create(ctx, e)
}

func (s *journeyServiceImpl) Update(ctx context.Context, id string, patch JourneyPatch, updatedBy string) (*model.JourneyEntry, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Year != nil {
		e.Year = *patch.Year
	}
	if patch.Month != nil {
		e.Month = *patch.Month
	}
	if patch.Type != nil {
		e.Type = *patch.Type
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
	if patch.Metrics != nil {
		e.Metrics = *patch.Metrics
	}
	if patch.Highlights != nil {
		e.Highlights = patch.Highlights
	}
	if patch.Tags != nil {
		e.Tags = patch.Tags
	}
	if patch.IsFeatured != nil {
		e.IsFeatured = *patch.IsFeatured
	}
	if patch.IsActive != nil {
		e.IsActive = *patch.IsActive
	}
	if patch.Order != nil {
		e.Order = *patch.Order
	}
	e.UpdatedBy = updatedBy

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *journeyServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *journeyServiceImpl) ToggleFeatured(ctx context.Context, id string) (*model.JourneyEntry, error) {
	return s.repo.ToggleFlag(ctx, id, "isFeatured")
}

func (s *journeyServiceImpl) ToggleActive(ctx context.Context, id string) (*model.JourneyEntry, error) {
	return s.repo.ToggleFlag(ctx, id, "isActive")
}

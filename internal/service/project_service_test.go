package service

import (
	"context"
	"testing"
	"time"

	"github.com/structura/backend/internal/model"
)

type mockProjectRepo struct {
	findByID   *model.Project
	findErr    error
	updated    *model.Project
	toggled    []string
	toggleFunc func(ctx context.Context, id, field string) (*model.Project, error)
}

func (m *mockProjectRepo) List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, int64, error) {
	return nil, 0, nil
}

func (m *mockProjectRepo) FindByID(ctx context.Context, id string) (*model.Project, error) {
	return m.findByID, m.findErr
}

func (m *mockProjectRepo) Create(ctx context.Context, p *model.Project) error { return nil }

func (m *mockProjectRepo) Update(ctx context.Context, p *model.Project) error {
	m.updated = p
	return nil
}

func (m *mockProjectRepo) Delete(ctx context.Context, id string) error { return nil }

func (m *mockProjectRepo) ToggleFlag(ctx context.Context, id, field string) (*model.Project, error) {
	m.toggled = append(m.toggled, field)
	if m.toggleFunc != nil {
		return m.toggleFunc(ctx, id, field)
	}
	return &model.Project{}, nil
}

func (m *mockProjectRepo) Stats(ctx context.Context) (*model.ProjectStats, error) {
	return &model.ProjectStats{ByStatus: map[string]int64{}, ByCategory: map[string]int64{}}, nil
}

func strPtr(s string) *string { return &s }

func TestProjectService_Create_Defaults(t *testing.T) {
	repo := &mockProjectRepo{}
	svc := NewProjectService(repo)

	p := &model.Project{Name: "Harbor Tower", Description: "d", Category: "Commercial"}
	if err := svc.Create(context.Background(), p, "admin-1"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if p.Status != "Planning" {
		t.Errorf("expected default status Planning, got %q", p.Status)
	}
	if !p.IsActive {
		t.Error("new project should be active")
	}
	if p.CreatedBy != "admin-1" || p.UpdatedBy != "admin-1" {
		t.Errorf("creator not stamped: %q/%q", p.CreatedBy, p.UpdatedBy)
	}
}

func TestProjectService_Create_DemotesExtraMainImages(t *testing.T) {
	repo := &mockProjectRepo{}
	svc := NewProjectService(repo)

	p := &model.Project{
		Name: "x", Description: "d", Category: "Commercial",
		Images: []model.ProjectImage{
			{URL: "a.jpg", IsMain: true},
			{URL: "b.jpg", IsMain: true},
		},
	}
	if err := svc.Create(context.Background(), p, "admin-1"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	mains := 0
	for _, img := range p.Images {
		if img.IsMain {
			mains++
		}
	}
	if mains != 1 {
		t.Errorf("expected exactly one main image, got %d", mains)
	}
}

func TestProjectService_Update_MergesOnlyProvidedFields(t *testing.T) {
	existing := &model.Project{
		Name:        "Old Name",
		Description: "Old description",
		Category:    "Commercial",
		Status:      "Planning",
		Location:    "Springfield",
	}
	repo := &mockProjectRepo{findByID: existing}
	svc := NewProjectService(repo)

	got, err := svc.Update(context.Background(), "some-id", ProjectPatch{
		Name:   strPtr("New Name"),
		Status: strPtr("In Progress"),
	}, "admin-2")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.Name != "New Name" {
		t.Errorf("name not updated: %q", got.Name)
	}
	if got.Status != "In Progress" {
		t.Errorf("status not updated: %q", got.Status)
	}
	if got.Description != "Old description" || got.Location != "Springfield" {
		t.Error("untouched fields must be preserved")
	}
	if got.UpdatedBy != "admin-2" {
		t.Errorf("updatedBy not stamped: %q", got.UpdatedBy)
	}
	if repo.updated == nil {
		t.Error("expected repository Update to be called")
	}
}

func TestProjectService_Toggles_UseDistinctFields(t *testing.T) {
	repo := &mockProjectRepo{}
	svc := NewProjectService(repo)

	if _, err := svc.ToggleFeatured(context.Background(), "id"); err != nil {
		t.Fatalf("ToggleFeatured failed: %v", err)
	}
	if _, err := svc.ToggleActive(context.Background(), "id"); err != nil {
		t.Fatalf("ToggleActive failed: %v", err)
	}
	if len(repo.toggled) != 2 || repo.toggled[0] != "isFeatured" || repo.toggled[1] != "isActive" {
		t.Errorf("unexpected toggle fields: %v", repo.toggled)
	}
}

func TestProjectService_Get_DecoratesDuration(t *testing.T) {
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC)
	repo := &mockProjectRepo{findByID: &model.Project{
		IsActive:  true,
		StartDate: &start,
		EndDate:   &end,
	}}
	svc := NewProjectService(repo)

	p, err := svc.Get(context.Background(), "id", true)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if p.DurationMonths != 9 {
		t.Errorf("expected durationMonths 9, got %d", p.DurationMonths)
	}
}

func TestProjectService_Get_PublicHidesInactive(t *testing.T) {
	repo := &mockProjectRepo{findByID: &model.Project{IsActive: false}}
	svc := NewProjectService(repo)

	if _, err := svc.Get(context.Background(), "id", true); err == nil {
		t.Error("public fetch of an inactive project should be not found")
	}
	if _, err := svc.Get(context.Background(), "id", false); err != nil {
		t.Errorf("admin fetch of an inactive project should succeed, got %v", err)
	}
}

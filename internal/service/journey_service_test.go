package service

import (
	"context"
	"testing"

	"github.com/structura/backend/internal/model"
)

type mockJourneyRepo struct {
	active []*model.JourneyEntry
}

func (m *mockJourneyRepo) List(ctx context.Context, opts model.JourneyListOptions) ([]*model.JourneyEntry, int64, error) {
	return nil, 0, nil
}

func (m *mockJourneyRepo) ListAllActive(ctx context.Context) ([]*model.JourneyEntry, error) {
	return m.active, nil
}

func (m *mockJourneyRepo) FindByID(ctx context.Context, id string) (*model.JourneyEntry, error) {
	return nil, nil
}

func (m *mockJourneyRepo) Create(ctx context.Context, e *model.JourneyEntry) error { return nil }
func (m *mockJourneyRepo) Update(ctx context.Context, e *model.JourneyEntry) error { return nil }
func (m *mockJourneyRepo) Delete(ctx context.Context, id string) error             { return nil }

func (m *mockJourneyRepo) ToggleFlag(ctx context.Context, id, field string) (*model.JourneyEntry, error) {
	return nil, nil
}

func TestJourneyService_Timeline_GroupsByYear(t *testing.T) {
	repo := &mockJourneyRepo{active: []*model.JourneyEntry{
		{Title: "ISO certification", Year: 2024},
		{Title: "100th project", Year: 2024},
		{Title: "Second office", Year: 2021},
		{Title: "Founded", Year: 2010},
	}}
	svc := NewJourneyService(repo)

	years, err := svc.Timeline(context.Background())
	if err != nil {
		t.Fatalf("Timeline failed: %v", err)
	}
	if len(years) != 3 {
		t.Fatalf("expected 3 year groups, got %d", len(years))
	}
	if years[0].Year != 2024 || len(years[0].Entries) != 2 {
		t.Errorf("unexpected first group: year=%d entries=%d", years[0].Year, len(years[0].Entries))
	}
	if years[1].Year != 2021 || years[2].Year != 2010 {
		t.Errorf("groups out of order: %d, %d", years[1].Year, years[2].Year)
	}
}

func TestJourneyService_Timeline_Empty(t *testing.T) {
	svc := NewJourneyService(&mockJourneyRepo{})

	years, err := svc.Timeline(context.Background())
	if err != nil {
		t.Fatalf("Timeline failed: %v", err)
	}
	if len(years) != 0 {
		t.Errorf("expected no groups, got %d", len(years))
	}
}

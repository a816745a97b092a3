package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/service"
	"github.com/structura/backend/pkg/auth"
)

type mockProjectService struct {
	listFunc           func(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, int64, error)
	getFunc            func(ctx context.Context, id string, publicOnly bool) (*model.Project, error)
	createFunc         func(ctx context.Context, p *model.Project, createdBy string) error
	toggleFeaturedFunc func(ctx context.Context, id string) (*model.Project, error)
}

func (m *mockProjectService) List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, 0, nil
}

func (m *mockProjectService) Get(ctx context.Context, id string, publicOnly bool) (*model.Project, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id, publicOnly)
	}
	return &model.Project{}, nil
}

func (m *mockProjectService) Create(ctx context.Context, p *model.Project, createdBy string) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p, createdBy)
	}
	return nil
}

func (m *mockProjectService) Update(ctx context.Context, id string, patch service.ProjectPatch, updatedBy string) (*model.Project, error) {
	return &model.Project{}, nil
}

func (m *mockProjectService) Delete(ctx context.Context, id string) error { return nil }

func (m *mockProjectService) ToggleFeatured(ctx context.Context, id string) (*model.Project, error) {
	if m.toggleFeaturedFunc != nil {
		return m.toggleFeaturedFunc(ctx, id)
	}
	return &model.Project{}, nil
}

func (m *mockProjectService) ToggleActive(ctx context.Context, id string) (*model.Project, error) {
	return &model.Project{}, nil
}

func (m *mockProjectService) Stats(ctx context.Context) (*model.ProjectStats, error) {
	return &model.ProjectStats{}, nil
}

func adminContext(r *http.Request) *http.Request {
	identity := &auth.Identity{ID: "1", Username: "carol", Role: model.RoleAdmin}
	return r.WithContext(auth.WithIdentity(r.Context(), identity))
}

func TestProjectHandler_List_PublicForcesActiveOnly(t *testing.T) {
	var gotOpts model.ProjectListOptions
	mock := &mockProjectService{
		listFunc: func(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, int64, error) {
			gotOpts = opts
			return nil, 0, nil
		},
	}
	h := NewProjectHandler(mock, testPages())

	req := httptest.NewRequest(http.MethodGet, "/api/projects?active=false", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !gotOpts.ActiveOnly {
		t.Error("expected ActiveOnly for anonymous requests")
	}
	if gotOpts.Active != nil {
		t.Error("anonymous requests must not control the active filter")
	}
}

func TestProjectHandler_List_AdminSeesEverything(t *testing.T) {
	var gotOpts model.ProjectListOptions
	mock := &mockProjectService{
		listFunc: func(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, int64, error) {
			gotOpts = opts
			return nil, 0, nil
		},
	}
	h := NewProjectHandler(mock, testPages())

	req := adminContext(httptest.NewRequest(http.MethodGet, "/api/projects?active=false", nil))
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if gotOpts.ActiveOnly {
		t.Error("admins must not be restricted to active projects")
	}
	if gotOpts.Active == nil || *gotOpts.Active {
		t.Errorf("expected active=false filter, got %v", gotOpts.Active)
	}
}

func TestProjectHandler_List_EmptyIsArrayNotNull(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{}, testPages())

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("expected empty array data, got %s", rec.Body.String())
	}
}

func TestProjectHandler_Create_Validates(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{}, testPages())

	body := `{"name":"Tower","description":"A tower.","category":"Skyscraper"}`
	req := adminContext(httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown category, got %d", rec.Code)
	}
}

func TestProjectHandler_Create_Success(t *testing.T) {
	var createdBy string
	mock := &mockProjectService{
		createFunc: func(ctx context.Context, p *model.Project, by string) error {
			createdBy = by
			return nil
		},
	}
	h := NewProjectHandler(mock, testPages())

	body := `{"name":"Riverside Flats","description":"48-unit residential block.","category":"Residential","status":"In Progress"}`
	req := adminContext(httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if createdBy != "carol" {
		t.Errorf("createdBy = %q", createdBy)
	}

	var resp struct {
		Success bool           `json:"success"`
		Data    *model.Project `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Data == nil || resp.Data.Name != "Riverside Flats" {
		t.Errorf("data = %+v", resp.Data)
	}
}

func TestProjectHandler_Get_PublicOnlyFlag(t *testing.T) {
	var gotPublicOnly bool
	mock := &mockProjectService{
		getFunc: func(ctx context.Context, id string, publicOnly bool) (*model.Project, error) {
			gotPublicOnly = publicOnly
			return &model.Project{}, nil
		},
	}
	h := NewProjectHandler(mock, testPages())

	req := httptest.NewRequest(http.MethodGet, "/api/projects/abc", nil)
	req.SetPathValue("id", "abc")
	h.Get(httptest.NewRecorder(), req)
	if !gotPublicOnly {
		t.Error("anonymous Get must be public-only")
	}

	req = adminContext(req)
	h.Get(httptest.NewRecorder(), req)
	if gotPublicOnly {
		t.Error("admin Get must not be public-only")
	}
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/repository"
	"github.com/structura/backend/internal/service"
	"github.com/structura/backend/pkg/auth"
)

type mockAdminService struct {
	createFunc func(ctx context.Context, admin *model.Admin, password string) error
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockAdminService) List(ctx context.Context, opts model.AdminListOptions) ([]*model.Admin, int64, error) {
	return nil, 0, nil
}

func (m *mockAdminService) Get(ctx context.Context, id string) (*model.Admin, error) {
	return &model.Admin{}, nil
}

func (m *mockAdminService) Create(ctx context.Context, admin *model.Admin, password string) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, admin, password)
	}
	return nil
}

func (m *mockAdminService) Update(ctx context.Context, id string, patch service.AdminPatch) (*model.Admin, error) {
	return &model.Admin{}, nil
}

func (m *mockAdminService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAdminService) ToggleActive(ctx context.Context, id string) (*model.Admin, error) {
	return &model.Admin{}, nil
}

func superContext(r *http.Request) *http.Request {
	identity := &auth.Identity{ID: "self-id", Username: "root", Role: model.RoleSuperAdmin}
	return r.WithContext(auth.WithIdentity(r.Context(), identity))
}

func TestAdminHandler_Create_NormalizesEmail(t *testing.T) {
	var created *model.Admin
	mock := &mockAdminService{
		createFunc: func(ctx context.Context, admin *model.Admin, password string) error {
			created = admin
			return nil
		},
	}
	h := NewAdminHandler(mock, testPages())

	body := `{"username":"newadmin","email":"  Admin@Example.COM ","password":"s3cret-pass"}`
	req := superContext(httptest.NewRequest(http.MethodPost, "/api/admins", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if created.Email != "admin@example.com" {
		t.Errorf("email = %q", created.Email)
	}
}

func TestAdminHandler_Create_ShortPassword(t *testing.T) {
	h := NewAdminHandler(&mockAdminService{}, testPages())

	body := `{"username":"newadmin","email":"a@b.com","password":"short"}`
	req := superContext(httptest.NewRequest(http.MethodPost, "/api/admins", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestAdminHandler_Delete_SelfRejected(t *testing.T) {
	deleted := false
	mock := &mockAdminService{
		deleteFunc: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}
	h := NewAdminHandler(mock, testPages())

	req := superContext(httptest.NewRequest(http.MethodDelete, "/api/admins/self-id", nil))
	req.SetPathValue("id", "self-id")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for self-delete, got %d", rec.Code)
	}
	if deleted {
		t.Error("self-delete must not reach the service")
	}
}

func TestAdminHandler_Update_SelfDemotionRejected(t *testing.T) {
	h := NewAdminHandler(&mockAdminService{}, testPages())

	body := `{"role":"admin"}`
	req := superContext(httptest.NewRequest(http.MethodPut, "/api/admins/self-id", strings.NewReader(body)))
	req.SetPathValue("id", "self-id")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for self-demotion, got %d", rec.Code)
	}
}

func TestAdminHandler_Create_DuplicateUsername(t *testing.T) {
	mock := &mockAdminService{
		createFunc: func(ctx context.Context, admin *model.Admin, password string) error {
			return repository.ErrDuplicate
		},
	}
	h := NewAdminHandler(mock, testPages())

	body := `{"username":"taken","email":"taken@example.com","password":"s3cret-pass"}`
	req := superContext(httptest.NewRequest(http.MethodPost, "/api/admins", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for duplicate username, got %d", rec.Code)
	}
}

package handler

import (
	"net/http"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/service"
	"github.com/structura/backend/internal/validate"
	"github.com/structura/backend/pkg/auth"
)

// AdminHandler handles administrator account management (super-admin only).
type AdminHandler struct {
	adminService service.AdminService
	pages        PageLimits
}

func NewAdminHandler(adminService service.AdminService, pages PageLimits) *AdminHandler {
	return &AdminHandler{adminService: adminService, pages: pages}
}

type createAdminRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=admin super-admin"`
}

type updateAdminRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin super-admin"`
	IsActive *bool   `json:"isActive"`
}

// List handles GET /api/admins.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, h.pages)
	if err != nil {
		respondFail(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := model.AdminListOptions{
		Role:   r.URL.Query().Get("role"),
		Active: boolParam(r, "active"),
		Search: r.URL.Query().Get("search"),
		Page:   page,
	}

	admins, total, err := h.adminService.List(r.Context(), opts)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if admins == nil {
		admins = []*model.Admin{}
	}

	respondList(w, admins, model.NewPagination(page, total))
}

// Get handles GET /api/admins/{id}.
func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	admin, err := h.adminService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, admin)
}

// Create handles POST /api/admins.
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAdminRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, errs)
		return
	}

	admin := &model.Admin{
		Username: req.Username,
		Email:    model.NormalizeEmail(req.Email),
		Role:     req.Role,
	}
	if err := h.adminService.Create(r.Context(), admin, req.Password); err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, admin)
}

// Update handles PUT /api/admins/{id}.
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateAdminRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, errs)
		return
	}

	// Demoting or deactivating your own account is rejected so the system
	// cannot end up without a reachable super-admin.
	identity, _ := auth.IdentityFromContext(r.Context())
	id := r.PathValue("id")
	if id == identity.ID {
		if req.Role != nil && *req.Role != model.RoleSuperAdmin {
			respondFail(w, http.StatusBadRequest, "cannot change your own role")
			return
		}
		if req.IsActive != nil && !*req.IsActive {
			respondFail(w, http.StatusBadRequest, "cannot deactivate your own account")
			return
		}
	}

	patch := service.AdminPatch{
		Username: req.Username,
		Role:     req.Role,
		IsActive: req.IsActive,
		Password: req.Password,
	}
	if req.Email != nil {
		normalized := model.NormalizeEmail(*req.Email)
		patch.Email = &normalized
	}

	admin, err := h.adminService.Update(r.Context(), id, patch)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, admin)
}

// Delete handles DELETE /api/admins/{id}.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())
	id := r.PathValue("id")
	if id == identity.ID {
		respondFail(w, http.StatusBadRequest, "cannot delete your own account")
		return
	}

	if err := h.adminService.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, "admin deleted")
}

// ToggleActive handles PATCH /api/admins/{id}/toggle-active.
func (h *AdminHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())
	id := r.PathValue("id")
	if id == identity.ID {
		respondFail(w, http.StatusBadRequest, "cannot deactivate your own account")
		return
	}

	admin, err := h.adminService.ToggleActive(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, admin)
}

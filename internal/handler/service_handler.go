package handler

import (
	"net/http"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/service"
	"github.com/structura/backend/internal/validate"
	"github.com/structura/backend/pkg/auth"
)

// ServiceHandler handles the public service catalog and admin catalog CRUD.
type ServiceHandler struct {
	catalog service.CatalogService
	pages   PageLimits
}

func NewServiceHandler(catalog service.CatalogService, pages PageLimits) *ServiceHandler {
	return &ServiceHandler{catalog: catalog, pages: pages}
}

type createServiceRequest struct {
	Name           string                `json:"name" validate:"required,max=200"`
	Description    string                `json:"description" validate:"required"`
	Category       string                `json:"category" validate:"required,oneof=Residential Commercial Industrial Infrastructure Renovation Consultation"`
	Pricing        *model.ServicePricing `json:"pricing"`
	Specifications *model.ServiceSpecs   `json:"specifications"`
	Features       []string              `json:"features"`
	IsFeatured     bool                  `json:"isFeatured"`
	Order          int                   `json:"order" validate:"gte=0"`
}

type updateServiceRequest struct {
	Name           string                `json:"name" validate:"omitempty,max=200"`
	Description    *string               `json:"description"`
	Category       string                `json:"category" validate:"omitempty,oneof=Residential Commercial Industrial Infrastructure Renovation Consultation"`
	Pricing        *model.ServicePricing `json:"pricing"`
	Specifications *model.ServiceSpecs   `json:"specifications"`
	Features       []string              `json:"features"`
	IsFeatured     *bool                 `json:"isFeatured"`
	IsActive       *bool                 `json:"isActive"`
	Order          *int                  `json:"order" validate:"omitempty,gte=0"`
}

func (req createServiceRequest) pricing() model.ServicePricing {
	if req.Pricing == nil {
		return model.ServicePricing{}
	}
	return *req.Pricing
}

// List handles GET /api/services.
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, h.pages)
	if err != nil {
		respondFail(w, http.StatusBadRequest, err.Error())
		return
	}

	_, isAdmin := auth.IdentityFromContext(r.Context())
	opts := model.ServiceListOptions{
		Category:   r.URL.Query().Get("category"),
		Search:     r.URL.Query().Get("search"),
		Featured:   boolParam(r, "featured"),
		ActiveOnly: !isAdmin,
		Page:       page,
	}
	if isAdmin {
		opts.Active = boolParam(r, "active")
	}

	services, total, err := h.catalog.List(r.Context(), opts)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if services == nil {
		services = []*model.Service{}
	}

	respondList(w, services, model.NewPagination(page, total))
}

// Get handles GET /api/services/{id}.
func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	_, isAdmin := auth.IdentityFromContext(r.Context())
	svc, err := h.catalog.Get(r.Context(), r.PathValue("id"), !isAdmin)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, svc)
}

// Create handles POST /api/services.
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, errs)
		return
	}

	identity, _ := auth.IdentityFromContext(r.Context())
	svc := &model.Service{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Pricing:     req.pricing(),
		Features:    req.Features,
		IsFeatured:  req.IsFeatured,
		Order:       req.Order,
	}
	if req.Specifications != nil {
		svc.Specifications = *req.Specifications
	}

	if err := h.catalog.Create(r.Context(), svc, identity.Username); err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, svc)
}

// Update handles PUT /api/services/{id}.
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, errs)
		return
	}

	patch := service.ServicePatch{
		Description:    req.Description,
		Pricing:        req.Pricing,
		Specifications: req.Specifications,
		Features:       req.Features,
		IsFeatured:     req.IsFeatured,
		IsActive:       req.IsActive,
		Order:          req.Order,
	}
	if req.Name != "" {
		patch.Name = &req.Name
	}
	if req.Category != "" {
		patch.Category = &req.Category
	}

	identity, _ := auth.IdentityFromContext(r.Context())
	svc, err := h.catalog.Update(r.Context(), r.PathValue("id"), patch, identity.Username)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, svc)
}

// Delete handles DELETE /api/services/{id}.
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, "service deleted")
}

// ToggleFeatured handles PATCH /api/services/{id}/toggle-featured.
func (h *ServiceHandler) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	svc, err := h.catalog.ToggleFeatured(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, svc)
}

// ToggleActive handles PATCH /api/services/{id}/toggle-active.
func (h *ServiceHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	svc, err := h.catalog.ToggleActive(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, svc)
}

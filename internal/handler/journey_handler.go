package handler

import (
	"net/http"
	"strconv"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/service"
	"github.com/structura/backend/internal/validate"
	"github.com/structura/backend/pkg/auth"
)

// JourneyHandler handles the company timeline and admin journey CRUD.
type JourneyHandler struct {
	journeyService service.JourneyService
	pages          PageLimits
}

func NewJourneyHandler(journeyService service.JourneyService, pages PageLimits) *JourneyHandler {
	return &JourneyHandler{journeyService: journeyService, pages: pages}
}

type createJourneyRequest struct {
	Title       string                `json:"title" validate:"required,max=200"`
	Description string                `json:"description" validate:"required"`
	Year        int                   `json:"year" validate:"required,gte=1900,lte=2100"`
	Month       int                   `json:"month" validate:"omitempty,gte=1,lte=12"`
	Type        string                `json:"type" validate:"required,oneof=Milestone Achievement Award Expansion Project Partnership"`
	Category    string                `json:"category"`
	Metrics     *model.JourneyMetrics `json:"metrics"`
	Highlights  []string              `json:"highlights"`
	Tags        []string              `json:"tags"`
	IsFeatured  bool                  `json:"isFeatured"`
	Order       int                   `json:"order" validate:"gte=0"`
}

type updateJourneyRequest struct {
	Title       string                `json:"title" validate:"omitempty,max=200"`
	Description *string               `json:"description"`
	Year        *int                  `json:"year" validate:"omitempty,gte=1900,lte=2100"`
	Month       *int                  `json:"month" validate:"omitempty,gte=1,lte=12"`
	Type        string                `json:"type" validate:"omitempty,oneof=Milestone Achievement Award Expansion Project Partnership"`
	Category    *string               `json:"category"`
	Metrics     *model.JourneyMetrics `json:"metrics"`
	Highlights  []string              `json:"highlights"`
	Tags        []string              `json:"tags"`
	IsFeatured  *bool                 `json:"isFeatured"`
	IsActive    *bool                 `json:"isActive"`
	Order       *int                  `json:"order" validate:"omitempty,gte=0"`
}

// List handles GET /api/journey.
func (h *JourneyHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, h.pages)
	if err != nil {
		respondFail(w, http.StatusBadRequest, err.Error())
		return
	}

	_, isAdmin := auth.IdentityFromContext(r.Context())
	opts := model.JourneyListOptions{
		Type:       r.URL.Query().Get("type"),
		Search:     r.URL.Query().Get("search"),
		Featured:   boolParam(r, "featured"),
		ActiveOnly: !isAdmin,
		Page:       page,
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondFail(w, http.StatusBadRequest, "year must be an integer")
			return
		}
		opts.Year = n
	}
	if isAdmin {
		opts.Active = boolParam(r, "active")
	}

	entries, total, err := h.journeyService.List(r.Context(), opts)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if entries == nil {
		entries = []*model.JourneyEntry{}
	}

	respondList(w, entries, model.NewPagination(page, total))
}

// Timeline handles GET /api/journey/timeline: active entries grouped by
// year, newest year first.
func (h *JourneyHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	years, err := h.journeyService.Timeline(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if years == nil {
		years = []*model.TimelineYear{}
	}
	respondData(w, http.StatusOK, years)
}

// Get handles GET /api/journey/{id}.
func (h *JourneyHandler) Get(w http.ResponseWriter, r *http.Request) {
	_, isAdmin := auth.IdentityFromContext(r.Context())
	entry, err := h.journeyService.Get(r.Context(), r.PathValue("id"), !isAdmin)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, entry)
}

// Create handles POST /api/journey.
func (h *JourneyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createJourneyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, errs)
		return
	}

	identity, _ := auth.IdentityFromContext(r.Context())
	entry := &model.JourneyEntry{
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
		Month:       req.Month,
		Type:        req.Type,
		Category:    req.Category,
		Highlights:  req.Highlights,
		Tags:        req.Tags,
		IsFeatured:  req.IsFeatured,
		Order:       req.Order,
	}
	if req.Metrics != nil {
		entry.Metrics = *req.Metrics
	}

	if err := h.journeyService.Create(r.Context(), entry, identity.Username); err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, entry)
}

// Update handles PUT /api/journey/{id}.
func (h *JourneyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateJourneyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, errs)
		return
	}

	patch := service.JourneyPatch{
		Description: req.Description,
		Year:        req.Year,
		Month:       req.Month,
		Category:    req.Category,
		Metrics:     req.Metrics,
		Highlights:  req.Highlights,
		Tags:        req.Tags,
		IsFeatured:  req.IsFeatured,
		IsActive:    req.IsActive,
		Order:       req.Order,
	}
	if req.Title != "" {
		patch.Title = &req.Title
	}
	if req.Type != "" {
		patch.Type = &req.Type
	}

	identity, _ := auth.IdentityFromContext(r.Context())
	entry, err := h.journeyService.Update(r.Context(), r.PathValue("id"), patch, identity.Username)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, entry)
}

// Delete handles DELETE /api/journey/{id}.
func (h *JourneyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.journeyService.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, "journey entry deleted")
}

// ToggleFeatured handles PATCH /api/journey/{id}/toggle-featured.
func (h *JourneyHandler) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	entry, err := h.journeyService.ToggleFeatured(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, entry)
}

// ToggleActive handles PATCH /api/journey/{id}/toggle-active.
func (h *JourneyHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	entry, err := h.journeyService.ToggleActive(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, entry)
}

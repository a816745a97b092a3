package handler

import (
	"net/http"
	"time"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/service"
	"github.com/structura/backend/internal/validate"
	"github.com/structura/backend/pkg/auth"
)

// ProjectHandler handles the public portfolio and admin project CRUD.
type ProjectHandler struct {
	projectService service.ProjectService
	pages          PageLimits
}

func NewProjectHandler(projectService service.ProjectService, pages PageLimits) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, pages: pages}
}

type createProjectRequest struct {
	Name           string               `json:"name" validate:"required,max=200"`
	Description    string               `json:"description" validate:"required"`
	Category       string               `json:"category" validate:"required,oneof=Residential Commercial Industrial Infrastructure Renovation"`
	Location       string               `json:"location"`
	Client         string               `json:"client"`
	StartDate      *time.Time           `json:"startDate"`
	EndDate        *time.Time           `json:"endDate"`
	Status         string               `json:"status" validate:"omitempty,oneof='Planning' 'In Progress' 'Completed' 'On Hold'"`
	Budget         string               `json:"budget"`
	Images         []model.ProjectImage `json:"images"`
	Features       []string             `json:"features"`
	Specifications *model.ProjectSpecs  `json:"specifications"`
	Highlights     []string             `json:"highlights"`
	IsFeatured     bool                 `json:"isFeatured"`
}

type updateProjectRequest struct {
	Name           string               `json:"name" validate:"omitempty,max=200"`
	Description    *string              `json:"description"`
	Category       string               `json:"category" validate:"omitempty,oneof=Residential Commercial Industrial Infrastructure Renovation"`
	Location       *string              `json:"location"`
	Client         *string              `json:"client"`
	StartDate      *time.Time           `json:"startDate"`
	EndDate        *time.Time           `json:"endDate"`
	Status         string               `json:"status" validate:"omitempty,oneof='Planning' 'In Progress' 'Completed' 'On Hold'"`
	Budget         *string              `json:"budget"`
	Images         []model.ProjectImage `json:"images"`
	Features       []string             `json:"features"`
	Specifications *model.ProjectSpecs  `json:"specifications"`
	Highlights     []string             `json:"highlights"`
	IsFeatured     *bool                `json:"isFeatured"`
	IsActive       *bool                `json:"isActive"`
}

// List handles GET /api/projects. Visitors see active projects only;
// authenticated administrators see everything and may filter on active.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, h.pages)
	if err != nil {
		respondFail(w, http.StatusBadRequest, err.Error())
		return
	}

	_, isAdmin := auth.IdentityFromContext(r.Context())
	opts := model.ProjectListOptions{
		Category:   r.URL.Query().Get("category"),
		Status:     r.URL.Query().Get("status"),
		Search:     r.URL.Query().Get("search"),
		Featured:   boolParam(r, "featured"),
		ActiveOnly: !isAdmin,
		Page:       page,
	}
	if isAdmin {
		opts.Active = boolParam(r, "active")
	}

	projects, total, err := h.projectService.List(r.Context(), opts)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}

	respondList(w, projects, model.NewPagination(page, total))
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	_, isAdmin := auth.IdentityFromContext(r.Context())
	project, err := h.projectService.Get(r.Context(), r.PathValue("id"), !isAdmin)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, project)
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, errs)
		return
	}

	identity, _ := auth.IdentityFromContext(r.Context())
	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Client:      req.Client,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
		Budget:      req.Budget,
		Images:      req.Images,
		Features:    req.Features,
		Highlights:  req.Highlights,
		IsFeatured:  req.IsFeatured,
	}
	if req.Specifications != nil {
		project.Specifications = *req.Specifications
	}

	if err := h.projectService.Create(r.Context(), project, identity.Username); err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, project)
}

// Update handles PUT /api/projects/{id}. Absent fields keep their stored
// values.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, errs)
		return
	}

	patch := service.ProjectPatch{
		Description:    req.Description,
		Location:       req.Location,
		Client:         req.Client,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Budget:         req.Budget,
		Images:         req.Images,
		Features:       req.Features,
		Specifications: req.Specifications,
		Highlights:     req.Highlights,
		IsFeatured:     req.IsFeatured,
		IsActive:       req.IsActive,
	}
	if req.Name != "" {
		patch.Name = &req.Name
	}
	if req.Category != "" {
		patch.Category = &req.Category
	}
	if req.Status != "" {
		patch.Status = &req.Status
	}

	identity, _ := auth.IdentityFromContext(r.Context())
	project, err := h.projectService.Update(r.Context(), r.PathValue("id"), patch, identity.Username)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, project)
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, "project deleted")
}

// ToggleFeatured handles PATCH /api/projects/{id}/toggle-featured.
func (h *ProjectHandler) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.ToggleFeatured(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, project)
}

// ToggleActive handles PATCH /api/projects/{id}/toggle-active.
func (h *ProjectHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.ToggleActive(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, project)
}

// Stats handles GET /api/projects/stats/overview.
func (h *ProjectHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.projectService.Stats(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, stats)
}

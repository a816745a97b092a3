package handler

import (
	"net/http"
	"time"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/service"
	"github.com/structura/backend/internal/validate"
	"github.com/structura/backend/pkg/auth"
)

// ContactHandler handles public form submission and the admin contact
// workflow.
type ContactHandler struct {
	contactService service.ContactService
	pages          PageLimits
}

func NewContactHandler(contactService service.ContactService, pages PageLimits) *ContactHandler {
	return &ContactHandler{contactService: contactService, pages: pages}
}

type submitContactRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
	Subject     string `json:"subject" validate:"omitempty,max=200"`
	Message     string `json:"message" validate:"required,max=5000"`
	Service     string `json:"service"`
	ProjectType string `json:"projectType"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
	Location    string `json:"location"`
	Source      string `json:"source"`
}

// Submit handles POST /api/contacts. Unauthenticated; the client IP and
// user agent are recorded with the submission.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitContactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, errs)
		return
	}

	contact := &model.Contact{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     req.Subject,
		Message:     req.Message,
		Service:     req.Service,
		ProjectType: req.ProjectType,
		Budget:      req.Budget,
		Timeline:    req.Timeline,
		Location:    req.Location,
		Source:      req.Source,
		IPAddress:   clientIP(r, 1),
		UserAgent:   r.UserAgent(),
	}

	if err := h.contactService.Submit(r.Context(), contact); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{
		Success: true,
		Message: "thank you for reaching out, we will get back to you shortly",
		Data:    contact,
	})
}

// List handles GET /api/contacts.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, h.pages)
	if err != nil {
		respondFail(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := model.ContactListOptions{
		Status:     r.URL.Query().Get("status"),
		Priority:   r.URL.Query().Get("priority"),
		AssignedTo: r.URL.Query().Get("assignedTo"),
		Unread:     boolParam(r, "unread"),
		Search:     r.URL.Query().Get("search"),
		Page:       page,
	}

	contacts, total, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if contacts == nil {
		contacts = []*model.Contact{}
	}

	respondList(w, contacts, model.NewPagination(page, total))
}

// Get handles GET /api/contacts/{id}. Reading a submission marks it read.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contactService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, contact)
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof='New' 'In Progress' 'Contacted' 'Quoted' 'Converted' 'Closed'"`
}

// SetStatus handles PATCH /api/contacts/{id}/status.
func (h *ContactHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, errs)
		return
	}

	contact, err := h.contactService.SetStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, contact)
}

type setPriorityRequest struct {
	Priority string `json:"priority" validate:"required,oneof=Low Medium High"`
}

// SetPriority handles PATCH /api/contacts/{id}/priority.
func (h *ContactHandler) SetPriority(w http.ResponseWriter, r *http.Request) {
	var req setPriorityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, errs)
		return
	}

	contact, err := h.contactService.SetPriority(r.Context(), r.PathValue("id"), req.Priority)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, contact)
}

type assignRequest struct {
	AssignedTo string `json:"assignedTo" validate:"required"`
}

// Assign handles PATCH /api/contacts/{id}/assign.
func (h *ContactHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, errs)
		return
	}

	contact, err := h.contactService.Assign(r.Context(), r.PathValue("id"), req.AssignedTo)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, contact)
}

type followUpRequest struct {
	FollowUpDate *time.Time `json:"followUpDate"`
}

// SetFollowUp handles PATCH /api/contacts/{id}/follow-up. A null date
// clears the reminder.
func (h *ContactHandler) SetFollowUp(w http.ResponseWriter, r *http.Request) {
	var req followUpRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contact, err := h.contactService.SetFollowUp(r.Context(), r.PathValue("id"), req.FollowUpDate)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, contact)
}

type addNoteRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// AddNote handles POST /api/contacts/{id}/notes. The note author is the
// authenticated administrator.
func (h *ContactHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	var req addNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, errs)
		return
	}

	identity, _ := auth.IdentityFromContext(r.Context())
	contact, err := h.contactService.AddNote(r.Context(), r.PathValue("id"), req.Text, identity.Username)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, contact)
}

// Delete handles DELETE /api/contacts/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contactService.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, "contact deleted")
}

// Stats handles GET /api/contacts/stats/overview.
func (h *ContactHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.contactService.Stats(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, stats)
}

package handler

import (
	"net/http"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/service"
	"github.com/structura/backend/internal/validate"
)

// NewsletterHandler handles public subscription and the admin subscriber
// list.
type NewsletterHandler struct {
	newsletterService service.NewsletterService
	pages             PageLimits
}

func NewNewsletterHandler(newsletterService service.NewsletterService, pages PageLimits) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService, pages: pages}
}

type subscribeRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Source string `json:"source"`
}

// Subscribe handles POST /api/newsletter/subscribe.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, errs)
		return
	}

	sub, err := h.newsletterService.Subscribe(r.Context(), req.Email, req.Source)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{
		Success: true,
		Message: "subscribed to the newsletter",
		Data:    sub,
	})
}

type unsubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Unsubscribe handles POST /api/newsletter/unsubscribe. Soft delete: the
// record stays, inactive.
func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req unsubscribeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, errs)
		return
	}

	if err := h.newsletterService.Unsubscribe(r.Context(), req.Email); err != nil {
		respondError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "unsubscribed from the newsletter")
}

// List handles GET /api/newsletter/subscribers.
func (h *NewsletterHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, h.pages)
	if err != nil {
		respondFail(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := model.SubscriberListOptions{
		Active: boolParam(r, "active"),
		Search: r.URL.Query().Get("search"),
		Page:   page,
	}

	subs, total, err := h.newsletterService.List(r.Context(), opts)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if subs == nil {
		subs = []*model.Subscriber{}
	}

	respondList(w, subs, model.NewPagination(page, total))
}

// Delete handles DELETE /api/newsletter/subscribers/{id}. Hard delete,
// unlike unsubscribe.
func (h *NewsletterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.newsletterService.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, "subscriber deleted")
}

package handler

import (
	"net/http"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/service"
	"github.com/structura/backend/internal/validate"
	"github.com/structura/backend/pkg/auth"
)

// AuthHandler handles administrator login and self-service endpoints.
type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	Admin *model.Admin `json:"admin"`
}

// Login handles POST /api/auth/login. The login field accepts either
// username or email.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, errs)
		return
	}

	token, admin, err := h.authService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, loginResponse{Token: token, Admin: admin})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respondFail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	admin, err := h.authService.Me(r.Context(), identity.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, admin)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
}

// ChangePassword handles POST /api/auth/change-password.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respondFail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, errs)
		return
	}

	if err := h.authService.ChangePassword(r.Context(), identity.ID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "password updated")
}

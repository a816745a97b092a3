package handler

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/structura/backend/internal/config"
	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/service"
	"github.com/structura/backend/internal/storage"
	"github.com/structura/backend/pkg/auth"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Cfg        *config.Config
	Client     *mongo.Client
	Auth       service.AuthService
	Projects   service.ProjectService
	Catalog    service.CatalogService
	Journey    service.JourneyService
	Contacts   service.ContactService
	Newsletter service.NewsletterService
	Admins     service.AdminService
	Store      storage.Storage
}

// Routes builds the complete handler tree: every route, wrapped in the
// shared middleware chain.
func Routes(d Deps) http.Handler {
	pages := PageLimits{Default: d.Cfg.DefaultPageSize, Max: d.Cfg.MaxPageSize}
	secret := []byte(d.Cfg.JWTSecret)
	debugErrors = d.Cfg.IsDevelopment()

	authHandler := NewAuthHandler(d.Auth)
	projectHandler := NewProjectHandler(d.Projects, pages)
	serviceHandler := NewServiceHandler(d.Catalog, pages)
	journeyHandler := NewJourneyHandler(d.Journey, pages)
	contactHandler := NewContactHandler(d.Contacts, pages)
	newsletterHandler := NewNewsletterHandler(d.Newsletter, pages)
	adminHandler := NewAdminHandler(d.Admins, pages)
	uploadHandler := NewUploadHandler(d.Store, d.Cfg.MaxUploadBytes)
	healthHandler := NewHealthHandler(d.Client)

	requireAuth := auth.RequireAuth(secret, d.Auth)
	optionalAuth := auth.OptionalAuth(secret, d.Auth)
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return requireAuth(auth.RequireRole(model.RoleAdmin, model.RoleSuperAdmin)(h))
	}
	superOnly := func(h http.HandlerFunc) http.Handler {
		return requireAuth(auth.RequireRole(model.RoleSuperAdmin)(h))
	}
	public := func(h http.HandlerFunc) http.Handler {
		return optionalAuth(h)
	}

	formLimiter := NewRateLimiter(d.Cfg.FormRatePerMinute)
	limited := func(h http.HandlerFunc) http.Handler {
		return formLimiter.Middleware(h)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", healthHandler.Health)

	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("GET /api/auth/me", requireAuth(http.HandlerFunc(authHandler.Me)))
	mux.Handle("POST /api/auth/change-password", requireAuth(http.HandlerFunc(authHandler.ChangePassword)))

	mux.Handle("GET /api/projects", public(projectHandler.List))
	mux.Handle("GET /api/projects/{id}", public(projectHandler.Get))
	mux.Handle("POST /api/projects", adminOnly(projectHandler.Create))
	mux.Handle("PUT /api/projects/{id}", adminOnly(projectHandler.Update))
	mux.Handle("DELETE /api/projects/{id}", adminOnly(projectHandler.Delete))
	mux.Handle("PATCH /api/projects/{id}/toggle-featured", adminOnly(projectHandler.ToggleFeatured))
	mux.Handle("PATCH /api/projects/{id}/toggle-active", adminOnly(projectHandler.ToggleActive))
	mux.Handle("GET /api/projects/stats/overview", adminOnly(projectHandler.Stats))

	mux.Handle("GET /api/services", public(serviceHandler.List))
	mux.Handle("GET /api/services/{id}", public(serviceHandler.Get))
	mux.Handle("POST /api/services", adminOnly(serviceHandler.Create))
	mux.Handle("PUT /api/services/{id}", adminOnly(serviceHandler.Update))
	mux.Handle("DELETE /api/services/{id}", adminOnly(serviceHandler.Delete))
	mux.Handle("PATCH /api/services/{id}/toggle-featured", adminOnly(serviceHandler.ToggleFeatured))
	mux.Handle("PATCH /api/services/{id}/toggle-active", adminOnly(serviceHandler.ToggleActive))

	mux.Handle("GET /api/journey", public(journeyHandler.List))
	mux.Handle("GET /api/journey/timeline", public(journeyHandler.Timeline))
	mux.Handle("GET /api/journey/{id}", public(journeyHandler.Get))
	mux.Handle("POST /api/journey", adminOnly(journeyHandler.Create))
	mux.Handle("PUT /api/journey/{id}", adminOnly(journeyHandler.Update))
	mux.Handle("DELETE /api/journey/{id}", adminOnly(journeyHandler.Delete))
	mux.Handle("PATCH /api/journey/{id}/toggle-featured", adminOnly(journeyHandler.ToggleFeatured))
	mux.Handle("PATCH /api/journey/{id}/toggle-active", adminOnly(journeyHandler.ToggleActive))

	mux.Handle("POST /api/contacts", limited(contactHandler.Submit))
	mux.Handle("GET /api/contacts", adminOnly(contactHandler.List))
	mux.Handle("GET /api/contacts/{id}", adminOnly(contactHandler.Get))
	mux.Handle("PATCH /api/contacts/{id}/status", adminOnly(contactHandler.SetStatus))
	mux.Handle("PATCH /api/contacts/{id}/priority", adminOnly(contactHandler.SetPriority))
	mux.Handle("PATCH /api/contacts/{id}/assign", adminOnly(contactHandler.Assign))
	mux.Handle("PATCH /api/contacts/{id}/follow-up", adminOnly(contactHandler.SetFollowUp))
	mux.Handle("POST /api/contacts/{id}/notes", adminOnly(contactHandler.AddNote))
	mux.Handle("DELETE /api/contacts/{id}", adminOnly(contactHandler.Delete))
	mux.Handle("GET /api/contacts/stats/overview", adminOnly(contactHandler.Stats))

	mux.Handle("POST /api/newsletter/subscribe", limited(newsletterHandler.Subscribe))
	mux.Handle("POST /api/newsletter/unsubscribe", limited(newsletterHandler.Unsubscribe))
	mux.Handle("GET /api/newsletter/subscribers", adminOnly(newsletterHandler.List))
	mux.Handle("DELETE /api/newsletter/subscribers/{id}", adminOnly(newsletterHandler.Delete))

	mux.Handle("GET /api/admins", superOnly(adminHandler.List))
	mux.Handle("POST /api/admins", superOnly(adminHandler.Create))
	mux.Handle("GET /api/admins/{id}", superOnly(adminHandler.Get))
	mux.Handle("PUT /api/admins/{id}", superOnly(adminHandler.Update))
	mux.Handle("DELETE /api/admins/{id}", superOnly(adminHandler.Delete))
	mux.Handle("PATCH /api/admins/{id}/toggle-active", superOnly(adminHandler.ToggleActive))

	mux.Handle("POST /api/uploads", adminOnly(uploadHandler.Upload))

	// Static serving for uploaded images.
	prefix := d.Cfg.UploadURLPrefix + "/"
	mux.Handle("GET "+prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(d.Cfg.UploadDir))))

	// Unknown API paths get the envelope, not the default text/plain 404.
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		respondFail(w, http.StatusNotFound, "resource not found")
	})

	var h http.Handler = mux
	h = CORS(d.Cfg.CORSOrigin)(h)
	h = SecurityHeaders(h)
	h = Recover(h)
	h = RequestLogger(h)
	return h
}

package transport

import (
	"net/http"

	"shopstock/internal/domain"
	"shopstock/internal/middleware"
	"shopstock/internal/policy"
	"shopstock/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateProviderRequest is the payload for registering a supplier.
type CreateProviderRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
	ContactName string `json:"contactName" validate:"required"`
	Phone       string `json:"phone" validate:"required,min=7"`
	Email       string `json:"email" validate:"required,email"`
	Brand       string `json:"brand"`
}

// UpdateProviderRequest is a partial supplier update.
type UpdateProviderRequest struct {
	CompanyName *string `json:"companyName"`
	ContactName *string `json:"contactName"`
	Phone       *string `json:"phone" validate:"omitempty,min=7"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Brand       *string `json:"brand"`
}

// ProviderHandler handles HTTP requests for supplier management
type ProviderHandler struct {
	providers *store.ProviderStore
	logger    *zap.Logger
}

// NewProviderHandler creates a new ProviderHandler
func NewProviderHandler(providers *store.ProviderStore, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{providers: providers, logger: logger}
}

// RegisterRoutes registers all provider routes
func (h *ProviderHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/providers", func(r chi.Router) {
		r.Use(authMiddleware)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireView(policy.ResourceProviders, h.logger))
			r.Get("/", h.List)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireMutate(policy.ResourceProviders, h.logger))
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Post("/{id}/deactivate", h.Deactivate)
			r.Post("/{id}/activate", h.Activate)
		})
	})
}

// List returns all providers
func (h *ProviderHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.providers.List())
}

// Create registers a new provider
func (h *ProviderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProviderRequest
	if decodeAndRespond(w, r, h.logger, &req) {
		return
	}

	provider, err := h.providers.Create(r.Context(), domain.Provider{
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Brand:       req.Brand,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Provider created", zap.String("provider_id", provider.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, provider)
}

// Update applies a partial edit to a provider
func (h *ProviderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProviderRequest
	if decodeAndRespond(w, r, h.logger, &req) {
		return
	}

	err := h.providers.Update(r.Context(), chi.URLParam(r, "id"), store.ProviderPatch{
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Brand:       req.Brand,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "provider updated"})
}

// Deactivate soft-deletes a provider without touching the products or
// orders that reference it
func (h *ProviderHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.providers.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "provider deactivated"})
}

// Activate restores a soft-deleted provider
func (h *ProviderHandler) Activate(w http.ResponseWriter, r *http.Request) {
	if err := h.providers.Activate(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "provider activated"})
}

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

// CreateUserRequest is the payload for registering an account.
type CreateUserRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=Administrator Employee"`
	Password string `json:"password" validate:"required,min=4"`
}

// UpdateUserRequest is a partial account update.
type UpdateUserRequest struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=Administrator Employee"`
	Password *string `json:"password" validate:"omitempty,min=4"`
}

// UserHandler handles HTTP requests for account management
type UserHandler struct {
	users  *store.UserStore
	logger *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users *store.UserStore, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// RegisterRoutes registers all user management routes. Both view and
// mutation are administrator-only per the access policy.
func (h *UserHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/users", func(r chi.Router) {
		r.Use(authMiddleware)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireView(policy.ResourceUsers, h.logger))
			r.Get("/", h.List)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireMutate(policy.ResourceUsers, h.logger))
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Post("/{id}/deactivate", h.Deactivate)
			r.Post("/{id}/activate", h.Activate)
		})
	})
}

// List returns all accounts as profiles, without passwords
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users := h.users.List()
	profiles := make([]UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, UserProfile{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Role:     string(u.Role),
			IsActive: u.IsActive,
		})
	}
	middleware.RespondWithJSON(w, http.StatusOK, profiles)
}

// Create registers a new account
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if decodeAndRespond(w, r, h.logger, &req) {
		return
	}

	user, err := h.users.Create(r.Context(), domain.User{
		FullName: req.FullName,
		Email:    req.Email,
		Role:     domain.Role(req.Role),
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("User created", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	middleware.RespondWithJSON(w, http.StatusCreated, UserProfile{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     string(user.Role),
		IsActive: user.IsActive,
	})
}

// Update applies a partial edit to an account
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if decodeAndRespond(w, r, h.logger, &req) {
		return
	}

	patch := store.UserPatch{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		patch.Role = &role
	}

	if err := h.users.Update(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "user updated"})
}

// Deactivate blocks an account from logging in
func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "user deactivated"})
}

// Activate restores a deactivated account
func (h *UserHandler) Activate(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Activate(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "user activated"})
}

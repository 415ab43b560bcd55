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

// CreateProductRequest is the payload for registering a catalog item.
// Stock starts at whatever the form reports on hand; afterwards it moves
// only through orders and sales.
type CreateProductRequest struct {
	Name       string   `json:"name" validate:"required"`
	Code       string   `json:"code" validate:"required"`
	Brand      string   `json:"brand"`
	Category   string   `json:"category"`
	CostPrice  *float64 `json:"costPrice" validate:"omitempty,gte=0"`
	Price      float64  `json:"price" validate:"gte=0"`
	Stock      int      `json:"stock"`
	ProviderID string   `json:"providerId" validate:"required"`
	MinStock   int      `json:"minStock" validate:"gte=0"`
}

// UpdateProductRequest is a partial catalog update; absent fields are left
// unchanged. Stock cannot be patched here.
type UpdateProductRequest struct {
	Name       *string  `json:"name"`
	Code       *string  `json:"code"`
	Brand      *string  `json:"brand"`
	Category   *string  `json:"category"`
	CostPrice  *float64 `json:"costPrice" validate:"omitempty,gte=0"`
	Price      *float64 `json:"price" validate:"omitempty,gte=0"`
	ProviderID *string  `json:"providerId"`
	MinStock   *int     `json:"minStock" validate:"omitempty,gte=0"`
}

// SetStockRequest is the administrator-only manual stock correction.
type SetStockRequest struct {
	Stock int `json:"stock"`
}

// ProductHandler handles HTTP requests for the product catalog
type ProductHandler struct {
	products *store.ProductStore
	logger   *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products *store.ProductStore, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{products: products, logger: logger}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/products", func(r chi.Router) {
		r.Use(authMiddleware)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireView(policy.ResourceProducts, h.logger))
			r.Get("/", h.List)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireMutate(policy.ResourceProducts, h.logger))
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Post("/{id}/deactivate", h.Deactivate)
			r.Post("/{id}/activate", h.Activate)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdministrator(h.logger))
			r.Put("/{id}/stock", h.SetStock)
		})
	})
}

// List returns the whole catalog, active and inactive
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.products.List())
}

// Create registers a new product
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if decodeAndRespond(w, r, h.logger, &req) {
		return
	}

	product, err := h.products.Create(r.Context(), domain.Product{
		Name:       req.Name,
		Code:       req.Code,
		Brand:      req.Brand,
		Category:   req.Category,
		CostPrice:  req.CostPrice,
		Price:      req.Price,
		Stock:      req.Stock,
		ProviderID: req.ProviderID,
		MinStock:   req.MinStock,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Product created", zap.String("product_id", product.ID), zap.String("code", product.Code))
	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

// Update applies a partial edit to a product
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if decodeAndRespond(w, r, h.logger, &req) {
		return
	}

	id := chi.URLParam(r, "id")
	err := h.products.Update(r.Context(), id, store.ProductPatch{
		Name:       req.Name,
		Code:       req.Code,
		Brand:      req.Brand,
		Category:   req.Category,
		CostPrice:  req.CostPrice,
		Price:      req.Price,
		ProviderID: req.ProviderID,
		MinStock:   req.MinStock,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "product updated"})
}

// Deactivate soft-deletes a product
func (h *ProductHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.products.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "product deactivated"})
}

// Activate restores a soft-deleted product
func (h *ProductHandler) Activate(w http.ResponseWriter, r *http.Request) {
	if err := h.products.Activate(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "product activated"})
}

// SetStock overwrites a product's stock as a manual correction
func (h *ProductHandler) SetStock(w http.ResponseWriter, r *http.Request) {
	var req SetStockRequest
	if decodeAndRespond(w, r, h.logger, &req) {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.products.SetStock(r.Context(), id, req.Stock); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Stock manually corrected", zap.String("product_id", id), zap.Int("stock", req.Stock))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "stock updated"})
}

package transport

import (
	"net/http"

	"shopstock/internal/domain"
	"shopstock/internal/middleware"
	"shopstock/internal/policy"
	"shopstock/internal/service"
	"shopstock/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SaleLineRequest is one cart line of a new sale.
type SaleLineRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateSaleRequest is the payload for registering a sale. No date field:
// the sale date is fixed server-side to the day of creation.
type CreateSaleRequest struct {
	Products      []SaleLineRequest `json:"products" validate:"required,min=1,dive"`
	PaymentMethod string            `json:"paymentMethod" validate:"required,oneof=Cash Card Transfer"`
}

// SaleHandler handles HTTP requests for the point of sale
type SaleHandler struct {
	sales   *store.SaleStore
	service service.SaleService
	logger  *zap.Logger
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(sales *store.SaleStore, svc service.SaleService, logger *zap.Logger) *SaleHandler {
	return &SaleHandler{sales: sales, service: svc, logger: logger}
}

// RegisterRoutes registers all sale routes
func (h *SaleHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/sales", func(r chi.Router) {
		r.Use(authMiddleware)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireView(policy.ResourceSales, h.logger))
			r.Get("/", h.List)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireMutate(policy.ResourceSales, h.logger))
			r.Post("/", h.Create)
		})
	})
}

// List returns the sale history
func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.sales.List())
}

// Create registers a sale and applies its stock effect
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if decodeAndRespond(w, r, h.logger, &req) {
		return
	}

	role, ok := middleware.GetUserRole(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	lines := make([]service.SaleLineInput, 0, len(req.Products))
	for _, l := range req.Products {
		lines = append(lines, service.SaleLineInput{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	sale, err := h.service.CreateSale(r.Context(), role, service.SaleInput{
		Lines:         lines,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Sale created",
		zap.String("sale_id", sale.ID),
		zap.Float64("total", sale.Total),
		zap.String("payment_method", string(sale.PaymentMethod)),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, sale)
}

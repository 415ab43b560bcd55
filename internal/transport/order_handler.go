package transport

import (
	"net/http"

	"shopstock/internal/middleware"
	"shopstock/internal/policy"
	"shopstock/internal/service"
	"shopstock/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderLineRequest is one product line of a new purchase order.
type OrderLineRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest is the payload for registering a purchase order.
type CreateOrderRequest struct {
	ProviderID    string             `json:"providerId" validate:"required"`
	ReceptionDate string             `json:"receptionDate" validate:"omitempty,datetime=2006-01-02"`
	GuideNumber   string             `json:"guideNumber"`
	Notes         string             `json:"notes"`
	Products      []OrderLineRequest `json:"products" validate:"required,min=1,dive"`
}

// OrderHandler handles HTTP requests for purchase orders
type OrderHandler struct {
	orders  *store.OrderStore
	service service.OrderService
	logger  *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders *store.OrderStore, svc service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, service: svc, logger: logger}
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(authMiddleware)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireView(policy.ResourceOrders, h.logger))
			r.Get("/", h.List)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireMutate(policy.ResourceOrders, h.logger))
			r.Post("/", h.Create)
		})
	})
}

// List returns the order history
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.orders.List())
}

// Create registers a purchase order and applies its stock effect
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if decodeAndRespond(w, r, h.logger, &req) {
		return
	}

	role, ok := middleware.GetUserRole(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	lines := make([]service.OrderLineInput, 0, len(req.Products))
	for _, l := range req.Products {
		lines = append(lines, service.OrderLineInput{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	order, err := h.service.CreateOrder(r.Context(), role, service.OrderInput{
		ProviderID:    req.ProviderID,
		ReceptionDate: req.ReceptionDate,
		GuideNumber:   req.GuideNumber,
		Notes:         req.Notes,
		Lines:         lines,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.String("provider_id", order.ProviderID),
		zap.Int("lines", len(order.Products)),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, order)
}

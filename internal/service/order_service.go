package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopstock/internal/domain"
	"shopstock/internal/ledger"
	"shopstock/internal/policy"
	"shopstock/internal/store"
)

var (
	ErrForbidden       = errors.New("role is not permitted to perform this operation")
	ErrNoLines         = errors.New("at least one product line is required")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// OrderLineInput is one requested product line for a new order.
type OrderLineInput struct {
	ProductID string
	Quantity  int
}

// OrderInput is everything the caller supplies to create a purchase
// order. ReceptionDate defaults to today when empty.
type OrderInput struct {
	ProviderID    string
	ReceptionDate string
	GuideNumber   string
	Notes         string
	Lines         []OrderLineInput
}

// OrderService registers purchase orders and routes their stock effect
// through the ledger.
type OrderService interface {
	CreateOrder(ctx context.Context, role domain.Role, input OrderInput) (domain.Order, error)
}

type orderService struct {
	orders    *store.OrderStore
	products  *store.ProductStore
	providers *store.ProviderStore
	stock     *ledger.StockLedger
	now       func() time.Time
}

// NewOrderService creates an OrderService over the given stores and
// ledger.
func NewOrderService(orders *store.OrderStore, products *store.ProductStore, providers *store.ProviderStore, stock *ledger.StockLedger) OrderService {
	return &orderService{
		orders:    orders,
		products:  products,
		providers: providers,
		stock:     stock,
		now:       time.Now,
	}
}

// CreateOrder validates the input, snapshots product names, derives the
// total cost from each product's cost price, appends the order and applies
// its stock deltas. Orders are always created already received.
func (s *orderService) CreateOrder(ctx context.Context, role domain.Role, input OrderInput) (domain.Order, error) {
	if !policy.CanMutate(role, policy.ResourceOrders) {
		return domain.Order{}, ErrForbidden
	}

	if len(input.Lines) == 0 {
		return domain.Order{}, ErrNoLines
	}

	if _, err := s.providers.Get(input.ProviderID); err != nil {
		return domain.Order{}, fmt.Errorf("provider %q: %w", input.ProviderID, err)
	}

	lines := make([]domain.OrderLine, 0, len(input.Lines))
	var totalCost float64
	for _, in := range input.Lines {
		if in.Quantity <= 0 {
			return domain.Order{}, ErrInvalidQuantity
		}
		product, err := s.products.Get(in.ProductID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("product %q: %w", in.ProductID, err)
		}
		lines = append(lines, domain.OrderLine{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  in.Quantity,
		})
		totalCost += product.UnitCost() * float64(in.Quantity)
	}

	receptionDate := input.ReceptionDate
	if receptionDate == "" {
		receptionDate = domain.Day(s.now())
	}

	order, err := s.orders.Create(ctx, domain.Order{
		ProviderID:    input.ProviderID,
		ReceptionDate: receptionDate,
		GuideNumber:   input.GuideNumber,
		Notes:         input.Notes,
		Status:        domain.OrderStatusReceived,
		Products:      lines,
		TotalCost:     totalCost,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.stock.ApplyOrder(ctx, order)
	return order, nil
}

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
	ErrInsufficientStock = errors.New("insufficient stock for requested quantity")
	ErrProductInactive   = errors.New("product is not active")
	ErrInvalidPayment    = errors.New("unknown payment method")
)

// SaleLineInput is one cart line for a new sale.
type SaleLineInput struct {
	ProductID string
	Quantity  int
}

// SaleInput is everything the caller supplies to register a sale. The
// sale date is never part of the input; it is fixed to the day of
// creation.
type SaleInput struct {
	Lines         []SaleLineInput
	PaymentMethod domain.PaymentMethod
}

// SaleService registers point-of-sale transactions and routes their stock
// effect through the ledger.
type SaleService interface {
	CreateSale(ctx context.Context, role domain.Role, input SaleInput) (domain.Sale, error)
}

type saleService struct {
	sales    *store.SaleStore
	products *store.ProductStore
	stock    *ledger.StockLedger
	now      func() time.Time
}

// NewSaleService creates a SaleService over the given stores and ledger.
func NewSaleService(sales *store.SaleStore, products *store.ProductStore, stock *ledger.StockLedger) SaleService {
	return &saleService{
		sales:    sales,
		products: products,
		stock:    stock,
		now:      time.Now,
	}
}

// CreateSale validates the cart, snapshots product names and prices,
// computes the total, appends the sale and applies its stock deltas.
//
// The stock check here is the only floor in the system: it rejects a cart
// line exceeding the available stock before anything is committed. The
// ledger itself trusts its caller and will record negative stock without
// complaint, so callers that skip this boundary get the legacy behavior.
func (s *saleService) CreateSale(ctx context.Context, role domain.Role, input SaleInput) (domain.Sale, error) {
	if !policy.CanMutate(role, policy.ResourceSales) {
		return domain.Sale{}, ErrForbidden
	}

	if len(input.Lines) == 0 {
		return domain.Sale{}, ErrNoLines
	}
	if !input.PaymentMethod.Valid() {
		return domain.Sale{}, ErrInvalidPayment
	}

	lines := make([]domain.SaleLine, 0, len(input.Lines))
	var total float64
	for _, in := range input.Lines {
		if in.Quantity <= 0 {
			return domain.Sale{}, ErrInvalidQuantity
		}
		product, err := s.products.Get(in.ProductID)
		if err != nil {
			return domain.Sale{}, fmt.Errorf("product %q: %w", in.ProductID, err)
		}
		if !product.IsActive {
			return domain.Sale{}, fmt.Errorf("product %q: %w", in.ProductID, ErrProductInactive)
		}
		if in.Quantity > product.Stock {
			return domain.Sale{}, fmt.Errorf("product %q has %d in stock, requested %d: %w",
				in.ProductID, product.Stock, in.Quantity, ErrInsufficientStock)
		}
		lines = append(lines, domain.SaleLine{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  in.Quantity,
			Price:     product.Price,
		})
		total += product.Price * float64(in.Quantity)
	}

	sale, err := s.sales.Create(ctx, domain.Sale{
		Date:          domain.Day(s.now()),
		Products:      lines,
		Total:         total,
		PaymentMethod: input.PaymentMethod,
	})
	if err != nil {
		return domain.Sale{}, fmt.Errorf("failed to create sale: %w", err)
	}

	s.stock.ApplySale(ctx, sale)
	return sale, nil
}

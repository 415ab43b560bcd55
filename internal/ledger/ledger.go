// Package ledger keeps Product.Stock consistent with the net effect of all
// purchase orders and sales. Both creation paths go through here rather
// than reaching into the product store ad hoc, so "stock reflects net
// orders minus net sales" is enforced in exactly one place.
package ledger

import (
	"context"

	"shopstock/internal/domain"
	"shopstock/internal/store"

	"go.uber.org/zap"
)

// StockLedger applies signed stock deltas from orders and sales to the
// product store.
type StockLedger struct {
	products *store.ProductStore
	logger   *zap.Logger
}

// New creates a StockLedger over the given product store.
func New(products *store.ProductStore, logger *zap.Logger) *StockLedger {
	return &StockLedger{products: products, logger: logger}
}

// ApplyOrder adds each line's quantity to the referenced product's stock.
// Lines are applied in array order and are independent of each other, so
// the final stock depends only on the multiset of deltas: repeated product
// ids accumulate and distinct ids commute.
//
// A line whose product id does not resolve is skipped with a warning and
// the call still succeeds. Line application is not transactional; a line
// skipped partway through leaves earlier lines applied.
func (l *StockLedger) ApplyOrder(ctx context.Context, order domain.Order) {
	for _, line := range order.Products {
		l.apply(ctx, line.ProductID, line.Quantity)
	}
}

// ApplySale subtracts each line's quantity from the referenced product's
// stock. No stock floor is enforced here: the POS cart check is the only
// guard, and a resulting negative stock is stored as-is.
func (l *StockLedger) ApplySale(ctx context.Context, sale domain.Sale) {
	for _, line := range sale.Products {
		l.apply(ctx, line.ProductID, -line.Quantity)
	}
}

func (l *StockLedger) apply(ctx context.Context, productID string, delta int) {
	if !l.products.AdjustStock(ctx, productID, delta) {
		l.logger.Warn("Stock adjustment skipped, product not found",
			zap.String("product_id", productID),
			zap.Int("delta", delta),
		)
	}
}

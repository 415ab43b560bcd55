package service

import (
	"context"
	"testing"
	"time"

	"shopstock/internal/ledger"
	"shopstock/internal/storage"
	"shopstock/internal/store"

	"go.uber.org/zap"
)

// fixture wires the seeded stores and ledger the way the server does, with
// a frozen clock.
type fixture struct {
	products  *store.ProductStore
	providers *store.ProviderStore
	users     *store.UserStore
	orders    *store.OrderStore
	sales     *store.SaleStore
	stock     *ledger.StockLedger
	now       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctx := context.Background()
	st := storage.NewMemoryStore()
	logger := zap.NewNop()

	products, err := store.NewProductStore(ctx, st, logger)
	if err != nil {
		t.Fatalf("Failed to create product store: %v", err)
	}
	providers, err := store.NewProviderStore(ctx, st, logger)
	if err != nil {
		t.Fatalf("Failed to create provider store: %v", err)
	}
	users, err := store.NewUserStore(ctx, st, logger)
	if err != nil {
		t.Fatalf("Failed to create user store: %v", err)
	}
	orders, err := store.NewOrderStore(ctx, st, logger)
	if err != nil {
		t.Fatalf("Failed to create order store: %v", err)
	}
	sales, err := store.NewSaleStore(ctx, st, logger)
	if err != nil {
		t.Fatalf("Failed to create sale store: %v", err)
	}

	return &fixture{
		products:  products,
		providers: providers,
		users:     users,
		orders:    orders,
		sales:     sales,
		stock:     ledger.New(products, logger),
		now:       time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC),
	}
}

func (f *fixture) saleService() *saleService {
	return &saleService{
		sales:    f.sales,
		products: f.products,
		stock:    f.stock,
		now:      func() time.Time { return f.now },
	}
}

func (f *fixture) orderService() *orderService {
	return &orderService{
		orders:    f.orders,
		products:  f.products,
		providers: f.providers,
		stock:     f.stock,
		now:       func() time.Time { return f.now },
	}
}

package metrics

import (
	"context"
	"encoding/json"
	"testing"

	"shopstock/internal/domain"
	"shopstock/internal/storage"
	"shopstock/internal/store"

	"go.uber.org/zap"
)

// newSnapshotEngine builds an Engine over stores pre-loaded with the given
// collections instead of the seed dataset.
func newSnapshotEngine(t *testing.T, products []domain.Product, providers []domain.Provider, orders []domain.Order, sales []domain.Sale) *Engine {
	t.Helper()

	ctx := context.Background()
	st := storage.NewMemoryStore()
	logger := zap.NewNop()

	saveCollection(t, st, storage.KeyProducts, products)
	saveCollection(t, st, storage.KeyProviders, providers)
	saveCollection(t, st, storage.KeyOrders, orders)
	saveCollection(t, st, storage.KeySales, sales)

	productStore, err := store.NewProductStore(ctx, st, logger)
	if err != nil {
		t.Fatalf("Failed to create product store: %v", err)
	}
	providerStore, err := store.NewProviderStore(ctx, st, logger)
	if err != nil {
		t.Fatalf("Failed to create provider store: %v", err)
	}
	orderStore, err := store.NewOrderStore(ctx, st, logger)
	if err != nil {
		t.Fatalf("Failed to create order store: %v", err)
	}
	saleStore, err := store.NewSaleStore(ctx, st, logger)
	if err != nil {
		t.Fatalf("Failed to create sale store: %v", err)
	}

	return NewEngine(productStore, providerStore, orderStore, saleStore)
}

func saveCollection(t *testing.T, st storage.Store, key string, collection interface{}) {
	t.Helper()

	data, err := json.Marshal(collection)
	if err != nil {
		t.Fatalf("Failed to marshal collection %s: %v", key, err)
	}
	if err := st.Save(context.Background(), key, data); err != nil {
		t.Fatalf("Failed to save collection %s: %v", key, err)
	}
}

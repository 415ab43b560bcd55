package store

import (
	"context"
	"sync"

	"shopstock/internal/domain"
	"shopstock/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SaleStore owns the sale collection. Like orders, sales are an
// append-only log.
type SaleStore struct {
	mu      sync.RWMutex
	sales   []domain.Sale
	storage storage.Store
	logger  *zap.Logger
}

// NewSaleStore loads the sale collection from storage, seeding it on first
// run.
func NewSaleStore(ctx context.Context, st storage.Store, logger *zap.Logger) (*SaleStore, error) {
	s := &SaleStore{storage: st, logger: logger}

	err := loadOrSeed(ctx, st, logger, storage.KeySales, &s.sales, func() interface{} {
		return domain.SeedSales()
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// List returns all sales in insertion order.
func (s *SaleStore) List() []domain.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// Get returns the sale with the given id.
func (s *SaleStore) Get(id string) (domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.sales {
		if s.sales[i].ID == id {
			return s.sales[i], nil
		}
	}
	return domain.Sale{}, ErrSaleNotFound
}

// Create appends a new sale and returns it with its assigned id.
func (s *SaleStore) Create(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sale.ID = uuid.NewString()
	s.sales = append(s.sales, sale)

	persist(ctx, s.storage, s.logger, storage.KeySales, s.sales)
	return sale, nil
}

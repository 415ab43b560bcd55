package store

import (
	"context"
	"sync"

	"shopstock/internal/domain"
	"shopstock/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderStore owns the purchase order collection. Orders are an append-only
// log: there is no update or deactivate operation.
type OrderStore struct {
	mu      sync.RWMutex
	orders  []domain.Order
	storage storage.Store
	logger  *zap.Logger
}

// NewOrderStore loads the order collection from storage, seeding it on
// first run.
func NewOrderStore(ctx context.Context, st storage.Store, logger *zap.Logger) (*OrderStore, error) {
	s := &OrderStore{storage: st, logger: logger}

	err := loadOrSeed(ctx, st, logger, storage.KeyOrders, &s.orders, func() interface{} {
		return domain.SeedOrders()
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// List returns all orders in insertion order.
func (s *OrderStore) List() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Get returns the order with the given id.
func (s *OrderStore) Get(id string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			return s.orders[i], nil
		}
	}
	return domain.Order{}, ErrOrderNotFound
}

// Create appends a new order and returns it with its assigned id.
func (s *OrderStore) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = uuid.NewString()
	s.orders = append(s.orders, o)

	persist(ctx, s.storage, s.logger, storage.KeyOrders, s.orders)
	return o, nil
}

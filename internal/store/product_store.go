package store

import (
	"context"
	"sync"

	"shopstock/internal/domain"
	"shopstock/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductPatch is a partial product update. Nil fields are left unchanged.
// Stock is deliberately absent: stock moves only through the ledger and
// the administrator-only SetStock correction.
type ProductPatch struct {
	Name       *string  `json:"name,omitempty"`
	Code       *string  `json:"code,omitempty"`
	Brand      *string  `json:"brand,omitempty"`
	Category   *string  `json:"category,omitempty"`
	CostPrice  *float64 `json:"costPrice,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	ProviderID *string  `json:"providerId,omitempty"`
	MinStock   *int     `json:"minStock,omitempty"`
}

// ProductStore owns the product collection.
type ProductStore struct {
	mu       sync.RWMutex
	products []domain.Product
	storage  storage.Store
	logger   *zap.Logger
}

// NewProductStore loads the product collection from storage, seeding it on
// first run.
func NewProductStore(ctx context.Context, st storage.Store, logger *zap.Logger) (*ProductStore, error) {
	s := &ProductStore{storage: st, logger: logger}

	err := loadOrSeed(ctx, st, logger, storage.KeyProducts, &s.products, func() interface{} {
		return domain.SeedProducts()
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// List returns all products in insertion order.
func (s *ProductStore) List() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id.
func (s *ProductStore) Get(id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			return s.products[i], nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// FindByCode returns the product with the given business code.
func (s *ProductStore) FindByCode(code string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].Code == code {
			return s.products[i], nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// Create appends a new active product and returns it with its assigned id.
// Ids are random UUIDs, never derived from the collection length, so a
// deactivated record can never cause an id collision.
func (s *ProductStore) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].Code == p.Code {
			return domain.Product{}, ErrProductCodeExists
		}
	}

	p.ID = uuid.NewString()
	p.IsActive = true
	s.products = append(s.products, p)

	persist(ctx, s.storage, s.logger, storage.KeyProducts, s.products)
	return p, nil
}

// Update applies a shallow merge of patch onto the product with the given
// id.
func (s *ProductStore) Update(ctx context.Context, id string, patch ProductPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}

		p := &s.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Code != nil {
			p.Code = *patch.Code
		}
		if patch.Brand != nil {
			p.Brand = *patch.Brand
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.CostPrice != nil {
			p.CostPrice = patch.CostPrice
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.ProviderID != nil {
			p.ProviderID = *patch.ProviderID
		}
		if patch.MinStock != nil {
			p.MinStock = *patch.MinStock
		}

		persist(ctx, s.storage, s.logger, storage.KeyProducts, s.products)
		return nil
	}
	return ErrProductNotFound
}

// Deactivate soft-deletes a product.
func (s *ProductStore) Deactivate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, false)
}

// Activate restores a soft-deleted product.
func (s *ProductStore) Activate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, true)
}

func (s *ProductStore) setActive(ctx context.Context, id string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].IsActive = active
			persist(ctx, s.storage, s.logger, storage.KeyProducts, s.products)
			return nil
		}
	}
	return ErrProductNotFound
}

// AdjustStock adds delta (which may be negative) to a product's stock.
// It reports whether the product was found; a miss is left for the caller
// to decide on, and the resulting stock is allowed to go negative.
// This is the write path reserved for the stock ledger.
func (s *ProductStore) AdjustStock(ctx context.Context, id string, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Stock += delta
			persist(ctx, s.storage, s.logger, storage.KeyProducts, s.products)
			return true
		}
	}
	return false
}

// SetStock overwrites a product's stock. Reserved for manual corrections
// by an administrator; routine movement goes through the ledger.
func (s *ProductStore) SetStock(ctx context.Context, id string, stock int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Stock = stock
			persist(ctx, s.storage, s.logger, storage.KeyProducts, s.products)
			return nil
		}
	}
	return ErrProductNotFound
}

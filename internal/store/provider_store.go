package store

import (
	"context"
	"sync"

	"shopstock/internal/domain"
	"shopstock/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProviderPatch is a partial provider update. Nil fields are left
// unchanged.
type ProviderPatch struct {
	CompanyName *string `json:"companyName,omitempty"`
	ContactName *string `json:"contactName,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Brand       *string `json:"brand,omitempty"`
}

// ProviderStore owns the provider collection.
type ProviderStore struct {
	mu        sync.RWMutex
	providers []domain.Provider
	storage   storage.Store
	logger    *zap.Logger
}

// NewProviderStore loads the provider collection from storage, seeding it
// on first run.
func NewProviderStore(ctx context.Context, st storage.Store, logger *zap.Logger) (*ProviderStore, error) {
	s := &ProviderStore{storage: st, logger: logger}

	err := loadOrSeed(ctx, st, logger, storage.KeyProviders, &s.providers, func() interface{} {
		return domain.SeedProviders()
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// List returns all providers in insertion order.
func (s *ProviderStore) List() []domain.Provider {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Provider, len(s.providers))
	copy(out, s.providers)
	return out
}

// Get returns the provider with the given id.
func (s *ProviderStore) Get(id string) (domain.Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.providers {
		if s.providers[i].ID == id {
			return s.providers[i], nil
		}
	}
	return domain.Provider{}, ErrProviderNotFound
}

// Create appends a new active provider and returns it with its assigned
// id.
func (s *ProviderStore) Create(ctx context.Context, p domain.Provider) (domain.Provider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.NewString()
	p.IsActive = true
	s.providers = append(s.providers, p)

	persist(ctx, s.storage, s.logger, storage.KeyProviders, s.providers)
	return p, nil
}

// Update applies a shallow merge of patch onto the provider with the given
// id.
func (s *ProviderStore) Update(ctx context.Context, id string, patch ProviderPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.providers {
		if s.providers[i].ID != id {
			continue
		}

		p := &s.providers[i]
		if patch.CompanyName != nil {
			p.CompanyName = *patch.CompanyName
		}
		if patch.ContactName != nil {
			p.ContactName = *patch.ContactName
		}
		if patch.Phone != nil {
			p.Phone = *patch.Phone
		}
		if patch.Email != nil {
			p.Email = *patch.Email
		}
		if patch.Brand != nil {
			p.Brand = *patch.Brand
		}

		persist(ctx, s.storage, s.logger, storage.KeyProviders, s.providers)
		return nil
	}
	return ErrProviderNotFound
}

// Deactivate soft-deletes a provider. Products and orders referencing it
// keep their references; nothing cascades.
func (s *ProviderStore) Deactivate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, false)
}

// Activate restores a soft-deleted provider.
func (s *ProviderStore) Activate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, true)
}

func (s *ProviderStore) setActive(ctx context.Context, id string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.providers {
		if s.providers[i].ID == id {
			s.providers[i].IsActive = active
			persist(ctx, s.storage, s.logger, storage.KeyProviders, s.providers)
			return nil
		}
	}
	return ErrProviderNotFound
}

package store

import (
	"context"
	"strings"
	"sync"

	"shopstock/internal/domain"
	"shopstock/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserPatch is a partial user update. Nil fields are left unchanged.
type UserPatch struct {
	FullName *string      `json:"fullName,omitempty"`
	Email    *string      `json:"email,omitempty"`
	Role     *domain.Role `json:"role,omitempty"`
	Password *string      `json:"password,omitempty"`
}

// UserStore owns the user collection.
type UserStore struct {
	mu      sync.RWMutex
	users   []domain.User
	storage storage.Store
	logger  *zap.Logger
}

// NewUserStore loads the user collection from storage, seeding it on first
// run.
func NewUserStore(ctx context.Context, st storage.Store, logger *zap.Logger) (*UserStore, error) {
	s := &UserStore{storage: st, logger: logger}

	err := loadOrSeed(ctx, st, logger, storage.KeyUsers, &s.users, func() interface{} {
		return domain.SeedUsers()
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// List returns all users in insertion order.
func (s *UserStore) List() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

// Get returns the user with the given id.
func (s *UserStore) Get(id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i], nil
		}
	}
	return domain.User{}, ErrUserNotFound
}

// FindByEmail returns the user with the given email, case-insensitively.
func (s *UserStore) FindByEmail(email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			return s.users[i], nil
		}
	}
	return domain.User{}, ErrUserNotFound
}

// Create appends a new active user and returns it with its assigned id.
// Emails are unique across the collection, active or not.
func (s *UserStore) Create(ctx context.Context, u domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, u.Email) {
			return domain.User{}, ErrUserEmailExists
		}
	}

	u.ID = uuid.NewString()
	u.IsActive = true
	s.users = append(s.users, u)

	persist(ctx, s.storage, s.logger, storage.KeyUsers, s.users)
	return u, nil
}

// Update applies a shallow merge of patch onto the user with the given id.
func (s *UserStore) Update(ctx context.Context, id string, patch UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}

		u := &s.users[i]
		if patch.FullName != nil {
			u.FullName = *patch.FullName
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.Password != nil {
			u.Password = *patch.Password
		}

		persist(ctx, s.storage, s.logger, storage.KeyUsers, s.users)
		return nil
	}
	return ErrUserNotFound
}

// Deactivate soft-deletes a user, which also blocks them from logging in.
func (s *UserStore) Deactivate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, false)
}

// Activate restores a soft-deleted user.
func (s *UserStore) Activate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, true)
}

func (s *UserStore) setActive(ctx context.Context, id string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].IsActive = active
			persist(ctx, s.storage, s.logger, storage.KeyUsers, s.users)
			return nil
		}
	}
	return ErrUserNotFound
}

// Package store implements the entity stores: one owner per record
// collection, created once at startup and handed by reference to every
// consumer. Each store loads its collection from durable storage at
// construction (falling back to the built-in seed dataset), serves reads
// from memory, and rewrites the whole collection to storage after every
// mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"shopstock/internal/storage"

	"go.uber.org/zap"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductCodeExists  = errors.New("product with this code already exists")
	ErrProviderNotFound   = errors.New("provider not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserEmailExists    = errors.New("user with this email already exists")
	ErrOrderNotFound      = errors.New("order not found")
	ErrSaleNotFound       = errors.New("sale not found")
)

// persist serializes a whole collection and writes it under key.
// Storage writes are fire-and-forget: on failure the in-memory state
// remains the source of truth and the error is only logged, mirroring how
// the stores treat durable storage as a best-effort mirror of memory.
func persist(ctx context.Context, st storage.Store, logger *zap.Logger, key string, collection interface{}) {
	data, err := json.Marshal(collection)
	if err != nil {
		logger.Error("Failed to serialize collection",
			zap.String("key", key),
			zap.Error(err),
		)
		return
	}

	if err := st.Save(ctx, key, data); err != nil {
		logger.Error("Failed to persist collection",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

// loadOrSeed fills dst from storage when the key exists, otherwise from
// seed. The seeded state is written back immediately so a fresh deployment
// becomes durable before the first mutation.
func loadOrSeed(ctx context.Context, st storage.Store, logger *zap.Logger, key string, dst interface{}, seed func() interface{}) error {
	data, ok, err := st.Load(ctx, key)
	if err != nil {
		return err
	}

	if ok {
		if err := json.Unmarshal(data, dst); err != nil {
			return err
		}
		return nil
	}

	seeded, err := json.Marshal(seed())
	if err != nil {
		return err
	}
	if err := json.Unmarshal(seeded, dst); err != nil {
		return err
	}

	logger.Info("Collection not found in storage, using seed dataset", zap.String("key", key))
	if err := st.Save(ctx, key, seeded); err != nil {
		logger.Error("Failed to persist seed collection",
			zap.String("key", key),
			zap.Error(err),
		)
	}
	return nil
}

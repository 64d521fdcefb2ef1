// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
)

// MetadataRepository is a durable key-value store for small local client state.
type MetadataRepository interface {
	// Get returns the value stored under key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every stored pair.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every stored pair.
	Clear(ctx context.Context) error
}

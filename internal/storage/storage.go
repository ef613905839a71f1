// Package storage provides the key/value persistence layer behind the entity
// store. Every record is a full JSON document written under a string key; there
// are no partial updates and no cross-key transactions.
package storage

import (
	"errors"
	"fmt"

	"github.com/safar/go-storefront/internal/config"
)

var ErrKeyNotFound = errors.New("key not found")

// Backend is the durable surface the storefront persists to. Implementations
// must treat values as opaque bytes.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Open builds the backend selected by the configuration.
func Open(cfg *config.Config) (Backend, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return NewMemory(), nil
	case "file":
		return NewFile(cfg.Storage.Dir)
	case "postgres":
		return NewPostgres(&cfg.Database)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// internal/infrastructure/storage/memory.go
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is the local-only substrate: an in-process map of JSON
// documents. It backs single-node deployments without Redis and doubles as
// the test substrate. Values round-trip through JSON so it honors the same
// serialization contract as the Redis store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func memoryKey(ownerID string, kind Kind) string {
	return fmt.Sprintf("%s:%s", kind, ownerID)
}

// Get retrieves and unmarshals a value
func (s *MemoryStore) Get(ctx context.Context, ownerID string, kind Kind, dest interface{}) error {
	s.mu.RLock()
	data, ok := s.data[memoryKey(ownerID, kind)]
	s.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("memory get %s/%s: decode: %w", kind, ownerID, err)
	}
	return nil
}

// Set marshals and stores a value
func (s *MemoryStore) Set(ctx context.Context, ownerID string, kind Kind, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("memory set %s/%s: encode: %w", kind, ownerID, err)
	}

	s.mu.Lock()
	s.data[memoryKey(ownerID, kind)] = data
	s.mu.Unlock()
	return nil
}

// Delete removes a value; absent keys are not an error
func (s *MemoryStore) Delete(ctx context.Context, ownerID string, kind Kind) error {
	s.mu.Lock()
	delete(s.data, memoryKey(ownerID, kind))
	s.mu.Unlock()
	return nil
}

// Keys lists owner identifiers holding a value of the given kind
func (s *MemoryStore) Keys(ctx context.Context, kind Kind) ([]string, error) {
	prefix := string(kind) + ":"

	s.mu.RLock()
	defer s.mu.RUnlock()

	var owners []string
	for key := range s.data {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			owners = append(owners, key[len(prefix):])
		}
	}
	return owners, nil
}

package storage

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store used by tests and by the demo mode of
// the CLI. FailWrites forces every Write to return an error so callers can
// exercise the persistence-failure path.
type MemoryStore struct {
	mu         sync.RWMutex
	values     map[string][]byte
	FailWrites bool
	writeCount int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Read returns the stored value for key, or ok=false if absent.
func (s *MemoryStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	if err := validateContext(ctx); err != nil {
		return nil, false, err
	}
	if err := validateKey(key); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Write stores value under key.
func (s *MemoryStore) Write(ctx context.Context, key string, value []byte) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites {
		return fmt.Errorf("%w: simulated write failure for key %q", ErrWriteFailed, key)
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	s.writeCount++
	return nil
}

// WriteCount returns how many successful writes the store has accepted.
func (s *MemoryStore) WriteCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writeCount
}

// Seed stores value under key without counting it as a write.
func (s *MemoryStore) Seed(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = []byte(string(value))
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

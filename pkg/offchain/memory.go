package offchain

import (
	"context"
	"sync"
)

// MemoryBackend is an in-process Backend. It serves as the local cache
// when no durable path is configured and as a fake in tests.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

var _ Backend = (*MemoryBackend)(nil)

// NewMemoryBackend creates an empty in-process backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]map[string][]byte)}
}

func (b *MemoryBackend) Get(ctx context.Context, collection, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.data[collection][key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (b *MemoryBackend) Put(ctx context.Context, collection, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.data[collection] == nil {
		b.data[collection] = make(map[string][]byte)
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	b.data[collection][key] = stored
	return nil
}

func (b *MemoryBackend) List(ctx context.Context, collection string, keys []string) (map[string][]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make(map[string][]byte)
	for _, key := range keys {
		if value, ok := b.data[collection][key]; ok {
			out := make([]byte, len(value))
			copy(out, value)
			result[key] = out
		}
	}
	return result, nil
}

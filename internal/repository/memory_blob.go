package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/SerikaYuzuki/WordApp/internal/models"
)

type MemoryBlobR struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemoryBlobRepository() *MemoryBlobR {
	return &MemoryBlobR{blobs: make(map[string][]byte)}
}

func (m *MemoryBlobR) Blob(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, fmt.Errorf("blob %q: %w", key, models.ErrNotFound)
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryBlobR) SaveBlob(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = append([]byte(nil), data...)
	return nil
}

package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSnapshotKeyRequired indicates snapshot operations need a non-empty key.
var ErrSnapshotKeyRequired = fmt.Errorf("store: snapshot key is required")

// SnapshotRepository abstracts durable persistence of store snapshots.
type SnapshotRepository interface {
	Get(ctx context.Context, key string) (*Snapshot, error)
	Put(ctx context.Context, key string, data []byte) (*Snapshot, error)
	Delete(ctx context.Context, key string) error
}

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// MemorySnapshotRepository is an in-memory implementation for scaffolding and tests.
type MemorySnapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[string]*Snapshot
}

// NewMemorySnapshotRepository creates an empty in-memory snapshot repository.
func NewMemorySnapshotRepository() *MemorySnapshotRepository {
	return &MemorySnapshotRepository{
		snapshots: make(map[string]*Snapshot),
	}
}

// Get retrieves a snapshot by key.
func (m *MemorySnapshotRepository) Get(_ context.Context, key string) (*Snapshot, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return nil, ErrSnapshotKeyRequired
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	snap, ok := m.snapshots[trimmed]
	if !ok {
		return nil, &NotFoundError{Resource: "snapshot", Key: trimmed}
	}
	return cloneSnapshot(snap), nil
}

// Put inserts or replaces the snapshot stored under key.
func (m *MemorySnapshotRepository) Put(_ context.Context, key string, data []byte) (*Snapshot, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return nil, ErrSnapshotKeyRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	existing, ok := m.snapshots[trimmed]
	if !ok {
		existing = &Snapshot{
			ID:        uuid.New(),
			Key:       trimmed,
			CreatedAt: now,
		}
	}
	stored := cloneSnapshot(existing)
	stored.Data = append([]byte(nil), data...)
	stored.UpdatedAt = now
	m.snapshots[trimmed] = stored
	return cloneSnapshot(stored), nil
}

// Delete removes the snapshot stored under key, if any.
func (m *MemorySnapshotRepository) Delete(_ context.Context, key string) error {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return ErrSnapshotKeyRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, trimmed)
	return nil
}

func cloneSnapshot(src *Snapshot) *Snapshot {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Data = append([]byte(nil), src.Data...)
	return &copied
}

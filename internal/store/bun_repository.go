package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunSnapshotRepository persists snapshots through a bun-managed database.
type BunSnapshotRepository struct {
	repo repository.Repository[*Snapshot]
}

// NewBunSnapshotRepository constructs a snapshot repository without caching.
func NewBunSnapshotRepository(db *bun.DB) *BunSnapshotRepository {
	return NewBunSnapshotRepositoryWithCache(db, nil, nil)
}

// NewBunSnapshotRepositoryWithCache constructs a snapshot repository with optional caching.
func NewBunSnapshotRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunSnapshotRepository {
	base := newSnapshotRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunSnapshotRepository{repo: wrapped}
}

// Get retrieves a snapshot by key.
func (r *BunSnapshotRepository) Get(ctx context.Context, key string) (*Snapshot, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return nil, ErrSnapshotKeyRequired
	}
	result, err := r.repo.GetByIdentifier(ctx, trimmed)
	if err != nil {
		return nil, mapRepositoryError(err, "snapshot", trimmed)
	}
	return result, nil
}

// Put inserts or replaces the snapshot stored under key.
func (r *BunSnapshotRepository) Put(ctx context.Context, key string, data []byte) (*Snapshot, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return nil, ErrSnapshotKeyRequired
	}

	existing, err := r.Get(ctx, trimmed)
	if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		record := &Snapshot{
			ID:   uuid.New(),
			Key:  trimmed,
			Data: append([]byte(nil), data...),
		}
		created, createErr := r.repo.Create(ctx, record)
		if createErr != nil {
			return nil, createErr
		}
		return created, nil
	}

	existing.Data = append([]byte(nil), data...)
	updated, err := r.repo.Update(ctx, existing,
		repository.UpdateByID(existing.ID.String()),
		repository.UpdateColumns("data", "updated_at"),
	)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the snapshot stored under key, if any.
func (r *BunSnapshotRepository) Delete(ctx context.Context, key string) error {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return ErrSnapshotKeyRequired
	}

	existing, err := r.Get(ctx, trimmed)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return r.repo.Delete(ctx, existing)
}

// EnsureSnapshotSchema creates the snapshots table when it does not exist yet.
func EnsureSnapshotSchema(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*Snapshot)(nil)).IfNotExists().Exec(ctx)
	return err
}

func newSnapshotRepository(db *bun.DB) repository.Repository[*Snapshot] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Snapshot]{
		NewRecord: func() *Snapshot { return &Snapshot{} },
		GetID: func(s *Snapshot) uuid.UUID {
			return s.ID
		},
		SetID: func(s *Snapshot, id uuid.UUID) {
			s.ID = id
		},
		GetIdentifier: func() string {
			return "key"
		},
		GetIdentifierValue: func(s *Snapshot) string {
			if s == nil {
				return ""
			}
			return s.Key
		},
	})
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}

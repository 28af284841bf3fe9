package store_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/nexhomes/nexcms/internal/domain"
	"github.com/nexhomes/nexcms/internal/store"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := bun.NewDB(sqlDB, sqlitedialect.New())
	if _, err := db.NewCreateTable().Model((*store.Snapshot)(nil)).IfNotExists().Exec(context.Background()); err != nil {
		t.Fatalf("create snapshots table: %v", err)
	}
	return db
}

func TestBunSnapshotRepositoryPutThenGet(t *testing.T) {
	ctx := context.Background()
	repo := store.NewBunSnapshotRepository(newTestDB(t))

	created, err := repo.Put(ctx, "nex-cms-store", []byte(`{"projects":[]}`))
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if created.Key != "nex-cms-store" {
		t.Errorf("created key = %q, want %q", created.Key, "nex-cms-store")
	}

	got, err := repo.Get(ctx, "nex-cms-store")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got.Data) != `{"projects":[]}` {
		t.Errorf("Get() data = %s", got.Data)
	}
}

func TestBunSnapshotRepositoryPutOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := store.NewBunSnapshotRepository(newTestDB(t))

	first, err := repo.Put(ctx, "nex-admin-auth", []byte(`{"authenticated":false}`))
	if err != nil {
		t.Fatalf("first Put() error = %v", err)
	}
	second, err := repo.Put(ctx, "nex-admin-auth", []byte(`{"authenticated":true}`))
	if err != nil {
		t.Fatalf("second Put() error = %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("overwrite changed row identity: %s -> %s", first.ID, second.ID)
	}

	got, err := repo.Get(ctx, "nex-admin-auth")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got.Data) != `{"authenticated":true}` {
		t.Errorf("Get() data = %s, want the rewritten payload", got.Data)
	}
}

func TestBunSnapshotRepositoryGetMissing(t *testing.T) {
	repo := store.NewBunSnapshotRepository(newTestDB(t))

	_, err := repo.Get(context.Background(), "never-written")
	var notFound *store.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Get() error = %v, want NotFoundError", err)
	}
	if notFound.Key != "never-written" {
		t.Errorf("NotFoundError key = %q", notFound.Key)
	}
}

func TestBunSnapshotRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := store.NewBunSnapshotRepository(newTestDB(t))

	if _, err := repo.Put(ctx, "nex-cms-store", []byte(`{}`)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := repo.Delete(ctx, "nex-cms-store"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, err := repo.Get(ctx, "nex-cms-store")
	var notFound *store.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Get() after delete error = %v, want NotFoundError", err)
	}
}

func TestStoreBackedByBunRepository(t *testing.T) {
	ctx := context.Background()
	repo := store.NewBunSnapshotRepository(newTestDB(t))

	first := store.New(store.WithSnapshots(repo, "nex-cms-store"))
	if err := first.Init(ctx); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	first.SetJobs(ctx, []*store.JobOpening{
		{Title: "Architect", Department: "Design", Open: true},
	}, domain.SourceServer)

	second := store.New(store.WithSnapshots(repo, "nex-cms-store"))
	if err := second.Init(ctx); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	jobs := second.Jobs()
	if len(jobs) != 1 || jobs[0].Title != "Architect" {
		t.Fatalf("rehydrated jobs = %+v, want the persisted opening", jobs)
	}
}

package di_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nexhomes/nexcms/internal/di"
	"github.com/nexhomes/nexcms/internal/domain"
	"github.com/nexhomes/nexcms/internal/runtimeconfig"
	"github.com/nexhomes/nexcms/internal/store"
)

func testConfig(baseURL string) runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Remote.BaseURL = baseURL
	cfg.Logging.Provider = "noop"
	return cfg
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig("http://localhost/api")
	cfg.Retention.ActivityLimit = 0

	if _, err := di.NewContainer(cfg); err == nil {
		t.Fatal("expected config validation error")
	}
}

func TestContainerWiresServices(t *testing.T) {
	cfg := testConfig("http://localhost/api")

	c, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close(context.Background()) })

	if c.Store() == nil || c.Resolver() == nil || c.Admin() == nil {
		t.Fatal("expected core services to be wired")
	}
	if c.Auth() == nil || c.Dashboard() == nil || c.QueryCache() == nil {
		t.Fatal("expected auxiliary services to be wired")
	}
	if c.Markdown() == nil {
		t.Fatal("expected markdown renderer when the feature is enabled")
	}
	if set := c.Commands(); set == nil || set.PruneActivity == nil || set.RefreshContent == nil {
		t.Fatal("expected maintenance command handlers when the feature is enabled")
	}
	if c.SnapshotRepository() != nil {
		t.Fatal("persistence disabled by default, got a snapshot repository")
	}
}

func TestContainerCommandsFeatureToggle(t *testing.T) {
	cfg := testConfig("http://localhost/api")
	cfg.Features.Commands = false

	c, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close(context.Background()) })

	if c.Commands() != nil {
		t.Fatal("expected no command handlers when the feature is off")
	}
}

func TestContainerMarkdownFeatureToggle(t *testing.T) {
	cfg := testConfig("http://localhost/api")
	cfg.Features.Markdown = false

	c, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close(context.Background()) })

	if c.Markdown() != nil {
		t.Fatal("expected no markdown renderer when the feature is off")
	}
}

func TestContainerUsesProvidedSnapshotRepository(t *testing.T) {
	cfg := testConfig("http://localhost/api")
	cfg.Features.Persistence = true

	repo := store.NewMemorySnapshotRepository()
	c, err := di.NewContainer(cfg, di.WithSnapshotRepository(repo))
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close(context.Background()) })

	if c.SnapshotRepository() != store.SnapshotRepository(repo) {
		t.Fatal("expected the injected snapshot repository to be used")
	}
	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
}

func TestContainerEndToEndDocumentRead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/pages/home" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"version": 3,
			"fields": map[string]any{
				"hero": map[string]any{"title": "Fresh From Server"},
			},
		})
	}))
	t.Cleanup(server.Close)

	cfg := testConfig(server.URL + "/api")
	c, err := di.NewContainer(cfg, di.WithClock(func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}))
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close(context.Background()) })

	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	resolved := c.Resolver().Document(context.Background(), domain.PageHome)
	if resolved.Err != nil {
		t.Fatalf("Document() error = %v", resolved.Err)
	}
	if resolved.Source != domain.SourceServer {
		t.Fatalf("Document() source = %v, want server", resolved.Source)
	}
	hero, ok := resolved.Value.Fields["hero"].(map[string]any)
	if !ok || hero["title"] != "Fresh From Server" {
		t.Fatalf("unexpected document fields: %#v", resolved.Value.Fields)
	}
}

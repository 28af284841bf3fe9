package nexcms_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	nexcms "github.com/nexhomes/nexcms"
	"github.com/nexhomes/nexcms/internal/admin"
	activitycmd "github.com/nexhomes/nexcms/internal/commands/activity"
	"github.com/nexhomes/nexcms/internal/di"
	"github.com/nexhomes/nexcms/internal/domain"
)

type toastRecorder struct {
	mu       sync.Mutex
	messages []string
}

func (t *toastRecorder) Success(_ context.Context, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, "success: "+message)
}

func (t *toastRecorder) Error(_ context.Context, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, "error: "+message)
}

func (t *toastRecorder) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages)
}

// echoBackend answers every admin mutation by echoing the posted record back,
// the way the production REST layer confirms writes.
func echoBackend(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			var payload map[string]any
			_ = json.NewDecoder(r.Body).Decode(&payload)
			_ = json.NewEncoder(w).Encode(payload)
		default:
			http.NotFound(w, r)
		}
	}))
}

func newModule(t *testing.T, baseURL string, opts ...di.Option) *nexcms.Module {
	t.Helper()

	cfg := nexcms.DefaultConfig()
	cfg.Remote.BaseURL = baseURL
	cfg.Logging.Provider = "noop"
	cfg.Auth.Username = "admin"
	cfg.Auth.Password = "nex-secret"

	module, err := nexcms.New(cfg, opts...)
	if err != nil {
		t.Fatalf("nexcms.New() error = %v", err)
	}
	t.Cleanup(func() { _ = module.Close(context.Background()) })

	if err := module.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return module
}

func TestModuleServesSeededContentWhenBackendIsDown(t *testing.T) {
	module := newModule(t, "http://127.0.0.1:1/api")

	resolved := module.Resolver().Document(context.Background(), domain.PageAbout)
	if resolved.Err == nil {
		t.Fatal("expected a fetch error from the unreachable backend")
	}
	if resolved.Source != domain.SourceDefault {
		t.Fatalf("source = %v, want default", resolved.Source)
	}
	hero, ok := resolved.Value.Fields["hero"].(map[string]any)
	if !ok || hero["title"] != "Our Story" {
		t.Fatalf("expected seeded about hero, got %#v", resolved.Value.Fields)
	}
}

func TestModuleAdminMutationUpdatesStoreAndDashboard(t *testing.T) {
	server := echoBackend(t)
	t.Cleanup(server.Close)

	toasts := &toastRecorder{}
	module := newModule(t, server.URL+"/api", di.WithNotifier(toasts))

	before := len(module.Store().Projects())
	created, err := module.Admin().CreateProject(context.Background(), admin.CreateProjectInput{
		Title:       "Nex Harbour Point",
		Description: "Waterfront mixed-use development",
		Location:    "Harbour District",
		Status:      domain.ProjectUpcoming,
	})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	if created.Title != "Nex Harbour Point" {
		t.Fatalf("created title = %q", created.Title)
	}

	if got := len(module.Store().Projects()); got != before+1 {
		t.Fatalf("store projects = %d, want %d", got, before+1)
	}
	if toasts.count() != 1 {
		t.Fatalf("expected one success toast, got %d", toasts.count())
	}

	counts := module.Dashboard().Counts()
	if counts.Projects != before+1 {
		t.Fatalf("dashboard projects = %d, want %d", counts.Projects, before+1)
	}
	activity := module.Dashboard().RecentActivity(1)
	if len(activity) != 1 || activity[0].Entity != domain.EntityProject {
		t.Fatalf("expected project activity entry, got %#v", activity)
	}
}

func TestModuleLoginLifecycle(t *testing.T) {
	module := newModule(t, "http://localhost/api")

	ok, err := module.Auth().Login(context.Background(), "admin", "wrong")
	if err != nil || ok {
		t.Fatalf("Login(wrong) = (%v, %v), want (false, nil)", ok, err)
	}
	if module.Auth().IsAuthenticated() {
		t.Fatal("failed login must not authenticate")
	}

	ok, err = module.Auth().Login(context.Background(), "admin", "nex-secret")
	if err != nil || !ok {
		t.Fatalf("Login(correct) = (%v, %v), want (true, nil)", ok, err)
	}
	if !module.Auth().IsAuthenticated() {
		t.Fatal("expected authenticated session")
	}

	module.Auth().Logout(context.Background())
	if module.Auth().IsAuthenticated() {
		t.Fatal("expected session cleared after logout")
	}
}

func TestModuleMarkdownRenderer(t *testing.T) {
	module := newModule(t, "http://localhost/api")

	html, err := module.Markdown().Render("# Nex Homes\n\nBuilding **better** communities.")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if html == "" {
		t.Fatal("expected rendered HTML")
	}
}

func TestModuleActivityPruneCommand(t *testing.T) {
	server := echoBackend(t)
	t.Cleanup(server.Close)

	module := newModule(t, server.URL+"/api")
	set := module.Commands()
	if set == nil {
		t.Fatal("expected command handlers with the default feature flags")
	}

	if _, err := module.Admin().CreateProject(context.Background(), admin.CreateProjectInput{
		Title:    "Nex Quarry Ridge",
		Location: "Quarry Ridge",
		Status:   domain.ProjectOngoing,
	}); err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	if len(module.Store().Activity()) == 0 {
		t.Fatal("expected an activity entry before pruning")
	}

	if err := set.PruneActivity.Execute(context.Background(), activitycmd.PruneMessage{}); err != nil {
		t.Fatalf("prune command error = %v", err)
	}
	if got := len(module.Store().Activity()); got != 0 {
		t.Fatalf("activity entries after prune = %d, want 0", got)
	}
}

// Command example runs the nexcms module against a throwaway in-process
// backend and prints the resolved content, exercising the read path, an admin
// mutation, and the dashboard aggregates.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	nexcms "github.com/nexhomes/nexcms"
	"github.com/nexhomes/nexcms/internal/admin"
	"github.com/nexhomes/nexcms/internal/di"
	"github.com/nexhomes/nexcms/internal/domain"
)

type consoleNotifier struct{}

func (consoleNotifier) Success(_ context.Context, message string) {
	fmt.Printf("toast/success: %s\n", message)
}

func (consoleNotifier) Error(_ context.Context, message string) {
	fmt.Printf("toast/error: %s\n", message)
}

func main() {
	ctx := context.Background()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
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
	defer backend.Close()

	cfg := nexcms.DefaultConfig()
	cfg.Remote.BaseURL = backend.URL + "/api"
	cfg.Logging.Format = "console"

	module, err := nexcms.New(cfg, di.WithNotifier(consoleNotifier{}))
	if err != nil {
		log.Fatalf("build module: %v", err)
	}
	defer func() { _ = module.Close(ctx) }()

	if err := module.Init(ctx); err != nil {
		log.Fatalf("init module: %v", err)
	}

	about := module.Resolver().Document(ctx, domain.PageAbout)
	fmt.Printf("about page (source=%s): %v\n", about.Source, about.Value.Fields["hero"])

	home := module.Resolver().Home(ctx)
	fmt.Printf("home: %d projects, %d services, %d testimonials\n",
		len(home.Projects.Value), len(home.Services.Value), len(home.Testimonials.Value))

	created, err := module.Admin().CreateProject(ctx, admin.CreateProjectInput{
		Title:       "Nex Harbour Point",
		Description: "Waterfront mixed-use development",
		Location:    "Harbour District",
		Status:      domain.ProjectUpcoming,
	})
	if err != nil {
		log.Fatalf("create project: %v", err)
	}
	fmt.Printf("created project %s (%s)\n", created.Title, created.ID)

	counts := module.Dashboard().Counts()
	fmt.Printf("dashboard: %d projects, %d services, %d jobs\n",
		counts.Projects, counts.Services, counts.Jobs)

	for _, entry := range module.Dashboard().RecentActivity(5) {
		fmt.Printf("activity: %s %s %q\n", entry.Type, entry.Entity, entry.EntityName)
	}

	if renderer := module.Markdown(); renderer != nil {
		html, err := renderer.Render("## Latest\n\nBooking opens **next month**.")
		if err != nil {
			log.Fatalf("render markdown: %v", err)
		}
		fmt.Printf("markdown preview: %s\n", html)
	}
}

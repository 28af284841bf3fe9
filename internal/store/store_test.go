package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nexhomes/nexcms/internal/domain"
	"github.com/nexhomes/nexcms/internal/store"
	"github.com/nexhomes/nexcms/pkg/interfaces"
)

func newSeededStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	s := store.New(opts...)
	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return s
}

func TestInitSeedsDefaults(t *testing.T) {
	s := newSeededStore(t)

	doc, source, ok := s.Document(domain.PageAbout)
	if !ok {
		t.Fatalf("Document(about) not found")
	}
	if source != domain.SourceDefault {
		t.Errorf("about source = %q, want %q", source, domain.SourceDefault)
	}
	hero, ok := doc.Fields["hero"].(map[string]any)
	if !ok {
		t.Fatalf("about document missing hero section")
	}
	if got := hero["title"]; got != "Our Story" {
		t.Errorf("about hero title = %v, want %q", got, "Our Story")
	}

	for _, page := range domain.KnownPages() {
		if _, _, ok := s.Document(page); !ok {
			t.Errorf("Document(%s) missing after Init", page)
		}
	}

	if got := len(s.Projects()); got != 3 {
		t.Errorf("seeded projects = %d, want 3", got)
	}
	if got := len(s.Services()); got != 4 {
		t.Errorf("seeded services = %d, want 4", got)
	}
	if got := len(s.Testimonials()); got != 3 {
		t.Errorf("seeded testimonials = %d, want 3", got)
	}
	if got := len(s.Applications()); got != 0 {
		t.Errorf("seeded applications = %d, want 0", got)
	}
	if got := len(s.Inquiries()); got != 0 {
		t.Errorf("seeded inquiries = %d, want 0", got)
	}
	if got := s.CollectionSource(domain.EntityProject); got != domain.SourceDefault {
		t.Errorf("project source = %q, want %q", got, domain.SourceDefault)
	}
}

func TestSettersReplaceWholesale(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	t1 := &store.Testimonial{ID: uuid.New(), Author: "A", Quote: "one", Order: 1}
	t2 := &store.Testimonial{ID: uuid.New(), Author: "B", Quote: "two", Order: 2}
	t3 := &store.Testimonial{ID: uuid.New(), Author: "C", Quote: "three", Order: 3}

	s.SetTestimonials(ctx, []*store.Testimonial{t1, t2, t3}, domain.SourceServer)
	if got := len(s.Testimonials()); got != 3 {
		t.Fatalf("testimonials = %d, want 3", got)
	}
	if got := s.CollectionSource(domain.EntityTestimonial); got != domain.SourceServer {
		t.Errorf("testimonial source = %q, want %q", got, domain.SourceServer)
	}

	// Removing the middle record is expressed as replacement with the
	// survivors, never as an in-place delete.
	s.SetTestimonials(ctx, []*store.Testimonial{t1, t3}, domain.SourceServer)
	got := s.Testimonials()
	if len(got) != 2 {
		t.Fatalf("testimonials after replacement = %d, want 2", len(got))
	}
	if got[0].ID != t1.ID || got[1].ID != t3.ID {
		t.Errorf("unexpected survivors: %s, %s", got[0].Author, got[1].Author)
	}

	// Applying the same replacement again is a no-op in effect.
	s.SetTestimonials(ctx, []*store.Testimonial{t1, t3}, domain.SourceServer)
	if got := len(s.Testimonials()); got != 2 {
		t.Errorf("testimonials after repeat = %d, want 2", got)
	}
}

func TestGettersReturnClones(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	input := []*store.Project{{ID: uuid.New(), Title: "Original", Status: domain.ProjectOngoing}}
	s.SetProjects(ctx, input, domain.SourceServer)

	input[0].Title = "mutated-after-set"
	if got := s.Projects()[0].Title; got != "Original" {
		t.Errorf("store captured caller slice: title = %q", got)
	}

	out := s.Projects()
	out[0].Title = "mutated-after-get"
	if got := s.Projects()[0].Title; got != "Original" {
		t.Errorf("store leaked internal slice: title = %q", got)
	}
}

func TestDocumentClonesNestedFields(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	s.SetDocument(ctx, &store.PageDocument{
		Page:    domain.PageHome,
		Version: 2,
		Fields: map[string]any{
			"hero":       map[string]any{"title": "Building Together"},
			"highlights": []any{map[string]any{"label": "25 projects"}},
		},
	}, domain.SourceServer)

	doc, _, ok := s.Document(domain.PageHome)
	if !ok {
		t.Fatalf("Document(home) not found")
	}
	doc.Fields["hero"].(map[string]any)["title"] = "mutated-after-get"
	doc.Fields["highlights"].([]any)[0].(map[string]any)["label"] = "mutated-after-get"

	again, _, _ := s.Document(domain.PageHome)
	if got := again.Fields["hero"].(map[string]any)["title"]; got != "Building Together" {
		t.Errorf("store leaked nested map: hero title = %q", got)
	}
	if got := again.Fields["highlights"].([]any)[0].(map[string]any)["label"]; got != "25 projects" {
		t.Errorf("store leaked nested slice element: label = %q", got)
	}
}

func TestSetDocumentReplacesAndTagsSource(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	s.SetDocument(ctx, &store.PageDocument{
		Page:    domain.PageAbout,
		Fields:  map[string]any{"hero": map[string]any{"title": "Twenty Years On"}},
		Version: 2,
	}, domain.SourceServer)

	doc, source, ok := s.Document(domain.PageAbout)
	if !ok {
		t.Fatalf("Document(about) not found")
	}
	if source != domain.SourceServer {
		t.Errorf("source = %q, want %q", source, domain.SourceServer)
	}
	hero := doc.Fields["hero"].(map[string]any)
	if hero["title"] != "Twenty Years On" {
		t.Errorf("hero title = %v, want replacement value", hero["title"])
	}
	if _, stillThere := doc.Fields["mission"]; stillThere {
		t.Errorf("document was merged, want wholesale replacement")
	}
}

func TestActivityPrependAndCap(t *testing.T) {
	ctx := context.Background()
	tick := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	s := newSeededStore(t, store.WithClock(clock), store.WithActivityLimit(3))

	for _, name := range []string{"first", "second", "third", "fourth"} {
		s.AddActivity(ctx, store.ActivityEntry{
			Type:        domain.ActivityCreate,
			Entity:      domain.EntityProject,
			EntityName:  name,
			Description: "created " + name,
		})
	}

	log := s.Activity()
	if len(log) != 3 {
		t.Fatalf("activity length = %d, want cap of 3", len(log))
	}
	if log[0].EntityName != "fourth" {
		t.Errorf("newest entry = %q, want %q", log[0].EntityName, "fourth")
	}
	if log[2].EntityName != "second" {
		t.Errorf("oldest retained entry = %q, want %q (first fell off)", log[2].EntityName, "second")
	}
	if log[0].ID == uuid.Nil {
		t.Errorf("entry id was not generated")
	}
	if !log[0].CreatedAt.After(log[1].CreatedAt) {
		t.Errorf("entries not in reverse chronological order")
	}

	if dropped := s.ClearActivity(ctx); dropped != 3 {
		t.Errorf("ClearActivity dropped = %d, want 3", dropped)
	}
	if got := len(s.Activity()); got != 0 {
		t.Errorf("activity after clear = %d, want 0", got)
	}
}

type captureSink struct {
	records []interfaces.ActivityRecord
}

func (c *captureSink) Log(_ context.Context, record interfaces.ActivityRecord) error {
	c.records = append(c.records, record)
	return nil
}

func TestActivityForwardedToSink(t *testing.T) {
	sink := &captureSink{}
	s := newSeededStore(t, store.WithActivitySink(sink))

	entry := s.AddActivity(context.Background(), store.ActivityEntry{
		Type:        domain.ActivityDelete,
		Entity:      domain.EntityTestimonial,
		EntityID:    "t2",
		EntityName:  "B",
		Description: "deleted testimonial B",
	})

	if len(sink.records) != 1 {
		t.Fatalf("sink received %d records, want 1", len(sink.records))
	}
	got := sink.records[0]
	if got.ID != entry.ID.String() {
		t.Errorf("sink record id = %q, want %q", got.ID, entry.ID.String())
	}
	if got.Type != string(domain.ActivityDelete) || got.Entity != string(domain.EntityTestimonial) {
		t.Errorf("sink record mislabeled: type=%q entity=%q", got.Type, got.Entity)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemorySnapshotRepository()

	first := newSeededStore(t, store.WithSnapshots(repo, "nex-cms-store"))
	first.SetProjects(ctx, []*store.Project{
		{ID: uuid.New(), Title: "Persisted Tower", Status: domain.ProjectOngoing},
	}, domain.SourceServer)
	first.SetDocument(ctx, &store.PageDocument{
		Page:    domain.PageHome,
		Fields:  map[string]any{"hero": map[string]any{"title": "Persisted Hero"}},
		Version: 3,
	}, domain.SourceServer)

	second := newSeededStore(t, store.WithSnapshots(repo, "nex-cms-store"))

	projects := second.Projects()
	if len(projects) != 1 || projects[0].Title != "Persisted Tower" {
		t.Fatalf("rehydrated projects = %+v, want the persisted record", projects)
	}
	if got := second.CollectionSource(domain.EntityProject); got != domain.SourcePersisted {
		t.Errorf("rehydrated project source = %q, want %q", got, domain.SourcePersisted)
	}

	doc, source, _ := second.Document(domain.PageHome)
	hero := doc.Fields["hero"].(map[string]any)
	if hero["title"] != "Persisted Hero" {
		t.Errorf("rehydrated hero title = %v, want persisted value", hero["title"])
	}
	if source != domain.SourcePersisted {
		t.Errorf("rehydrated document source = %q, want %q", source, domain.SourcePersisted)
	}

	// Pages never touched keep their seeds.
	if _, source, _ := second.Document(domain.PageContact); source != domain.SourceDefault {
		t.Errorf("untouched page source = %q, want %q", source, domain.SourceDefault)
	}
}

func TestInitIgnoresCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemorySnapshotRepository()
	if _, err := repo.Put(ctx, "nex-cms-store", []byte("{not json")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	s := newSeededStore(t, store.WithSnapshots(repo, "nex-cms-store"))
	if got := len(s.Projects()); got != 3 {
		t.Errorf("projects after corrupt snapshot = %d, want seeded 3", got)
	}
}

func TestSortByOrder(t *testing.T) {
	records := []*store.ServiceOffering{
		{Title: "third", Order: 30},
		{Title: "first", Order: 5},
		{Title: "second", Order: 12},
	}

	sorted := store.SortByOrder(records, func(s *store.ServiceOffering) int { return s.Order })
	if sorted[0].Title != "first" || sorted[1].Title != "second" || sorted[2].Title != "third" {
		t.Errorf("unexpected order: %s, %s, %s", sorted[0].Title, sorted[1].Title, sorted[2].Title)
	}
	if records[0].Title != "third" {
		t.Errorf("SortByOrder mutated its input")
	}
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nexhomes/nexcms/internal/domain"
	"github.com/nexhomes/nexcms/internal/logging"
	"github.com/nexhomes/nexcms/pkg/interfaces"
)

const defaultActivityLimit = 200

// Store is the single source of truth for what the UI currently believes the
// content is. Every slice is seeded with bundled defaults at Init, optionally
// overridden by a persisted snapshot, and superseded by server data pushed in
// through the setters. All mutations are synchronous full-slice replacements;
// last write wins.
type Store struct {
	mu sync.RWMutex

	documents  map[domain.Page]*PageDocument
	docSources map[domain.Page]domain.Source

	projects     []*Project
	services     []*ServiceOffering
	testimonials []*Testimonial
	news         []*NewsArticle
	jobs         []*JobOpening
	applications []*CareerApplication
	inquiries    []*ContactInquiry

	colSources map[domain.EntityKind]domain.Source

	activity      []*ActivityEntry
	activityLimit int

	snapshots   SnapshotRepository
	snapshotKey string

	sink   interfaces.ActivitySink
	logger interfaces.Logger
	now    func() time.Time
	id     func() uuid.UUID
}

// Option configures the store at construction time.
type Option func(*Store)

// WithLogger injects the store logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the clock used to stamp activity entries.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides the identifier generator.
func WithIDGenerator(generator func() uuid.UUID) Option {
	return func(s *Store) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithSnapshots enables snapshot persistence under the supplied key. The
// snapshot is rehydrated during Init and rewritten after every mutation.
func WithSnapshots(repo SnapshotRepository, key string) Option {
	return func(s *Store) {
		s.snapshots = repo
		s.snapshotKey = key
	}
}

// WithActivityLimit caps the activity log length. Values below one keep the default.
func WithActivityLimit(limit int) Option {
	return func(s *Store) {
		if limit > 0 {
			s.activityLimit = limit
		}
	}
}

// WithActivitySink forwards every appended activity entry to an external sink.
func WithActivitySink(sink interfaces.ActivitySink) Option {
	return func(s *Store) {
		s.sink = sink
	}
}

// New constructs an empty store. Call Init to seed defaults and rehydrate.
func New(opts ...Option) *Store {
	s := &Store{
		documents:     make(map[domain.Page]*PageDocument),
		docSources:    make(map[domain.Page]domain.Source),
		colSources:    make(map[domain.EntityKind]domain.Source),
		activityLimit: defaultActivityLimit,
		logger:        logging.NoOp(),
		now:           time.Now,
		id:            uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init seeds every slice with bundled defaults and then overlays a persisted
// snapshot when one exists. Persisted values beat seeds; the next successful
// server fetch beats both.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	s.seedLocked()
	s.mu.Unlock()

	if s.snapshots == nil {
		return nil
	}

	snap, err := s.snapshots.Get(ctx, s.snapshotKey)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	var state snapshotState
	if err := json.Unmarshal(snap.Data, &state); err != nil {
		s.logger.Warn("store.snapshot.corrupt", "key", s.snapshotKey, "error", err)
		return nil
	}

	s.mu.Lock()
	s.rehydrateLocked(&state)
	s.mu.Unlock()
	return nil
}

// Dispose flushes a final snapshot when persistence is configured.
func (s *Store) Dispose(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	s.mu.RLock()
	data, err := json.Marshal(s.stateLocked())
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	_, err = s.snapshots.Put(ctx, s.snapshotKey, data)
	return err
}

// Document returns the current document for a page along with the tier that
// produced it. The boolean reports whether the page is known to the store.
func (s *Store) Document(page domain.Page) (*PageDocument, domain.Source, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[page]
	if !ok {
		return nil, domain.SourceDefault, false
	}
	source, ok := s.docSources[page]
	if !ok {
		source = domain.SourceDefault
	}
	return cloneDocument(doc), source, true
}

// SetDocument unconditionally replaces the document for doc.Page. Callers
// supply the complete replacement value; the store never merges fields.
func (s *Store) SetDocument(ctx context.Context, doc *PageDocument, source domain.Source) {
	if doc == nil {
		return
	}
	s.mu.Lock()
	s.documents[doc.Page] = cloneDocument(doc)
	s.docSources[doc.Page] = source
	s.mu.Unlock()
	s.persist(ctx)
}

// Projects returns the current project list in stored order.
func (s *Store) Projects() []*Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProjects(s.projects)
}

// SetProjects unconditionally replaces the project collection.
func (s *Store) SetProjects(ctx context.Context, records []*Project, source domain.Source) {
	s.mu.Lock()
	s.projects = cloneProjects(records)
	s.colSources[domain.EntityProject] = source
	s.mu.Unlock()
	s.persist(ctx)
}

// Services returns the current service offerings in stored order.
func (s *Store) Services() []*ServiceOffering {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneServices(s.services)
}

// SetServices unconditionally replaces the service collection.
func (s *Store) SetServices(ctx context.Context, records []*ServiceOffering, source domain.Source) {
	s.mu.Lock()
	s.services = cloneServices(records)
	s.colSources[domain.EntityService] = source
	s.mu.Unlock()
	s.persist(ctx)
}

// Testimonials returns the current testimonials in stored order.
func (s *Store) Testimonials() []*Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTestimonials(s.testimonials)
}

// SetTestimonials unconditionally replaces the testimonial collection.
func (s *Store) SetTestimonials(ctx context.Context, records []*Testimonial, source domain.Source) {
	s.mu.Lock()
	s.testimonials = cloneTestimonials(records)
	s.colSources[domain.EntityTestimonial] = source
	s.mu.Unlock()
	s.persist(ctx)
}

// News returns the current news articles in stored order.
func (s *Store) News() []*NewsArticle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneArticles(s.news)
}

// SetNews unconditionally replaces the news collection.
func (s *Store) SetNews(ctx context.Context, records []*NewsArticle, source domain.Source) {
	s.mu.Lock()
	s.news = cloneArticles(records)
	s.colSources[domain.EntityArticle] = source
	s.mu.Unlock()
	s.persist(ctx)
}

// Jobs returns the current job openings in stored order.
func (s *Store) Jobs() []*JobOpening {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneJobs(s.jobs)
}

// SetJobs unconditionally replaces the job collection.
func (s *Store) SetJobs(ctx context.Context, records []*JobOpening, source domain.Source) {
	s.mu.Lock()
	s.jobs = cloneJobs(records)
	s.colSources[domain.EntityJob] = source
	s.mu.Unlock()
	s.persist(ctx)
}

// Applications returns the current career applications in stored order.
func (s *Store) Applications() []*CareerApplication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneApplications(s.applications)
}

// SetApplications unconditionally replaces the application collection.
func (s *Store) SetApplications(ctx context.Context, records []*CareerApplication, source domain.Source) {
	s.mu.Lock()
	s.applications = cloneApplications(records)
	s.colSources[domain.EntityApplication] = source
	s.mu.Unlock()
	s.persist(ctx)
}

// Inquiries returns the current contact inquiries in stored order.
func (s *Store) Inquiries() []*ContactInquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneInquiries(s.inquiries)
}

// SetInquiries unconditionally replaces the inquiry collection.
func (s *Store) SetInquiries(ctx context.Context, records []*ContactInquiry, source domain.Source) {
	s.mu.Lock()
	s.inquiries = cloneInquiries(records)
	s.colSources[domain.EntityInquiry] = source
	s.mu.Unlock()
	s.persist(ctx)
}

// CollectionSource reports which tier last populated a collection.
func (s *Store) CollectionSource(kind domain.EntityKind) domain.Source {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if source, ok := s.colSources[kind]; ok {
		return source
	}
	return domain.SourceDefault
}

// Activity returns the activity log, most recent first.
func (s *Store) Activity() []*ActivityEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*ActivityEntry, len(s.activity))
	for i, entry := range s.activity {
		copied := *entry
		out[i] = &copied
	}
	return out
}

// AddActivity prepends a new entry with a generated id and timestamp. The log
// is capped at the configured retention limit; the oldest entries fall off.
func (s *Store) AddActivity(ctx context.Context, entry ActivityEntry) *ActivityEntry {
	entry.ID = s.id()
	entry.CreatedAt = s.now()

	s.mu.Lock()
	stored := entry
	s.activity = append([]*ActivityEntry{&stored}, s.activity...)
	if len(s.activity) > s.activityLimit {
		s.activity = s.activity[:s.activityLimit]
	}
	s.mu.Unlock()

	if s.sink != nil {
		if err := s.sink.Log(ctx, interfaces.ActivityRecord{
			ID:          entry.ID.String(),
			Type:        string(entry.Type),
			Entity:      string(entry.Entity),
			EntityID:    entry.EntityID,
			EntityName:  entry.EntityName,
			Description: entry.Description,
		}); err != nil {
			s.logger.Warn("store.activity.sink_failed", "error", err)
		}
	}

	s.persist(ctx)
	returned := entry
	return &returned
}

// ClearActivity removes every activity entry and reports how many were dropped.
func (s *Store) ClearActivity(ctx context.Context) int {
	s.mu.Lock()
	dropped := len(s.activity)
	s.activity = nil
	s.mu.Unlock()
	s.persist(ctx)
	return dropped
}

// persist rewrites the snapshot after a mutation. Failures are logged and
// never propagate; the in-memory store stays authoritative.
func (s *Store) persist(ctx context.Context) {
	if s.snapshots == nil {
		return
	}

	s.mu.RLock()
	data, err := json.Marshal(s.stateLocked())
	s.mu.RUnlock()
	if err != nil {
		s.logger.Error("store.snapshot.encode_failed", "error", err)
		return
	}

	if _, err := s.snapshots.Put(ctx, s.snapshotKey, data); err != nil {
		s.logger.Warn("store.snapshot.write_failed", "key", s.snapshotKey, "error", err)
	}
}

// snapshotState is the JSON image written to the snapshot repository.
type snapshotState struct {
	Documents    map[domain.Page]*PageDocument `json:"documents,omitempty"`
	Projects     []*Project                    `json:"projects,omitempty"`
	Services     []*ServiceOffering            `json:"services,omitempty"`
	Testimonials []*Testimonial                `json:"testimonials,omitempty"`
	News         []*NewsArticle                `json:"news,omitempty"`
	Jobs         []*JobOpening                 `json:"jobs,omitempty"`
	Applications []*CareerApplication          `json:"applications,omitempty"`
	Inquiries    []*ContactInquiry             `json:"inquiries,omitempty"`
	Activity     []*ActivityEntry              `json:"activity,omitempty"`
}

func (s *Store) stateLocked() *snapshotState {
	return &snapshotState{
		Documents:    s.documents,
		Projects:     s.projects,
		Services:     s.services,
		Testimonials: s.testimonials,
		News:         s.news,
		Jobs:         s.jobs,
		Applications: s.applications,
		Inquiries:    s.inquiries,
		Activity:     s.activity,
	}
}

func (s *Store) rehydrateLocked(state *snapshotState) {
	for page, doc := range state.Documents {
		if doc == nil || !domain.IsKnownPage(page) {
			continue
		}
		s.documents[page] = cloneDocument(doc)
		s.docSources[page] = domain.SourcePersisted
	}
	if state.Projects != nil {
		s.projects = cloneProjects(state.Projects)
		s.colSources[domain.EntityProject] = domain.SourcePersisted
	}
	if state.Services != nil {
		s.services = cloneServices(state.Services)
		s.colSources[domain.EntityService] = domain.SourcePersisted
	}
	if state.Testimonials != nil {
		s.testimonials = cloneTestimonials(state.Testimonials)
		s.colSources[domain.EntityTestimonial] = domain.SourcePersisted
	}
	if state.News != nil {
		s.news = cloneArticles(state.News)
		s.colSources[domain.EntityArticle] = domain.SourcePersisted
	}
	if state.Jobs != nil {
		s.jobs = cloneJobs(state.Jobs)
		s.colSources[domain.EntityJob] = domain.SourcePersisted
	}
	if state.Applications != nil {
		s.applications = cloneApplications(state.Applications)
		s.colSources[domain.EntityApplication] = domain.SourcePersisted
	}
	if state.Inquiries != nil {
		s.inquiries = cloneInquiries(state.Inquiries)
		s.colSources[domain.EntityInquiry] = domain.SourcePersisted
	}
	if state.Activity != nil {
		s.activity = state.Activity
		if len(s.activity) > s.activityLimit {
			s.activity = s.activity[:s.activityLimit]
		}
	}
}

// SortByOrder returns a copy of records sorted by their explicit order field.
// Ordering fields are not guaranteed contiguous; consumers must sort, never
// assume pre-sorted input.
func SortByOrder[T any](records []T, order func(T) int) []T {
	out := append([]T(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		return order(out[i]) < order(out[j])
	})
	return out
}

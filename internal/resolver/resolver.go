package resolver

import (
	"context"

	"github.com/nexhomes/nexcms/internal/domain"
	"github.com/nexhomes/nexcms/internal/logging"
	"github.com/nexhomes/nexcms/internal/query"
	"github.com/nexhomes/nexcms/internal/store"
	"github.com/nexhomes/nexcms/pkg/interfaces"
)

// ContentFetcher is the remote surface the resolver reads from.
type ContentFetcher interface {
	Document(ctx context.Context, page domain.Page) (*store.PageDocument, error)
	Projects(ctx context.Context) ([]*store.Project, error)
	Services(ctx context.Context) ([]*store.ServiceOffering, error)
	Testimonials(ctx context.Context) ([]*store.Testimonial, error)
	News(ctx context.Context) ([]*store.NewsArticle, error)
	Jobs(ctx context.Context) ([]*store.JobOpening, error)
	Applications(ctx context.Context) ([]*store.CareerApplication, error)
	Inquiries(ctx context.Context) ([]*store.ContactInquiry, error)
}

// BodyRenderer turns markdown article bodies into HTML for preview surfaces.
type BodyRenderer interface {
	Render(source string) (string, error)
}

// Resolved is a tagged value: the content a page renders plus which tier
// (default, persisted snapshot, or server) currently backs it. Err is set when
// the latest fetch failed; Value still carries the best available content, so
// a page always has something to render.
type Resolved[T any] struct {
	Value  T
	Source domain.Source
	Stale  bool
	Err    error
}

// Resolver presents every page with one coherent content value regardless of
// fetch state. Fetches run through the query cache; successful responses are
// pushed into the store, where they permanently supersede seeded defaults.
type Resolver struct {
	fetcher  ContentFetcher
	store    *store.Store
	cache    *query.Cache
	renderer BodyRenderer
	logger   interfaces.Logger
}

// Option configures the resolver.
type Option func(*Resolver)

// WithLogger injects the resolver logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithBodyRenderer enables HTML rendering of markdown article bodies on the
// media page. Without it articles are served as raw markdown.
func WithBodyRenderer(renderer BodyRenderer) Option {
	return func(r *Resolver) {
		r.renderer = renderer
	}
}

// New constructs a resolver over the given fetcher, store, and query cache.
func New(fetcher ContentFetcher, st *store.Store, cache *query.Cache, opts ...Option) *Resolver {
	r := &Resolver{
		fetcher: fetcher,
		store:   st,
		cache:   cache,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Document resolves the content document for one page. Server data wins once
// it has arrived; before that, the persisted or seeded document is served.
func (r *Resolver) Document(ctx context.Context, page domain.Page) Resolved[*store.PageDocument] {
	_, stale, err := query.Fetch(ctx, r.cache, query.Key{"pages", string(page)}, func(ctx context.Context) (*store.PageDocument, error) {
		doc, err := r.fetcher.Document(ctx, page)
		if err != nil {
			return nil, err
		}
		r.store.SetDocument(ctx, doc, domain.SourceServer)
		return doc, nil
	})

	doc, source, ok := r.store.Document(page)
	if !ok {
		return Resolved[*store.PageDocument]{Err: err}
	}
	if err != nil {
		r.logger.Debug("resolver.document_fallback", "page", page, "source", source, "error", err)
	}
	return Resolved[*store.PageDocument]{Value: doc, Source: source, Stale: stale, Err: err}
}

// resolveCollection runs one cached fetch and then reads the effective value
// back out of the store, so concurrent server pushes and snapshot rehydration
// all land in the same answer.
func resolveCollection[T any](
	ctx context.Context,
	r *Resolver,
	key query.Key,
	kind domain.EntityKind,
	fetch func(ctx context.Context) ([]T, error),
	push func(ctx context.Context, records []T, source domain.Source),
	read func() []T,
) Resolved[[]T] {
	_, stale, err := query.Fetch(ctx, r.cache, key, func(ctx context.Context) ([]T, error) {
		records, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		push(ctx, records, domain.SourceServer)
		return records, nil
	})
	if err != nil {
		r.logger.Debug("resolver.collection_fallback", "key", key.String(), "error", err)
	}
	return Resolved[[]T]{
		Value:  read(),
		Source: r.store.CollectionSource(kind),
		Stale:  stale,
		Err:    err,
	}
}

// Projects resolves the project listing.
func (r *Resolver) Projects(ctx context.Context) Resolved[[]*store.Project] {
	return resolveCollection(ctx, r, query.Key{"projects"}, domain.EntityProject,
		r.fetcher.Projects, r.store.SetProjects, r.store.Projects)
}

// Services resolves the service offerings.
func (r *Resolver) Services(ctx context.Context) Resolved[[]*store.ServiceOffering] {
	return resolveCollection(ctx, r, query.Key{"services"}, domain.EntityService,
		r.fetcher.Services, r.store.SetServices, r.store.Services)
}

// Testimonials resolves the testimonial carousel entries.
func (r *Resolver) Testimonials(ctx context.Context) Resolved[[]*store.Testimonial] {
	return resolveCollection(ctx, r, query.Key{"testimonials"}, domain.EntityTestimonial,
		r.fetcher.Testimonials, r.store.SetTestimonials, r.store.Testimonials)
}

// News resolves the news/media articles.
func (r *Resolver) News(ctx context.Context) Resolved[[]*store.NewsArticle] {
	return resolveCollection(ctx, r, query.Key{"news"}, domain.EntityArticle,
		r.fetcher.News, r.store.SetNews, r.store.News)
}

// Jobs resolves the advertised job openings.
func (r *Resolver) Jobs(ctx context.Context) Resolved[[]*store.JobOpening] {
	return resolveCollection(ctx, r, query.Key{"jobs"}, domain.EntityJob,
		r.fetcher.Jobs, r.store.SetJobs, r.store.Jobs)
}

// Applications resolves submitted career applications for the admin screens.
func (r *Resolver) Applications(ctx context.Context) Resolved[[]*store.CareerApplication] {
	return resolveCollection(ctx, r, query.Key{"applications"}, domain.EntityApplication,
		r.fetcher.Applications, r.store.SetApplications, r.store.Applications)
}

// Inquiries resolves contact inquiries for the admin screens.
func (r *Resolver) Inquiries(ctx context.Context) Resolved[[]*store.ContactInquiry] {
	return resolveCollection(ctx, r, query.Key{"inquiries"}, domain.EntityInquiry,
		r.fetcher.Inquiries, r.store.SetInquiries, r.store.Inquiries)
}

// Invalidate drops the cached query for one resource so the next resolve
// fetches fresh data.
func (r *Resolver) Invalidate(key query.Key) {
	r.cache.Invalidate(key)
}

package di

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/goliatone/go-repository-cache/cache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nexhomes/nexcms/internal/admin"
	"github.com/nexhomes/nexcms/internal/auth"
	"github.com/nexhomes/nexcms/internal/commands"
	activitycmd "github.com/nexhomes/nexcms/internal/commands/activity"
	contentcmd "github.com/nexhomes/nexcms/internal/commands/content"
	"github.com/nexhomes/nexcms/internal/dashboard"
	"github.com/nexhomes/nexcms/internal/logging"
	"github.com/nexhomes/nexcms/internal/logging/gologger"
	"github.com/nexhomes/nexcms/internal/markdown"
	"github.com/nexhomes/nexcms/internal/query"
	"github.com/nexhomes/nexcms/internal/remote"
	"github.com/nexhomes/nexcms/internal/resolver"
	"github.com/nexhomes/nexcms/internal/runtimeconfig"
	"github.com/nexhomes/nexcms/internal/store"
	"github.com/nexhomes/nexcms/internal/validation"
	"github.com/nexhomes/nexcms/pkg/interfaces"
)

// Container wires the nexcms services together from a validated configuration.
// Hosts override integration points (HTTP client, notifier, session handling,
// persistence) through options; everything else is assembled here.
type Container struct {
	Config runtimeconfig.Config

	provider   interfaces.LoggerProvider
	notifier   interfaces.Notifier
	session    interfaces.SessionHandler
	csrf       interfaces.CSRFTokenSource
	sink       interfaces.ActivitySink
	httpClient *http.Client
	bunDB      *bun.DB
	ownsDB     *sql.DB
	snapshots  store.SnapshotRepository
	cacheSvc   cache.CacheService
	serializer cache.KeySerializer
	clock      func() time.Time
	idGen      func() uuid.UUID

	client    *remote.Client
	api       *remote.API
	cache     *query.Cache
	store     *store.Store
	resolver  *resolver.Resolver
	adminSvc  admin.Service
	authStore *auth.Store
	dashboard *dashboard.Service
	renderer  *markdown.Renderer
	validator *validation.DocumentValidator
	commands  *CommandSet
}

// CommandSet bundles the maintenance command handlers assembled when the
// commands feature is enabled.
type CommandSet struct {
	PruneActivity  *commands.Handler[activitycmd.PruneMessage]
	ExportActivity *commands.Handler[activitycmd.ExportMessage]
	RefreshContent *commands.Handler[contentcmd.RefreshMessage]
}

// Option overrides one of the container's integration points.
type Option func(*Container)

// WithLoggerProvider replaces the logger provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.provider = provider
		}
	}
}

// WithNotifier installs the host's toast surface for admin mutation feedback.
func WithNotifier(notifier interfaces.Notifier) Option {
	return func(c *Container) {
		c.notifier = notifier
	}
}

// WithSessionHandler installs the host's reaction to expired admin sessions.
func WithSessionHandler(handler interfaces.SessionHandler) Option {
	return func(c *Container) {
		c.session = handler
	}
}

// WithCSRFTokenSource installs the token source attached to mutating requests.
func WithCSRFTokenSource(source interfaces.CSRFTokenSource) Option {
	return func(c *Container) {
		c.csrf = source
	}
}

// WithActivitySink forwards store activity entries to an external consumer.
func WithActivitySink(sink interfaces.ActivitySink) Option {
	return func(c *Container) {
		c.sink = sink
	}
}

// WithHTTPClient replaces the remote client's underlying HTTP transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) {
		c.httpClient = client
	}
}

// WithBunDB reuses an existing bun database for snapshot persistence instead
// of opening one from Config.Persistence.DSN.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithSnapshotRepository replaces the snapshot repository entirely, bypassing
// the bun-backed default.
func WithSnapshotRepository(repo store.SnapshotRepository) Option {
	return func(c *Container) {
		c.snapshots = repo
	}
}

// WithRepositoryCache wraps the snapshot repository with a caching layer.
func WithRepositoryCache(service cache.CacheService, serializer cache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheSvc = service
		c.serializer = serializer
	}
}

// WithClock overrides the time source used across services. Intended for tests.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		c.clock = clock
	}
}

// WithIDGenerator overrides provisional ID generation. Intended for tests.
func WithIDGenerator(generator func() uuid.UUID) Option {
	return func(c *Container) {
		c.idGen = generator
	}
}

// NewContainer assembles the module services from cfg, applying any overrides.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	if err := c.configurePersistence(); err != nil {
		return nil, err
	}
	if err := c.configureRemote(); err != nil {
		return nil, err
	}
	c.configureStore()
	c.configureQuery()
	c.configureMarkdown()
	c.configureResolver()
	if err := c.configureAdmin(); err != nil {
		return nil, err
	}
	c.configureAuth()
	c.configureDashboard()
	c.configureCommands()

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.provider != nil {
		return nil
	}

	switch c.Config.Logging.Provider {
	case "noop":
		c.provider = logging.NoOpProvider()
		return nil
	default:
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return fmt.Errorf("di: build logger provider: %w", err)
		}
		c.provider = provider
		return nil
	}
}

func (c *Container) configurePersistence() error {
	if !c.Config.Features.Persistence || c.snapshots != nil {
		return nil
	}

	db := c.bunDB
	if db == nil {
		sqlDB, err := sql.Open("sqlite3", c.Config.Persistence.DSN)
		if err != nil {
			return fmt.Errorf("di: open snapshot database: %w", err)
		}
		db = bun.NewDB(sqlDB, sqlitedialect.New())
		c.ownsDB = sqlDB
		c.bunDB = db
	}

	if err := store.EnsureSnapshotSchema(context.Background(), db); err != nil {
		return fmt.Errorf("di: ensure snapshot schema: %w", err)
	}

	c.snapshots = store.NewBunSnapshotRepositoryWithCache(db, c.cacheSvc, c.serializer)
	return nil
}

func (c *Container) configureRemote() error {
	options := []remote.Option{
		remote.WithLogger(logging.RemoteLogger(c.provider)),
	}
	if c.Config.Remote.Timeout > 0 {
		options = append(options, remote.WithTimeout(c.Config.Remote.Timeout))
	}
	if c.httpClient != nil {
		options = append(options, remote.WithHTTPClient(c.httpClient))
	}
	if c.csrf != nil {
		options = append(options, remote.WithCSRFTokenSource(c.csrf))
	}
	if c.session != nil {
		options = append(options, remote.WithSessionHandler(c.session))
	}

	client, err := remote.NewClient(c.Config.Remote.BaseURL, options...)
	if err != nil {
		return fmt.Errorf("di: build remote client: %w", err)
	}
	c.client = client
	c.api = remote.NewAPI(client)
	return nil
}

func (c *Container) configureStore() {
	options := []store.Option{
		store.WithLogger(logging.StoreLogger(c.provider)),
		store.WithActivityLimit(c.Config.Retention.ActivityLimit),
	}
	if c.snapshots != nil {
		options = append(options, store.WithSnapshots(c.snapshots, c.Config.SnapshotStoreKey()))
	}
	if c.sink != nil {
		options = append(options, store.WithActivitySink(c.sink))
	}
	if c.clock != nil {
		options = append(options, store.WithClock(c.clock))
	}
	if c.idGen != nil {
		options = append(options, store.WithIDGenerator(c.idGen))
	}
	c.store = store.New(options...)
}

func (c *Container) configureQuery() {
	options := []query.Option{
		query.WithLogger(logging.QueryLogger(c.provider)),
		query.WithRefetchOnMount(c.Config.Cache.RefetchOnMount),
	}
	if c.Config.Cache.StaleTime > 0 {
		options = append(options, query.WithStaleTime(c.Config.Cache.StaleTime))
	}
	if c.Config.Cache.RetryCount >= 0 {
		options = append(options, query.WithRetryCount(c.Config.Cache.RetryCount))
	}
	if !c.Config.Features.Cache || !c.Config.Cache.Enabled {
		options = append(options, query.WithDisabled(true))
	}
	if c.clock != nil {
		options = append(options, query.WithClock(c.clock))
	}
	c.cache = query.New(options...)
}

func (c *Container) configureResolver() {
	options := []resolver.Option{
		resolver.WithLogger(logging.ResolverLogger(c.provider)),
	}
	if c.renderer != nil {
		options = append(options, resolver.WithBodyRenderer(c.renderer))
	}
	c.resolver = resolver.New(c.api, c.store, c.cache, options...)
}

func (c *Container) configureAdmin() error {
	validator, err := validation.NewDocumentValidator()
	if err != nil {
		return fmt.Errorf("di: compile document schemas: %w", err)
	}
	c.validator = validator

	options := []admin.ServiceOption{
		admin.WithLogger(logging.AdminLogger(c.provider)),
		admin.WithDocumentValidator(validator),
	}
	if c.notifier != nil {
		options = append(options, admin.WithNotifier(c.notifier))
	}
	c.adminSvc = admin.NewService(c.api, c.store, options...)
	return nil
}

func (c *Container) configureAuth() {
	options := []auth.Option{
		auth.WithLogger(logging.AuthLogger(c.provider)),
	}
	if c.snapshots != nil {
		options = append(options, auth.WithSnapshots(c.snapshots, c.Config.SnapshotAuthKey()))
	}
	if c.clock != nil {
		options = append(options, auth.WithClock(c.clock))
	}
	c.authStore = auth.New(c.Config.Auth, options...)
}

func (c *Container) configureDashboard() {
	options := []dashboard.Option{}
	if c.clock != nil {
		options = append(options, dashboard.WithClock(c.clock))
	}
	c.dashboard = dashboard.New(c.store, options...)
}

func (c *Container) configureCommands() {
	if !c.Config.Features.Commands {
		return
	}
	activityLogger := commands.CommandLogger(c.provider, "activity")
	contentLogger := commands.CommandLogger(c.provider, "content")
	c.commands = &CommandSet{
		PruneActivity:  activitycmd.NewPruneHandler(c.store, activityLogger),
		ExportActivity: activitycmd.NewExportHandler(c.store, activityLogger),
		RefreshContent: contentcmd.NewRefreshHandler(c.cache, c.resolver, contentLogger),
	}
}

func (c *Container) configureMarkdown() {
	if !c.Config.Features.Markdown {
		return
	}
	c.renderer = markdown.NewRenderer(markdown.Options{})
}

// Init hydrates persisted state. It must run before the first read.
func (c *Container) Init(ctx context.Context) error {
	if err := c.store.Init(ctx); err != nil {
		return err
	}
	return c.authStore.Init(ctx)
}

// Close releases resources the container opened itself.
func (c *Container) Close(ctx context.Context) error {
	if err := c.store.Dispose(ctx); err != nil {
		return err
	}
	if c.ownsDB != nil {
		return c.ownsDB.Close()
	}
	return nil
}

// LoggerProvider exposes the resolved logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.provider
}

// RemoteAPI exposes the typed REST client.
func (c *Container) RemoteAPI() *remote.API {
	return c.api
}

// QueryCache exposes the shared query cache.
func (c *Container) QueryCache() *query.Cache {
	return c.cache
}

// Store exposes the client-state content store.
func (c *Container) Store() *store.Store {
	return c.store
}

// Resolver exposes the page content resolvers.
func (c *Container) Resolver() *resolver.Resolver {
	return c.resolver
}

// Admin exposes the admin mutation service.
func (c *Container) Admin() admin.Service {
	return c.adminSvc
}

// Auth exposes the admin auth store.
func (c *Container) Auth() *auth.Store {
	return c.authStore
}

// Dashboard exposes the dashboard aggregate service.
func (c *Container) Dashboard() *dashboard.Service {
	return c.dashboard
}

// Commands exposes the maintenance command handlers, or nil when the feature
// is off.
func (c *Container) Commands() *CommandSet {
	return c.commands
}

// Markdown exposes the markdown renderer, or nil when the feature is off.
func (c *Container) Markdown() *markdown.Renderer {
	return c.renderer
}

// DocumentValidator exposes the compiled page-document validator.
func (c *Container) DocumentValidator() *validation.DocumentValidator {
	return c.validator
}

// SnapshotRepository exposes the configured snapshot repository, or nil when
// persistence is disabled.
func (c *Container) SnapshotRepository() store.SnapshotRepository {
	return c.snapshots
}

package nexcms

import (
	"context"

	"github.com/nexhomes/nexcms/internal/admin"
	"github.com/nexhomes/nexcms/internal/auth"
	"github.com/nexhomes/nexcms/internal/dashboard"
	"github.com/nexhomes/nexcms/internal/di"
	"github.com/nexhomes/nexcms/internal/domain"
	"github.com/nexhomes/nexcms/internal/markdown"
	"github.com/nexhomes/nexcms/internal/query"
	"github.com/nexhomes/nexcms/internal/remote"
	"github.com/nexhomes/nexcms/internal/resolver"
	"github.com/nexhomes/nexcms/internal/store"
	"github.com/nexhomes/nexcms/pkg/interfaces"
)

// AdminService exports the admin mutation contract for consumers of the
// nexcms package.
type AdminService = admin.Service

// AuthStore exports the admin session store.
type AuthStore = auth.Store

// DashboardService exports the dashboard aggregate reader.
type DashboardService = dashboard.Service

// Resolver exports the page content resolvers.
type Resolver = resolver.Resolver

// Store exports the client-state content store.
type Store = store.Store

// QueryCache exports the shared read cache.
type QueryCache = query.Cache

// RemoteAPI exports the typed REST client.
type RemoteAPI = remote.API

// MarkdownRenderer exports the markdown rendering helper.
type MarkdownRenderer = markdown.Renderer

// Page identifies one of the site's content pages.
type Page = domain.Page

// Source tags where a piece of content came from.
type Source = domain.Source

// Notifier exports the toast feedback contract hosts implement.
type Notifier = interfaces.Notifier

// SessionHandler exports the session expiry contract hosts implement.
type SessionHandler = interfaces.SessionHandler

// CSRFTokenSource exports the anti-forgery token contract hosts implement.
type CSRFTokenSource = interfaces.CSRFTokenSource

// ActivitySink exports the contract for mirroring activity entries externally.
type ActivitySink = interfaces.ActivitySink

// CommandSet exports the bundle of maintenance command handlers.
type CommandSet = di.CommandSet

// Module is the top level nexcms runtime facade.
type Module struct {
	container *di.Container
}

// New constructs the module from cfg with optional DI overrides applied.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Init hydrates persisted state and seeds default content. Call it once
// before the first read.
func (m *Module) Init(ctx context.Context) error {
	return m.container.Init(ctx)
}

// Close flushes pending snapshots and releases owned resources.
func (m *Module) Close(ctx context.Context) error {
	return m.container.Close(ctx)
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Resolver returns the page content resolvers.
func (m *Module) Resolver() *Resolver {
	return m.container.Resolver()
}

// Store returns the client-state content store.
func (m *Module) Store() *Store {
	return m.container.Store()
}

// Admin returns the admin mutation service.
func (m *Module) Admin() AdminService {
	return m.container.Admin()
}

// Auth returns the admin session store.
func (m *Module) Auth() *AuthStore {
	return m.container.Auth()
}

// Dashboard returns the dashboard aggregate reader.
func (m *Module) Dashboard() *DashboardService {
	return m.container.Dashboard()
}

// Cache returns the shared query cache.
func (m *Module) Cache() *QueryCache {
	return m.container.QueryCache()
}

// Remote returns the typed REST client.
func (m *Module) Remote() *RemoteAPI {
	return m.container.RemoteAPI()
}

// Commands returns the maintenance command handlers, or nil when the
// commands feature is off.
func (m *Module) Commands() *CommandSet {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Commands()
}

// Markdown returns the markdown renderer, or nil when the feature is off.
func (m *Module) Markdown() *MarkdownRenderer {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Markdown()
}

package contentcmd

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"

	"github.com/nexhomes/nexcms/internal/commands"
	"github.com/nexhomes/nexcms/internal/domain"
	"github.com/nexhomes/nexcms/internal/logging"
	"github.com/nexhomes/nexcms/internal/query"
	"github.com/nexhomes/nexcms/internal/resolver"
	"github.com/nexhomes/nexcms/internal/store"
	"github.com/nexhomes/nexcms/pkg/interfaces"
)

const refreshMessageType = "nexcms.content.refresh"

// Invalidator drops cached query results so the next resolve refetches from
// the server. *query.Cache satisfies it.
type Invalidator interface {
	InvalidatePrefix(prefix query.Key) int
}

// collectionKeys maps the collection names accepted by RefreshMessage to
// their cache keys.
var collectionKeys = map[string]query.Key{
	"projects":     {"projects"},
	"services":     {"services"},
	"testimonials": {"testimonials"},
	"news":         {"news"},
	"jobs":         {"jobs"},
	"applications": {"applications"},
	"inquiries":    {"inquiries"},
}

// RefreshMessage invalidates cached content so the next read reflects the
// server state. An empty message refreshes everything.
type RefreshMessage struct {
	Pages       []domain.Page `json:"pages,omitempty"`
	Collections []string      `json:"collections,omitempty"`
}

// Type implements command.Message.
func (RefreshMessage) Type() string { return refreshMessageType }

// Validate rejects unknown pages and collection names.
func (m RefreshMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Pages, validation.By(func(value any) error {
			for _, page := range m.Pages {
				if !domain.IsKnownPage(page) {
					return validation.NewError("nexcms.content.refresh.page_unknown", fmt.Sprintf("unknown page %q", page))
				}
			}
			return nil
		})),
		validation.Field(&m.Collections, validation.By(func(value any) error {
			for _, name := range m.Collections {
				if _, ok := collectionKeys[name]; !ok {
					return validation.NewError("nexcms.content.refresh.collection_unknown", fmt.Sprintf("unknown collection %q", name))
				}
			}
			return nil
		})),
	)
}

// DocumentResolver re-fetches one page document into the store. The resolver
// package satisfies it.
type DocumentResolver interface {
	Document(ctx context.Context, page domain.Page) resolver.Resolved[*store.PageDocument]
}

// NewRefreshHandler builds a handler that evicts the requested cache entries
// and, when a resolver is supplied, re-fetches the affected page documents so
// the store holds fresh server content before the next render.
func NewRefreshHandler(cache Invalidator, content DocumentResolver, logger interfaces.Logger, opts ...commands.HandlerOption[RefreshMessage]) *commands.Handler[RefreshMessage] {
	exec := command.CommandFunc[RefreshMessage](func(ctx context.Context, msg RefreshMessage) error {
		scoped := logging.WithFields(commands.EnsureLogger(logger), map[string]any{
			"operation": "content.refresh",
		})

		pages := msg.Pages
		dropped := 0
		if len(msg.Pages) == 0 && len(msg.Collections) == 0 {
			pages = domain.KnownPages()
			dropped += cache.InvalidatePrefix(query.Key{"pages"})
			for _, key := range collectionKeys {
				dropped += cache.InvalidatePrefix(key)
			}
		} else {
			for _, page := range msg.Pages {
				dropped += cache.InvalidatePrefix(query.Key{"pages", string(page)})
			}
			for _, name := range msg.Collections {
				dropped += cache.InvalidatePrefix(collectionKeys[name])
			}
		}

		warmed, failed := 0, 0
		if content != nil {
			for _, page := range pages {
				resolved := content.Document(ctx, page)
				if resolved.Err != nil {
					failed++
					logging.WithFields(scoped, map[string]any{
						"page": string(page),
					}).Warn("content.command.refresh.page_failed", "error", resolved.Err)
					continue
				}
				warmed++
			}
		}

		logging.WithFields(scoped, map[string]any{
			"dropped": dropped,
			"warmed":  warmed,
			"failed":  failed,
		}).Info("content.command.refresh.completed")
		return nil
	})

	base := []commands.HandlerOption[RefreshMessage]{
		commands.WithLogger[RefreshMessage](logger),
		commands.WithOperation[RefreshMessage]("content.refresh"),
	}
	return commands.NewHandler(exec, append(base, opts...)...)
}

package activitycmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"

	"github.com/nexhomes/nexcms/internal/commands"
	"github.com/nexhomes/nexcms/internal/logging"
	"github.com/nexhomes/nexcms/internal/store"
	"github.com/nexhomes/nexcms/pkg/interfaces"
)

const pruneMessageType = "nexcms.activity.prune"

// ActivityLog exposes the activity feed operations maintenance commands need.
type ActivityLog interface {
	Activity() []*store.ActivityEntry
	ClearActivity(ctx context.Context) int
}

// PruneMessage clears the recorded activity feed. When DryRun is true only
// the current entry count is reported.
type PruneMessage struct {
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (PruneMessage) Type() string { return pruneMessageType }

// Validate satisfies command.Message.
func (m PruneMessage) Validate() error {
	return validation.ValidateStruct(&m)
}

// NewPruneHandler builds a handler that drops activity entries from the
// supplied log.
func NewPruneHandler(log ActivityLog, logger interfaces.Logger, opts ...commands.HandlerOption[PruneMessage]) *commands.Handler[PruneMessage] {
	exec := command.CommandFunc[PruneMessage](func(ctx context.Context, msg PruneMessage) error {
		scoped := logging.WithFields(commands.EnsureLogger(logger), map[string]any{
			"operation": "activity.prune",
		})

		if msg.DryRun {
			logging.WithFields(scoped, map[string]any{
				"dry_run":        true,
				"existing_count": len(log.Activity()),
			}).Debug("activity.command.prune.dry_run")
			return nil
		}

		removed := log.ClearActivity(ctx)
		logging.WithFields(scoped, map[string]any{
			"removed": removed,
		}).Debug("activity.command.prune.removed")
		return nil
	})

	base := []commands.HandlerOption[PruneMessage]{
		commands.WithLogger[PruneMessage](logger),
		commands.WithOperation[PruneMessage]("activity.prune"),
	}
	return commands.NewHandler(exec, append(base, opts...)...)
}

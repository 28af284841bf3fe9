package activitycmd

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"

	"github.com/nexhomes/nexcms/internal/commands"
	"github.com/nexhomes/nexcms/internal/logging"
	"github.com/nexhomes/nexcms/pkg/interfaces"
)

const exportMessageType = "nexcms.activity.export"

// ExportMessage emits the recorded activity feed through the logger, newest
// entries first.
type ExportMessage struct {
	MaxRecords *int `json:"max_records,omitempty"`
}

// Type implements command.Message.
func (ExportMessage) Type() string { return exportMessageType }

// Validate ensures the message payload is well-formed.
func (m ExportMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.MaxRecords, validation.By(func(value any) error {
			if m.MaxRecords == nil {
				return nil
			}
			if *m.MaxRecords < 0 {
				return validation.NewError("nexcms.activity.export.max_records_invalid", "max_records must be zero or positive")
			}
			return nil
		})),
	)
}

// NewExportHandler builds a handler that logs activity entries up to the
// requested limit.
func NewExportHandler(log ActivityLog, logger interfaces.Logger, opts ...commands.HandlerOption[ExportMessage]) *commands.Handler[ExportMessage] {
	exec := command.CommandFunc[ExportMessage](func(ctx context.Context, msg ExportMessage) error {
		entries := log.Activity()
		limit := len(entries)
		if msg.MaxRecords != nil && *msg.MaxRecords < limit {
			limit = *msg.MaxRecords
		}

		scoped := logging.WithFields(commands.EnsureLogger(logger), map[string]any{
			"operation": "activity.export",
		})

		for idx := 0; idx < limit; idx++ {
			entry := entries[idx]
			logging.WithFields(scoped, map[string]any{
				"index":       idx,
				"type":        string(entry.Type),
				"entity":      string(entry.Entity),
				"entity_id":   entry.EntityID,
				"entity_name": entry.EntityName,
				"occurred_at": entry.CreatedAt.Format(time.RFC3339),
			}).Debug("activity.command.export.entry")
		}

		logging.WithFields(scoped, map[string]any{
			"exported": limit,
			"total":    len(entries),
		}).Info("activity.command.export.completed")
		return nil
	})

	base := []commands.HandlerOption[ExportMessage]{
		commands.WithLogger[ExportMessage](logger),
		commands.WithOperation[ExportMessage]("activity.export"),
	}
	return commands.NewHandler(exec, append(base, opts...)...)
}

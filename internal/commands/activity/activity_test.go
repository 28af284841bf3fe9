package activitycmd

import (
	"context"
	"testing"

	"github.com/nexhomes/nexcms/internal/logging"
	"github.com/nexhomes/nexcms/internal/store"
)

type stubActivityLog struct {
	entries    []*store.ActivityEntry
	clearCalls int
}

func (s *stubActivityLog) Activity() []*store.ActivityEntry {
	out := make([]*store.ActivityEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *stubActivityLog) ClearActivity(context.Context) int {
	s.clearCalls++
	removed := len(s.entries)
	s.entries = nil
	return removed
}

func TestPruneHandlerClearsEntries(t *testing.T) {
	log := &stubActivityLog{entries: []*store.ActivityEntry{{EntityName: "a"}, {EntityName: "b"}}}
	handler := NewPruneHandler(log, logging.NoOp())

	if err := handler.Execute(context.Background(), PruneMessage{}); err != nil {
		t.Fatalf("prune execute: %v", err)
	}
	if log.clearCalls != 1 {
		t.Fatalf("expected one clear call, got %d", log.clearCalls)
	}
	if len(log.entries) != 0 {
		t.Fatalf("expected entries cleared, got %d", len(log.entries))
	}
}

func TestPruneHandlerDryRunKeepsEntries(t *testing.T) {
	log := &stubActivityLog{entries: []*store.ActivityEntry{{EntityName: "a"}}}
	handler := NewPruneHandler(log, logging.NoOp())

	if err := handler.Execute(context.Background(), PruneMessage{DryRun: true}); err != nil {
		t.Fatalf("dry-run execute: %v", err)
	}
	if log.clearCalls != 0 {
		t.Fatalf("dry-run must not clear, got %d calls", log.clearCalls)
	}
	if len(log.entries) != 1 {
		t.Fatalf("expected entries untouched, got %d", len(log.entries))
	}
}

func TestExportMessageRejectsNegativeLimit(t *testing.T) {
	limit := -1
	handler := NewExportHandler(&stubActivityLog{}, logging.NoOp())

	if err := handler.Execute(context.Background(), ExportMessage{MaxRecords: &limit}); err == nil {
		t.Fatal("expected validation error for negative max_records")
	}
}

func TestExportHandlerRunsWithLimit(t *testing.T) {
	log := &stubActivityLog{entries: []*store.ActivityEntry{{EntityName: "a"}, {EntityName: "b"}, {EntityName: "c"}}}
	handler := NewExportHandler(log, logging.NoOp())
	limit := 2

	if err := handler.Execute(context.Background(), ExportMessage{MaxRecords: &limit}); err != nil {
		t.Fatalf("export execute: %v", err)
	}
	if len(log.entries) != 3 {
		t.Fatalf("export must not mutate the log, got %d entries", len(log.entries))
	}
}

package interfaces

import "context"

// ActivitySink receives a copy of every activity entry the store appends.
// Implementations must not block; the store calls Log synchronously while
// holding its mutation lock.
type ActivitySink interface {
	Log(ctx context.Context, entry ActivityRecord) error
}

// ActivityRecord is the sink-facing projection of a store activity entry.
type ActivityRecord struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Entity      string `json:"entity"`
	EntityID    string `json:"entity_id"`
	EntityName  string `json:"entity_name"`
	Description string `json:"description"`
}

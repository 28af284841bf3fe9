package interfaces

import "context"

// Notifier surfaces transient notifications to the admin UI; both success and
// failure of every mutation flow end in exactly one call.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

package interfaces

import "context"

// SessionHandler receives the global side effects the remote client fires on
// auth failures. Hosts typically redirect to the login screen on Unauthorized
// and force a full reload on SessionExpired. Handlers may run from any call
// site; callers of the remote client must not assume the returned error is
// the only effect of a failed request.
type SessionHandler interface {
	Unauthorized(ctx context.Context)
	SessionExpired(ctx context.Context)
}

// CSRFTokenSource supplies the anti-forgery token attached to every remote
// request, typically sourced from the rendered page's meta context.
type CSRFTokenSource interface {
	Token(ctx context.Context) string
}

package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID carries the authenticated subject (identity or API key ID).
	CtxKeyUserID ctxKey = "user_id"
	// CtxKeyScopes carries the space-delimited scopes granted to the caller.
	CtxKeyScopes ctxKey = "scopes"
)

// UserIDFromContext returns the authenticated subject, or "" when the request
// carries no identity.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// ScopesFromContext returns the caller's granted scopes, or nil when the
// request carries none.
func ScopesFromContext(ctx context.Context) []string {
	if v, ok := ctx.Value(CtxKeyScopes).([]string); ok {
		return v
	}
	return nil
}

package console

import (
	"context"
)

var sessionCtxKey = &contextKey{"session"}

type contextKey struct {
	name string
}

// WithSessionContext sets the Session in the given context
func WithSessionContext(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, session)
}

// SessionFromContext finds the session from the context.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	raw, ok := ctx.Value(sessionCtxKey).(*Session)
	if !ok || raw == nil {
		return nil, false
	}
	return raw, true
}

// Can is a convenience function to check role-gated page actions directly
// from the context. The role is an unverified hint used only to hide
// controls; the server remains the authority on every request.
func Can(ctx context.Context, minRole UserRole) bool {
	session, ok := SessionFromContext(ctx)
	if !ok {
		return false
	}
	return RoleAtLeast(session.Role, minRole)
}

package console

import (
	"context"
	"fmt"
)

// Decision is the outcome of a route guard evaluation. Exactly one of the
// three shapes applies: Pending (rehydration or login still in flight, hold
// navigation and render a neutral view), Allow, or a redirect to RedirectTo.
type Decision struct {
	Allow      bool
	Pending    bool
	RedirectTo string
}

// Page is a navigable unit of the console.
type Page func(ctx context.Context) error

// Redirect is returned by guarded pages when navigation must move elsewhere.
type Redirect struct {
	Route string
}

func (r *Redirect) Error() string {
	return fmt.Sprintf("redirect to %s", r.Route)
}

// Guard gates navigation on Store state. It keeps no state of its own and
// caches no prior decision; every evaluation reads the store afresh. The
// store is injected so tests can swap it.
type Guard struct {
	store        *Store
	loginRoute   string
	landingRoute string
}

func NewGuard(cfg Config, store *Store) *Guard {
	return &Guard{
		store:        store,
		loginRoute:   cfg.GetLoginRoute(),
		landingRoute: cfg.GetLandingRoute(),
	}
}

// RequireSession allows navigation iff a session is present, otherwise it
// redirects to the login route.
func (g *Guard) RequireSession() Decision {
	if g.store.Loading() {
		return Decision{Pending: true}
	}
	if g.store.Authenticated() {
		return Decision{Allow: true}
	}
	return Decision{RedirectTo: g.loginRoute}
}

// RequireNoSession is the exact inverse: it allows navigation iff no
// session is present, otherwise it redirects to the authenticated landing
// route.
func (g *Guard) RequireNoSession() Decision {
	if g.store.Loading() {
		return Decision{Pending: true}
	}
	if g.store.Authenticated() {
		return Decision{RedirectTo: g.landingRoute}
	}
	return Decision{Allow: true}
}

// RequireRole allows navigation iff the session role meets minRole. The
// role comes from an unverified token, so this hides pages a user cannot
// use; the server still rejects requests the role does not permit.
func (g *Guard) RequireRole(minRole UserRole) Decision {
	decision := g.RequireSession()
	if !decision.Allow {
		return decision
	}
	if RoleAtLeast(g.store.Session().Role, minRole) {
		return Decision{Allow: true}
	}
	return Decision{RedirectTo: g.landingRoute}
}

// Protect wraps a page so it only renders with a session present. Denied
// navigation surfaces as a *Redirect error; pending state holds the page by
// rendering nothing.
func (g *Guard) Protect(next Page) Page {
	return func(ctx context.Context) error {
		decision := g.RequireSession()
		return g.dispatch(ctx, decision, next)
	}
}

// Public wraps a page so it only renders without a session, e.g. the login
// screen for an already-authenticated user.
func (g *Guard) Public(next Page) Page {
	return func(ctx context.Context) error {
		decision := g.RequireNoSession()
		return g.dispatch(ctx, decision, next)
	}
}

func (g *Guard) dispatch(ctx context.Context, decision Decision, next Page) error {
	switch {
	case decision.Pending:
		return nil
	case decision.Allow:
		if session := g.store.Session(); session != nil {
			ctx = WithSessionContext(ctx, session)
		}
		return next(ctx)
	default:
		return &Redirect{Route: decision.RedirectTo}
	}
}

package session

import "github.com/ahmchowd27/safesnap-client/internal/client/models"

// Decision is what a guard tells the navigation layer to do.
type Decision int

const (
	// Allow lets the access attempt through.
	Allow Decision = iota
	// RedirectLogin sends an unauthenticated user to the login entry point.
	RedirectLogin
	// RedirectHome sends an authenticated user with the wrong role to the
	// canonical home for their actual role, not to an error page.
	RedirectHome
)

// Route is a navigation target. The CLI maps these to command groups; a web
// front-end would map them to paths.
type Route string

const (
	RouteLogin       Route = "login"
	RouteWorkerHome  Route = "worker-home"
	RouteManagerHome Route = "manager-home"
)

// HomeFor returns the canonical home route for a role.
func HomeFor(role models.Role) Route {
	if role == models.RoleManager {
		return RouteManagerHome
	}
	return RouteWorkerHome
}

// Outcome bundles the decision with the redirect target when there is one.
type Outcome struct {
	Decision Decision
	Target   Route
}

// Guard gates access to role-specific destinations by observing the current
// session.
type Guard struct {
	sessions *Manager
}

func NewGuard(m *Manager) *Guard {
	return &Guard{sessions: m}
}

// Check decides whether the current user may enter a destination requiring
// the given role.
func (g *Guard) Check(required models.Role) Outcome {
	s, ok := g.sessions.Current()
	if !ok {
		return Outcome{Decision: RedirectLogin, Target: RouteLogin}
	}
	if s.User.Role != required {
		return Outcome{Decision: RedirectHome, Target: HomeFor(s.User.Role)}
	}
	return Outcome{Decision: Allow}
}

// CheckAuthenticated gates destinations any logged-in user may enter.
func (g *Guard) CheckAuthenticated() Outcome {
	if _, ok := g.sessions.Current(); !ok {
		return Outcome{Decision: RedirectLogin, Target: RouteLogin}
	}
	return Outcome{Decision: Allow}
}

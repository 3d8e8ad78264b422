package cli

import (
	"fmt"
	"strconv"

	"github.com/ahmchowd27/safesnap-client/internal/client/models"
	"github.com/ahmchowd27/safesnap-client/internal/client/session"
)

// allowed asks the route guard whether the current user may run a command
// requiring the given role, and translates redirect decisions into prompts.
// The CLI's "routes" are command groups: the login prompt, the worker view,
// the manager view.
func (a *App) allowed(required models.Role) bool {
	out := a.guard.Check(required)
	switch out.Decision {
	case session.Allow:
		return true
	case session.RedirectLogin:
		fmt.Fprintln(a.out, "Please log in first.")
	case session.RedirectHome:
		switch out.Target {
		case session.RouteManagerHome:
			fmt.Fprintln(a.out, "This command is for workers. Returning to the manager view; try 'list', 'status' or 'rca'.")
		default:
			fmt.Fprintln(a.out, "This command is for managers. Returning to the worker view; try 'report' or 'list'.")
		}
	}
	return false
}

// promptID reads a numeric incident id.
func (a *App) promptID(prompt string) (int64, error) {
	raw, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid id: %q", raw)
	}
	return id, nil
}

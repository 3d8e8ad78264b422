package models

import "fmt"

// Role is the closed set of user roles known to the client. Navigation and
// command gating key off it, so unknown values are rejected at the edges
// (login response parsing, session restore) rather than compared ad hoc.
type Role string

const (
	RoleWorker  Role = "WORKER"
	RoleManager Role = "MANAGER"
)

// ParseRole validates a role string coming from the backend or from
// persisted session data.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleWorker:
		return RoleWorker, nil
	case RoleManager:
		return RoleManager, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) Valid() bool {
	return r == RoleWorker || r == RoleManager
}

func (r Role) String() string {
	return string(r)
}

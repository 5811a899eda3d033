package session

import "github.com/avolkovs/bookmarket-cli/internal/client/models"

// Navigation targets used by guard decisions.
const (
	PathLogin = "/login"
	PathHome  = "/"
)

// Action is what the caller should do with a guarded view or command.
type Action int

const (
	// ActionPending: the session outcome is still undetermined
	// (bootstrap in flight); show a neutral placeholder, never redirect.
	ActionPending Action = iota
	// ActionRender: run the view or command.
	ActionRender
	// ActionRedirect: send the caller to Decision.Target.
	ActionRedirect
)

// Decision is the guard's verdict. Target is set only for ActionRedirect.
type Decision struct {
	Action Action
	Target string
}

// Decide maps a session snapshot and a route's required role to exactly
// one outcome. It is pure: no I/O, no side effects, total over every
// input combination. An empty required role means authentication alone
// suffices. Role checks are delegated to the two named predicates so the
// monotonic rule lives in one place.
func Decide(snap Snapshot, required models.Role) Decision {
	if snap.Phase == PhaseBootstrapping {
		return Decision{Action: ActionPending}
	}
	if snap.Phase != PhaseAuthenticated {
		return Decision{Action: ActionRedirect, Target: PathLogin}
	}

	switch required {
	case models.RoleAdmin:
		if !HasAdminAccess(snap.User) {
			return Decision{Action: ActionRedirect, Target: PathHome}
		}
	case models.RoleSeller:
		if !HasSellerAccess(snap.User) {
			return Decision{Action: ActionRedirect, Target: PathHome}
		}
	}
	// No requirement, buyer-level requirement, or a passed check.
	return Decision{Action: ActionRender}
}

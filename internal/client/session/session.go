// Package session owns the client's authentication state: which user is
// logged in, which tokens authorize requests, and whether a command that
// requires a role may run. All mutations go through Manager; everything
// else reads immutable snapshots.
package session

import "github.com/avolkovs/bookmarket-cli/internal/client/models"

// Phase is the session lifecycle phase.
//
// A new Manager starts in PhaseBootstrapping and stays there until
// Bootstrap resolves the persisted credentials one way or the other.
type Phase int

const (
	PhaseBootstrapping Phase = iota
	PhaseAnonymous
	PhaseAuthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseBootstrapping:
		return "bootstrapping"
	case PhaseAnonymous:
		return "anonymous"
	case PhaseAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Snapshot is a point-in-time copy of the session. User is a copy; callers
// may not mutate the live session through it.
//
// Invariant: Phase == PhaseAuthenticated exactly when AccessToken != ""
// and User != nil.
type Snapshot struct {
	Phase        Phase
	AccessToken  string
	RefreshToken string
	User         *models.UserProfile
}

// HasAdminAccess is the single place the admin authorization rule lives:
// the admin role, or the orthogonal staff capability.
func HasAdminAccess(u *models.UserProfile) bool {
	if u == nil {
		return false
	}
	return u.Role == models.RoleAdmin || u.IsStaff
}

// HasSellerAccess is the single place the seller authorization rule lives.
// Admin and staff users pass seller checks as well, so access is monotonic
// in privilege.
func HasSellerAccess(u *models.UserProfile) bool {
	if u == nil {
		return false
	}
	return u.Role == models.RoleSeller || HasAdminAccess(u)
}

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/avolkovs/bookmarket-cli/internal/client/api"
	"github.com/avolkovs/bookmarket-cli/internal/client/credstore"
	"github.com/avolkovs/bookmarket-cli/internal/client/models"
	"github.com/avolkovs/bookmarket-cli/internal/logging"
)

// Manager is the single writer of session state. It is constructed
// explicitly and injected; there is no package-level instance, so tests
// build isolated managers against fakes.
//
// Every transition is applied under the mutex as one atomic update:
// a Snapshot never observes tokens without the matching user or the other
// way around. Overlapping Login/Bootstrap/Logout calls are not serialized
// against each other; the last completed transition wins.
type Manager struct {
	store credstore.Repository
	api   api.Client
	log   logging.Logger

	mu      sync.RWMutex
	phase   Phase
	access  string
	refresh string
	user    *models.UserProfile
}

// NewManager returns a manager in PhaseBootstrapping. Call Bootstrap once
// at startup to resolve the persisted credentials.
func NewManager(store credstore.Repository, apiClient api.Client, log logging.Logger) *Manager {
	return &Manager{
		store: store,
		api:   apiClient,
		log:   log.With("component", "session"),
		phase: PhaseBootstrapping,
	}
}

// Snapshot returns a copy of the current session state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := Snapshot{
		Phase:        m.phase,
		AccessToken:  m.access,
		RefreshToken: m.refresh,
	}
	if m.user != nil {
		u := *m.user
		snap.User = &u
	}
	return snap
}

// IsAdminUser reports whether the current user passes the admin check.
// False when nobody is logged in.
func (m *Manager) IsAdminUser() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return HasAdminAccess(m.user)
}

// IsSellerUser reports whether the current user passes the seller check.
// False when nobody is logged in.
func (m *Manager) IsSellerUser() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return HasSellerAccess(m.user)
}

// Bootstrap restores the session from the credential store. With no stored
// token it settles to anonymous without touching the network. With one, it
// validates the token by fetching the profile; any failure (expired token,
// unreachable server) tears the session down completely, so a stale token
// never lingers on disk. Bootstrap never reports the fetch failure to the
// caller; the outcome is the resulting phase.
func (m *Manager) Bootstrap(ctx context.Context) {
	access, ok, err := m.store.Get(ctx, credstore.KeyAccessToken)
	if err != nil {
		m.log.Warn(ctx, "credential store read failed, starting anonymous", "error", err)
	}
	if !ok || access == "" {
		m.setAnonymous()
		return
	}

	refresh, _, _ := m.store.Get(ctx, credstore.KeyRefreshToken)

	m.mu.Lock()
	m.phase = PhaseBootstrapping
	m.access = access
	m.refresh = refresh
	m.mu.Unlock()
	m.api.SetTokens(access, refresh)

	user, err := m.api.Profile(ctx)
	if err != nil {
		m.log.Info(ctx, "stored token rejected, clearing session", "error", err)
		m.ForceTeardown(ctx)
		return
	}

	m.setAuthenticated(user)
	m.log.Info(ctx, "session restored", "username", user.Username, "role", user.Role)
}

// Login exchanges credentials for a token pair, persists the pair, and
// loads the profile. A failed exchange returns *AuthError and leaves the
// session exactly as it was. A failed profile fetch after a successful
// exchange tears the session down and returns ErrPostLoginProfileFetch.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	pair, err := m.api.ObtainToken(ctx, username, password)
	if err != nil {
		return &AuthError{Reason: authReason(err), cause: err}
	}

	if err := m.store.SetPair(ctx, pair.Access, pair.Refresh); err != nil {
		// Storage is treated as always available; a failed write only
		// costs session restore on the next start.
		m.log.Warn(ctx, "persisting tokens failed", "error", err)
	}

	m.mu.Lock()
	m.access = pair.Access
	m.refresh = pair.Refresh
	m.mu.Unlock()
	m.api.SetTokens(pair.Access, pair.Refresh)

	user, err := m.api.Profile(ctx)
	if err != nil {
		m.ForceTeardown(ctx)
		return fmt.Errorf("%w: %v", ErrPostLoginProfileFetch, err)
	}

	m.setAuthenticated(user)
	m.log.Info(ctx, "logged in", "username", user.Username, "role", user.Role)
	return nil
}

// Register creates an account. The current session is never affected;
// there is no auto-login. The returned error is the *api.Error carrying
// the server's field-keyed validation messages, or its single detail.
func (m *Manager) Register(ctx context.Context, reg models.Registration) error {
	return m.api.Register(ctx, reg)
}

// Logout clears the credential store and the in-memory state. Safe to call
// when already anonymous.
func (m *Manager) Logout(ctx context.Context) {
	m.ForceTeardown(ctx)
	m.log.Info(ctx, "logged out")
}

// ForceTeardown drops the session to anonymous: store cleared, tokens and
// user gone. External collaborators that observe a 401 on an authenticated
// call report it here; the manager does not intercept transport errors
// itself.
func (m *Manager) ForceTeardown(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn(ctx, "clearing credential store failed", "error", err)
	}
	m.api.ClearTokens()
	m.setAnonymous()
}

// UpdateProfile sends a partial profile update and merges the result into
// the current user. Tokens and phase are untouched; role and the staff
// flag cannot change through this path.
func (m *Manager) UpdateProfile(ctx context.Context, partial map[string]any) error {
	m.mu.RLock()
	current := m.user
	m.mu.RUnlock()
	if current == nil {
		return ErrNotAuthenticated
	}

	updated, err := m.api.UpdateProfile(ctx, partial)
	if err != nil {
		return err
	}

	m.mu.Lock()
	if m.user != nil {
		role, staff := m.user.Role, m.user.IsStaff
		merged := *updated
		merged.Role = role
		merged.IsStaff = staff
		m.user = &merged
	}
	m.mu.Unlock()
	return nil
}

// RequestPasswordReset asks the server for a reset code for the given
// account. No session effect. Returns the code the test server echoes
// back.
func (m *Manager) RequestPasswordReset(ctx context.Context, username, contact string) (string, error) {
	return m.api.RequestPasswordReset(ctx, username, contact)
}

// ConfirmPasswordReset completes a password reset. No session effect.
func (m *Manager) ConfirmPasswordReset(ctx context.Context, contact, code, newPassword string) error {
	return m.api.ConfirmPasswordReset(ctx, contact, code, newPassword)
}

func (m *Manager) setAnonymous() {
	m.mu.Lock()
	m.phase = PhaseAnonymous
	m.access = ""
	m.refresh = ""
	m.user = nil
	m.mu.Unlock()
}

func (m *Manager) setAuthenticated(user *models.UserProfile) {
	m.mu.Lock()
	u := *user
	m.user = &u
	m.phase = PhaseAuthenticated
	m.mu.Unlock()
}

// authReason extracts a user-displayable message from a credential
// exchange failure.
func authReason(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	if errors.Is(err, api.ErrUnavailable) {
		return "server unavailable"
	}
	return "login failed"
}

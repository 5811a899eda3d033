package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avolkovs/bookmarket-cli/internal/client/api"
	"github.com/avolkovs/bookmarket-cli/internal/client/models"
	"github.com/avolkovs/bookmarket-cli/internal/client/session"
	"github.com/avolkovs/bookmarket-cli/internal/logging"
)

// memRepo is an in-memory credential store.
type memRepo struct {
	data map[string]string
}

func newMemRepo() *memRepo { return &memRepo{data: map[string]string{}} }

func (r *memRepo) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := r.data[key]
	return v, ok, nil
}
func (r *memRepo) Set(_ context.Context, key, value string) error {
	r.data[key] = value
	return nil
}
func (r *memRepo) SetPair(_ context.Context, access, refresh string) error {
	r.data["token"] = access
	r.data["refreshToken"] = refresh
	return nil
}
func (r *memRepo) Clear(_ context.Context) error {
	r.data = map[string]string{}
	return nil
}

// authAPI implements the auth slice of api.Client; the embedded nil
// interface panics on anything these tests should never touch.
type authAPI struct {
	api.Client

	tokenErr error
	profile  *models.UserProfile
}

func (f *authAPI) SetTokens(_, _ string) {}
func (f *authAPI) ClearTokens()          {}
func (f *authAPI) Close() error          { return nil }

func (f *authAPI) ObtainToken(_ context.Context, _, _ string) (models.TokenPair, error) {
	if f.tokenErr != nil {
		return models.TokenPair{}, f.tokenErr
	}
	return models.TokenPair{Access: "A", Refresh: "R"}, nil
}

func (f *authAPI) Profile(_ context.Context) (*models.UserProfile, error) {
	return f.profile, nil
}

func stubInput(t *testing.T, answers ...string) {
	t.Helper()
	origText, origPw := getSimpleText, getPassword
	i := 0
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) {
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(io.Writer) (string, error) { return "secret", nil }
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })
}

func testApp(t *testing.T, apiClient api.Client) *App {
	t.Helper()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return &App{
		log:     log,
		session: session.NewManager(newMemRepo(), apiClient, log),
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

func TestLogin_Success(t *testing.T) {
	lines := silencePrintln(t)
	stubInput(t, "alice")

	app := testApp(t, &authAPI{profile: &models.UserProfile{Username: "alice", Role: models.RoleSeller}})

	require.NoError(t, app.Login(context.Background(), nil))

	snap := app.session.Snapshot()
	require.Equal(t, session.PhaseAuthenticated, snap.Phase)
	require.Contains(t, strings.Join(*lines, "\n"), "Welcome, alice")
}

func TestLogin_BadCredentialsKeepsSession(t *testing.T) {
	lines := silencePrintln(t)
	stubInput(t, "alice")

	app := testApp(t, &authAPI{tokenErr: &api.Error{Status: 401, Detail: "No active account found with the given credentials"}})
	app.session.Bootstrap(context.Background())

	require.NoError(t, app.Login(context.Background(), nil))

	snap := app.session.Snapshot()
	require.Equal(t, session.PhaseAnonymous, snap.Phase)
	require.Contains(t, strings.Join(*lines, "\n"), "Login failed:")
}

func TestLogout_Idempotent(t *testing.T) {
	silencePrintln(t)

	app := testApp(t, &authAPI{profile: &models.UserProfile{Username: "alice"}})
	app.session.Bootstrap(context.Background())

	require.NoError(t, app.Logout(context.Background(), nil))
	require.NoError(t, app.Logout(context.Background(), nil))
	require.Equal(t, session.PhaseAnonymous, app.session.Snapshot().Phase)
}

package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paletogarage/auth-gateway/auth"
	"github.com/paletogarage/auth-gateway/internal/config"
	apperrors "github.com/paletogarage/auth-gateway/internal/errors"
	"github.com/paletogarage/auth-gateway/roles"
	"github.com/paletogarage/auth-gateway/server"
	"github.com/paletogarage/auth-gateway/sessions"
	"github.com/stretchr/testify/require"
)

const (
	testFrontendURL = "https://app.example.com"
	testSecret      = "secret-a-changer" // config default
	cookieName      = "garage_session"
)

// fakePipeline scripts the outcome of Authenticate.
type fakePipeline struct {
	authenticate func(ctx context.Context, code string) (string, auth.Outcome)
}

func (f fakePipeline) Authenticate(ctx context.Context, code string) (string, auth.Outcome) {
	return f.authenticate(ctx, code)
}

// fakeAuthorize builds a recognizable authorization URL.
type fakeAuthorize struct{}

func (fakeAuthorize) AuthCodeURL(state string) string {
	return "https://discord.com/api/oauth2/authorize?state=" + state
}

// failingRepo always fails destructive operations.
type failingRepo struct{}

func (failingRepo) Upsert(string, sessions.Session) error { return errors.New("store down") }
func (failingRepo) Get(string) (sessions.Session, error) {
	return sessions.Session{}, apperrors.ErrSessionNotFound
}
func (failingRepo) Delete(string) error { return errors.New("store down") }

type fixture struct {
	server *server.Server
	repo   sessions.Repo
}

func newFixture(t *testing.T, pipeline server.Authenticator, repo sessions.Repo) *fixture {
	t.Helper()

	t.Setenv("FRONTEND_URL", testFrontendURL)
	t.Setenv("ENV", "TEST")
	cfg, err := config.New()
	require.NoError(t, err)

	if repo == nil {
		repo = sessions.NewInMemoryRepo()
	}
	if pipeline == nil {
		pipeline = fakePipeline{authenticate: func(ctx context.Context, code string) (string, auth.Outcome) {
			return "", auth.OutcomeAuthFailed
		}}
	}

	return &fixture{
		server: server.New(cfg, pipeline, fakeAuthorize{}, repo),
		repo:   repo,
	}
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) seedSession(t *testing.T) string {
	t.Helper()
	token := sessions.NewToken()
	now := time.Now()
	require.NoError(t, f.repo.Upsert(token, sessions.Session{
		UserID:       "123",
		Username:     "jane",
		Role:         roles.Employee,
		EmployeeName: "Jane Doe",
		Grade:        "Chef Atelier",
		CreatedAt:    now,
		ExpiresAt:    now.Add(24 * time.Hour),
	}))
	return token
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: cookieName, Value: token}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthHandler(t *testing.T) {
	f := newFixture(t, nil, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "ok", body["status"])
	require.NotEmpty(t, body["timestamp"])
}

func TestDiscordLoginHandler(t *testing.T) {
	f := newFixture(t, nil, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/auth/discord", nil))
	require.Equal(t, http.StatusFound, rec.Code)

	location := rec.Header().Get("Location")
	require.Contains(t, location, "https://discord.com/api/oauth2/authorize?state=")

	// The state in the redirect must verify against the configured secret
	state := location[len("https://discord.com/api/oauth2/authorize?state="):]
	require.NoError(t, auth.VerifyStateToken([]byte(testSecret), state))
}

func TestDiscordCallbackHandler(t *testing.T) {
	validState := func(t *testing.T) string {
		t.Helper()
		state, err := auth.NewStateToken([]byte(testSecret), time.Minute)
		require.NoError(t, err)
		return state
	}

	t.Run("missing code redirects with no_code before anything else", func(t *testing.T) {
		f := newFixture(t, fakePipeline{authenticate: func(context.Context, string) (string, auth.Outcome) {
			t.Fatal("pipeline must not run without a code")
			return "", auth.OutcomeAuthFailed
		}}, nil)

		rec := f.do(httptest.NewRequest(http.MethodGet, "/auth/discord/callback", nil))
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, testFrontendURL+"?error=no_code", rec.Header().Get("Location"))
	})

	t.Run("bad state redirects with auth_failed", func(t *testing.T) {
		f := newFixture(t, nil, nil)

		rec := f.do(httptest.NewRequest(http.MethodGet, "/auth/discord/callback?code=abc&state=forged", nil))
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, testFrontendURL+"?error=auth_failed", rec.Header().Get("Location"))
	})

	t.Run("successful pipeline sets the session cookie", func(t *testing.T) {
		f := newFixture(t, fakePipeline{authenticate: func(_ context.Context, code string) (string, auth.Outcome) {
			require.Equal(t, "abc", code)
			return "session-token", auth.OutcomeSuccess
		}}, nil)

		rec := f.do(httptest.NewRequest(http.MethodGet, "/auth/discord/callback?code=abc&state="+validState(t), nil))
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, testFrontendURL+"?auth=success", rec.Header().Get("Location"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		cookie := cookies[0]
		require.Equal(t, cookieName, cookie.Name)
		require.Equal(t, "session-token", cookie.Value)
		require.True(t, cookie.Secure)
		require.True(t, cookie.HttpOnly)
		require.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
		require.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)
	})

	t.Run("pipeline failure redirects with its tag and no cookie", func(t *testing.T) {
		f := newFixture(t, fakePipeline{authenticate: func(context.Context, string) (string, auth.Outcome) {
			return "", auth.OutcomeNotEmployee
		}}, nil)

		rec := f.do(httptest.NewRequest(http.MethodGet, "/auth/discord/callback?code=abc&state="+validState(t), nil))
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, testFrontendURL+"?error=not_employee", rec.Header().Get("Location"))
		require.Empty(t, rec.Result().Cookies())
	})
}

func TestCheckAuthHandler(t *testing.T) {
	t.Run("no cookie is unauthenticated", func(t *testing.T) {
		f := newFixture(t, nil, nil)

		rec := f.do(httptest.NewRequest(http.MethodGet, "/api/check-auth", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		require.Equal(t, false, body["authenticated"])
		require.NotContains(t, body, "user")
	})

	t.Run("live session returns the composite record", func(t *testing.T) {
		f := newFixture(t, nil, nil)
		token := f.seedSession(t)

		req := httptest.NewRequest(http.MethodGet, "/api/check-auth", nil)
		req.AddCookie(sessionCookie(token))

		rec := f.do(req)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		require.Equal(t, true, body["authenticated"])

		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "Jane Doe", user["employeeName"])
		require.Equal(t, "Chef Atelier", user["grade"])
		require.Equal(t, "employee", user["role"])
	})

	t.Run("expired session is unauthenticated", func(t *testing.T) {
		f := newFixture(t, nil, nil)
		token := sessions.NewToken()
		require.NoError(t, f.repo.Upsert(token, sessions.Session{
			UserID:    "123",
			ExpiresAt: time.Now().Add(-time.Minute),
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/check-auth", nil)
		req.AddCookie(sessionCookie(token))

		body := decodeBody(t, f.do(req))
		require.Equal(t, false, body["authenticated"])
	})
}

func TestLogoutHandler(t *testing.T) {
	t.Run("logout destroys the session", func(t *testing.T) {
		f := newFixture(t, nil, nil)
		token := f.seedSession(t)

		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
		req.AddCookie(sessionCookie(token))

		rec := f.do(req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, true, decodeBody(t, rec)["success"])

		// Subsequent check-auth reports unauthenticated
		check := httptest.NewRequest(http.MethodGet, "/api/check-auth", nil)
		check.AddCookie(sessionCookie(token))
		require.Equal(t, false, decodeBody(t, f.do(check))["authenticated"])
	})

	t.Run("logout without a session still succeeds", func(t *testing.T) {
		f := newFixture(t, nil, nil)

		rec := f.do(httptest.NewRequest(http.MethodPost, "/api/logout", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, true, decodeBody(t, rec)["success"])
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		f := newFixture(t, nil, failingRepo{})

		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
		req.AddCookie(sessionCookie("some-token"))

		rec := f.do(req)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotEmpty(t, decodeBody(t, rec)["error"])
	})
}

func TestNotFound(t *testing.T) {
	t.Run("unknown path", func(t *testing.T) {
		f := newFixture(t, nil, nil)

		rec := f.do(httptest.NewRequest(http.MethodGet, "/nope", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "route not found", decodeBody(t, rec)["error"])
	})

	t.Run("wrong method on a known path", func(t *testing.T) {
		f := newFixture(t, nil, nil)

		for _, req := range []*http.Request{
			httptest.NewRequest(http.MethodPost, "/health", nil),
			httptest.NewRequest(http.MethodPost, "/auth/discord", nil),
			httptest.NewRequest(http.MethodGet, "/api/logout", nil),
			httptest.NewRequest(http.MethodDelete, "/api/check-auth", nil),
		} {
			rec := f.do(req)
			require.Equal(t, http.StatusNotFound, rec.Code, "%s %s", req.Method, req.URL.Path)
			require.Equal(t, "route not found", decodeBody(t, rec)["error"])
		}
	})
}

func TestCors(t *testing.T) {
	t.Run("front-end origin gets credentialed CORS headers", func(t *testing.T) {
		f := newFixture(t, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/check-auth", nil)
		req.Header.Set("Origin", testFrontendURL)

		rec := f.do(req)
		require.Equal(t, testFrontendURL, rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("preflight from the front end is honoured", func(t *testing.T) {
		f := newFixture(t, nil, nil)

		req := httptest.NewRequest(http.MethodOptions, "/api/logout", nil)
		req.Header.Set("Origin", testFrontendURL)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rec := f.do(req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, testFrontendURL, rec.Header().Get("Access-Control-Allow-Origin"))
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	})

	t.Run("foreign origin gets no CORS headers", func(t *testing.T) {
		f := newFixture(t, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/check-auth", nil)
		req.Header.Set("Origin", "https://evil.example.com")

		rec := f.do(req)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

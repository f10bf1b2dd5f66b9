package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/paletogarage/auth-gateway/auth"
	"github.com/paletogarage/auth-gateway/sessions"
	"github.com/rs/zerolog/log"
)

const contentTypeJSON = "application/json; charset=utf-8"

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// HealthHandler always answers 200
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// DiscordLoginHandler starts the OAuth flow by redirecting to Discord's
// authorization endpoint with a fresh signed state token.
func (s *Server) DiscordLoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := auth.NewStateToken([]byte(s.config.GetSessionSecret()), s.config.GetStateTTL())
		if err != nil {
			log.Err(err).Msg("failed to mint state token")
			s.redirectOutcome(w, r, auth.OutcomeAuthFailed)
			return
		}

		http.Redirect(w, r, s.authorize.AuthCodeURL(state), http.StatusFound)
	}
}

// DiscordCallbackHandler finishes the OAuth flow. Every terminal state leaves
// as a redirect to the front end carrying an outcome tag, never as a raw
// error page.
func (s *Server) DiscordCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			s.redirectOutcome(w, r, auth.OutcomeNoCode)
			return
		}

		state := r.URL.Query().Get("state")
		if err := auth.VerifyStateToken([]byte(s.config.GetSessionSecret()), state); err != nil {
			log.Warn().Err(err).Msg("callback with bad state")
			s.redirectOutcome(w, r, auth.OutcomeAuthFailed)
			return
		}

		token, outcome := s.pipeline.Authenticate(r.Context(), code)
		if outcome.OK() {
			s.setSessionCookie(w, token)
		}
		s.redirectOutcome(w, r, outcome)
	}
}

// checkAuthResponse is the body of GET /api/check-auth.
type checkAuthResponse struct {
	Authenticated bool              `json:"authenticated"`
	User          *sessions.Session `json:"user,omitempty"`
}

// CheckAuthHandler reports the current session state; it never errors.
func (s *Server) CheckAuthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.sessionFromRequest(r)
		if !ok {
			writeJSON(w, http.StatusOK, checkAuthResponse{Authenticated: false})
			return
		}

		writeJSON(w, http.StatusOK, checkAuthResponse{Authenticated: true, User: &session})
	}
}

// LogoutHandler destroys the session behind the cookie. Destroying an absent
// session succeeds; only a store failure surfaces as a 500.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(s.config.GetSessionCookieName())
		if err == nil && cookie.Value != "" {
			if err := s.sessions.Delete(cookie.Value); err != nil {
				log.Err(err).Msg("failed to delete session")
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "logout failed"})
				return
			}
		}

		s.clearSessionCookie(w)
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// NotFoundHandler answers unmatched routes with a structured body.
func (s *Server) NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "route not found"})
	}
}

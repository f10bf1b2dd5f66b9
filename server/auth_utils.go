package server

import (
	"net/http"
	"net/url"

	"github.com/paletogarage/auth-gateway/auth"
	"github.com/paletogarage/auth-gateway/sessions"
)

// setSessionCookie issues the session cookie. Secure + SameSite=None because
// the callback redirect lands on the front end's origin, not the gateway's.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.GetSessionCookieName(),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   int(s.config.GetSessionTTL().Seconds()),
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.GetSessionCookieName(),
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   -1,
	})
}

// sessionFromRequest resolves the request's cookie to a live session.
func (s *Server) sessionFromRequest(r *http.Request) (sessions.Session, bool) {
	cookie, err := r.Cookie(s.config.GetSessionCookieName())
	if err != nil {
		return sessions.Session{}, false
	}

	// Expired, unknown and store-failure all read as "no session"; check-auth
	// never errors.
	session, err := s.sessions.Get(cookie.Value)
	if err != nil {
		return sessions.Session{}, false
	}

	return session, true
}

// redirectOutcome sends the client back to the front end with the outcome tag
// in the query string.
func (s *Server) redirectOutcome(w http.ResponseWriter, r *http.Request, outcome auth.Outcome) {
	target := s.config.GetFrontendURL()
	if outcome.OK() {
		target += "?auth=success"
	} else {
		target += "?error=" + url.QueryEscape(string(outcome))
	}
	http.Redirect(w, r, target, http.StatusFound)
}

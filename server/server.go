package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/paletogarage/auth-gateway/auth"
	"github.com/paletogarage/auth-gateway/internal/config"
	"github.com/paletogarage/auth-gateway/sessions"
)

// Authenticator runs the full authentication pipeline for one callback.
type Authenticator interface {
	Authenticate(ctx context.Context, code string) (string, auth.Outcome)
}

// AuthorizeURLBuilder builds the provider authorization redirect.
type AuthorizeURLBuilder interface {
	AuthCodeURL(state string) string
}

type Server struct {
	env       string // Environment (e.g., "DEV", "PROD")
	mux       *http.ServeMux
	routes    []string
	notFound  http.HandlerFunc
	config    config.Config
	pipeline  Authenticator
	authorize AuthorizeURLBuilder
	sessions  sessions.Repo
}

func New(cfg config.Config, pipeline Authenticator, authorize AuthorizeURLBuilder, sessionRepo sessions.Repo) *Server {
	s := &Server{
		mux:       http.NewServeMux(),
		config:    cfg,
		pipeline:  pipeline,
		authorize: authorize,
		sessions:  sessionRepo,
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// RegisterRouteFunc routes a path by method. The mux itself never sees the
// methods; a request with an unrouted method gets the same structured 404 as
// an unknown path, not the mux's plain-text 405.
func (s *Server) RegisterRouteFunc(path string, handlers map[string]http.HandlerFunc) {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	for _, method := range methods {
		s.routes = append(s.routes, method+" "+path)
	}

	s.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler(w, r)
			return
		}
		s.notFound(w, r)
	})
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

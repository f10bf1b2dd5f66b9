package server

import "net/http"

func (s *Server) initRoutes() {
	s.notFound = ChainMiddleware(s.NotFoundHandler(), s.StdMiddleware()...)

	s.RegisterRouteFunc(RouteHealth, map[string]http.HandlerFunc{
		http.MethodGet: s.HealthHandler(),
	})

	// Discord OAuth flow
	s.RegisterRouteFunc(RouteAuthDiscord, map[string]http.HandlerFunc{
		http.MethodGet: ChainMiddleware(s.DiscordLoginHandler(), s.StdMiddleware()...),
	})
	s.RegisterRouteFunc(RouteAuthDiscordCallback, map[string]http.HandlerFunc{
		http.MethodGet: ChainMiddleware(s.DiscordCallbackHandler(), s.StdMiddleware()...),
	})

	// Session API used by the front end
	s.RegisterRouteFunc(RouteAPICheckAuth, map[string]http.HandlerFunc{
		http.MethodGet:     ChainMiddleware(s.CheckAuthHandler(), s.APIMiddleware()...),
		http.MethodOptions: ChainMiddleware(s.PreflightHandler(), s.APIMiddleware()...),
	})
	s.RegisterRouteFunc(RouteAPILogout, map[string]http.HandlerFunc{
		http.MethodPost:    ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...),
		http.MethodOptions: ChainMiddleware(s.PreflightHandler(), s.APIMiddleware()...),
	})

	// Everything else is a structured 404
	s.routes = append(s.routes, "/")
	s.mux.HandleFunc("/", s.notFound)
}

// PreflightHandler terminates CORS preflight requests; the CORS middleware has
// already written the headers by the time it runs.
func (s *Server) PreflightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}

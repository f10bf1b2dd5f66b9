package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteHealth = "/health"

	// Auth Routes - Discord OAuth flow
	RouteAuthDiscord         = "/auth/discord"
	RouteAuthDiscordCallback = "/auth/discord/callback"

	// API Routes
	RouteAPICheckAuth = "/api/check-auth"
	RouteAPILogout    = "/api/logout"
)

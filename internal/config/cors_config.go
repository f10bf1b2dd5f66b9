package config

import "strings"

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type AllowedOrigins map[string]struct{}

func (a AllowedOrigins) IsAllowedOrigin(origin string) bool {
	_, ok := a[origin]
	return ok
}

func (a AllowedOrigins) String() string {
	var origins []string
	for k := range a {
		origins = append(origins, k)
	}
	return strings.Join(origins, ", ")
}

type Cors struct {
	AllowedMethods string `env:"CORS_ALLOWED_METHODS" envDefault:"GET, POST, OPTIONS"`
	AllowedHeaders string `env:"CORS_ALLOWED_HEADERS" envDefault:"Content-Type, Authorization"`
}

// GetAllowedOrigins allows the configured front end only; the gateway serves a
// single known SPA with credentialed requests, so no wildcard.
func (c mainConfig) GetAllowedOrigins() AllowedOrigins {
	return AllowedOrigins{c.GetFrontendURL(): {}}
}

func (c Cors) GetAllowedMethods() string {
	return c.AllowedMethods
}

func (c Cors) GetAllowedHeaders() string {
	return c.AllowedHeaders
}

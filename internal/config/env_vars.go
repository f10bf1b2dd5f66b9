package config

import "strings"

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetFrontendURL() string
}

type EnvVars struct {
	Port        string `env:"PORT" envDefault:"3000"`
	AppName     string `env:"APP_NAME" envDefault:"Paleto Garage"`
	Environment string `env:"ENV" envDefault:"DEV"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`
}

var _ EnvConfig = EnvVars{}

func (e EnvVars) GetPort() string {
	if strings.HasPrefix(e.Port, ":") {
		return e.Port
	}
	return ":" + e.Port
}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetEnv() string {
	return e.Environment
}

// GetFrontendURL returns the external front-end base URL that the OAuth
// callback redirects back to (e.g. "https://app.example.com").
func (e EnvVars) GetFrontendURL() string {
	return strings.TrimSuffix(e.FrontendURL, "/")
}

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config interface {
	EnvConfig
	CorsConfig
	DiscordConfig
	SheetsConfig
	SessionConfig
}

type mainConfig struct {
	EnvVars
	Cors
	Discord
	Sheets
	Session
}

func New() (Config, error) {
	var c mainConfig
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("config.New: %w", err)
	}
	return c, nil
}

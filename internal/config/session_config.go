package config

import "time"

type SessionConfig interface {
	GetSessionSecret() string
	GetSessionTTL() time.Duration
	GetSessionCookieName() string
	GetStateTTL() time.Duration
}

type Session struct {
	Secret     string        `env:"SESSION_SECRET" envDefault:"secret-a-changer"`
	TTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"garage_session"`
	StateTTL   time.Duration `env:"OAUTH_STATE_TTL" envDefault:"15m"`
}

var _ SessionConfig = Session{}

func (s Session) GetSessionSecret() string {
	return s.Secret
}

// GetSessionTTL is the absolute session lifetime from creation; there is no
// sliding renewal.
func (s Session) GetSessionTTL() time.Duration {
	return s.TTL
}

func (s Session) GetSessionCookieName() string {
	return s.CookieName
}

// GetStateTTL bounds how long a login redirect may sit before the callback
// returns with its state token.
func (s Session) GetStateTTL() time.Duration {
	return s.StateTTL
}

package config

type DiscordConfig interface {
	GetDiscordClientID() string
	GetDiscordClientSecret() string
	GetDiscordRedirectURI() string
	GetDiscordBaseURL() string
}

type Discord struct {
	ClientID     string `env:"DISCORD_CLIENT_ID"`
	ClientSecret string `env:"DISCORD_CLIENT_SECRET"`
	RedirectURI  string `env:"DISCORD_REDIRECT_URI"`
	// BaseURL is overridable so tests can point the exchanger at a local double.
	BaseURL string `env:"DISCORD_BASE_URL" envDefault:"https://discord.com"`
}

var _ DiscordConfig = Discord{}

func (d Discord) GetDiscordClientID() string {
	return d.ClientID
}

func (d Discord) GetDiscordClientSecret() string {
	return d.ClientSecret
}

func (d Discord) GetDiscordRedirectURI() string {
	return d.RedirectURI
}

func (d Discord) GetDiscordBaseURL() string {
	return d.BaseURL
}

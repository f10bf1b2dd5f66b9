package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/paletogarage/auth-gateway/internal/config"
	apperrors "github.com/paletogarage/auth-gateway/internal/errors"
	"golang.org/x/oauth2"
)

const requestTimeout = 10 * time.Second

// Exchanger turns a single-use authorization code into a Discord identity.
// It performs the token exchange followed by the /users/@me fetch; neither
// call is retried, authorization codes burn on first use.
type Exchanger struct {
	oauth   *oauth2.Config
	userURL string
	client  *http.Client
}

func NewExchanger(cfg config.DiscordConfig) *Exchanger {
	base := strings.TrimSuffix(cfg.GetDiscordBaseURL(), "/")

	return &Exchanger{
		oauth: &oauth2.Config{
			ClientID:     cfg.GetDiscordClientID(),
			ClientSecret: cfg.GetDiscordClientSecret(),
			RedirectURL:  cfg.GetDiscordRedirectURI(),
			Scopes:       []string{"identify"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  base + "/api/oauth2/authorize",
				TokenURL: base + "/api/oauth2/token",
				// Discord expects client credentials in the POST body
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		userURL: base + "/api/users/@me",
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// AuthCodeURL builds the provider authorization redirect carrying the given
// state token.
func (e *Exchanger) AuthCodeURL(state string) string {
	return e.oauth.AuthCodeURL(state)
}

// Exchange swaps the authorization code for an access token and fetches the
// authenticated user's identity with it. An empty code fails before any
// provider round trip.
func (e *Exchanger) Exchange(ctx context.Context, code string) (Identity, error) {
	if code == "" {
		return Identity{}, apperrors.ErrNoCode
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, e.client)

	token, err := e.oauth.Exchange(ctx, code)
	if err != nil {
		return Identity{}, apperrors.Wrapf(apperrors.ErrExchange, "discord token endpoint: %v", err)
	}

	identity, err := e.fetchIdentity(ctx, token.AccessToken)
	if err != nil {
		return Identity{}, apperrors.Wrapf(apperrors.ErrIdentity, "discord user endpoint: %v", err)
	}

	return identity, nil
}

func (e *Exchanger) fetchIdentity(ctx context.Context, accessToken string) (Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.userURL, nil)
	if err != nil {
		return Identity{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := e.client.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Identity{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return Identity{}, fmt.Errorf("decode response: %w", err)
	}
	if identity.Discriminator == "" {
		identity.Discriminator = "0"
	}

	return identity, nil
}

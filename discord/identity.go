package discord

import "fmt"

const cdnBaseURL = "https://cdn.discordapp.com"

// Identity is the public Discord user returned by /users/@me.
// It lives for a single authentication attempt and is never stored on its own.
type Identity struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Avatar        string `json:"avatar"`
}

// AvatarURL resolves the CDN image for the user, falling back to the default
// embed avatar when the user has none.
func (i Identity) AvatarURL() string {
	if i.Avatar == "" {
		return cdnBaseURL + "/embed/avatars/0.png"
	}
	return fmt.Sprintf("%s/avatars/%s/%s.png", cdnBaseURL, i.ID, i.Avatar)
}

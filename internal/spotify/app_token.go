package spotify

import (
	"context"
	"errors"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

// ErrMissingCredentials is returned when the client ID or secret is empty.
var ErrMissingCredentials = errors.New("missing Spotify client credentials")

// NewAppClient builds a client authenticated with the client-credentials
// grant, for anonymous catalog access. The underlying token source caches
// the app token for the grant's validity window and renews it on expiry,
// so one app client is shared across requests.
func NewAppClient(ctx context.Context, clientID, clientSecret string) (*Client, error) {
	if clientID == "" || clientSecret == "" {
		return nil, ErrMissingCredentials
	}

	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	return New(spotify.New(cfg.Client(ctx))), nil
}

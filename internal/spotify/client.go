// Package spotify wraps the Spotify Web API for the mood-tunes server.
package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"

	"github.com/moodtunes/go-mood-tunes/internal/music"
)

// Client wraps the Spotify API client with mood-tunes convenience methods.
type Client struct {
	api *spotify.Client
}

// New creates a new Spotify client wrapper.
// The underlying client should already be authenticated.
func New(api *spotify.Client) *Client {
	return &Client{api: api}
}

// NewUserClient builds a client acting on behalf of a user, using the bearer
// token carried in the request cookies. The token is forwarded as-is; no
// refresh is attempted (re-login is the refresh path).
func NewUserClient(ctx context.Context, auth *spotifyauth.Authenticator, token *oauth2.Token) *Client {
	return New(spotify.New(auth.Client(ctx, token)))
}

// CurrentUserName returns the signed-in user's display name, falling back to
// the account ID when no display name is set.
// Returns music.ErrTokenExpired if the provider rejects the token.
func (c *Client) CurrentUserName(ctx context.Context) (string, error) {
	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		if isAuthError(err) {
			return "", music.ErrTokenExpired
		}
		return "", fmt.Errorf("getting current user: %w", err)
	}

	if user.DisplayName != "" {
		return user.DisplayName, nil
	}
	return user.ID, nil
}

// isAuthError reports whether err is a provider rejection of the bearer token.
func isAuthError(err error) bool {
	var se spotify.Error
	return errors.As(err, &se) && se.Status == http.StatusUnauthorized
}

// isAPIError reports whether err is a non-2xx response from the provider, as
// opposed to a transport failure.
func isAPIError(err error) bool {
	var se spotify.Error
	return errors.As(err, &se)
}

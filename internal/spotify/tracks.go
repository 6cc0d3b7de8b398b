package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	"github.com/moodtunes/go-mood-tunes/internal/music"
)

// TopTracks fetches up to limit of the user's top tracks over the
// medium-term listening window.
// Returns music.ErrTokenExpired if the provider rejects the bearer token;
// any other failure is a generic fetch error.
func (c *Client) TopTracks(ctx context.Context, limit int) ([]music.Track, error) {
	page, err := c.api.CurrentUsersTopTracks(ctx,
		spotify.Timerange(spotify.MediumTermRange),
		spotify.Limit(limit),
	)
	if err != nil {
		if isAuthError(err) {
			return nil, music.ErrTokenExpired
		}
		return nil, fmt.Errorf("fetching top tracks: %w", err)
	}

	tracks := make([]music.Track, 0, len(page.Tracks))
	for _, ft := range page.Tracks {
		tracks = append(tracks, convertFullTrack(ft))
	}
	return tracks, nil
}

// SearchGenre searches the catalog for tracks tagged with the given genre.
// Single page, no pagination. A non-2xx provider response yields an empty
// list rather than an error; callers treat "no results" as a valid outcome.
func (c *Client) SearchGenre(ctx context.Context, genre string, limit, offset int) ([]music.Track, error) {
	result, err := c.api.Search(ctx, "genre:"+genre, spotify.SearchTypeTrack,
		spotify.Limit(limit),
		spotify.Offset(offset),
	)
	if err != nil {
		if isAPIError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("searching genre %q: %w", genre, err)
	}

	if result.Tracks == nil {
		return nil, nil
	}

	tracks := make([]music.Track, 0, len(result.Tracks.Tracks))
	for _, ft := range result.Tracks.Tracks {
		tracks = append(tracks, convertFullTrack(ft))
	}
	return tracks, nil
}

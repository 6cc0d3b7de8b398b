package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	"github.com/moodtunes/go-mood-tunes/internal/music"
)

// maxFeaturesPerRequest is the provider's batch limit for audio features.
const maxFeaturesPerRequest = 100

// AudioFeatures fetches audio features for the given track IDs, batched per
// the API limit. Tracks with no available features are absent from the
// result map.
func (c *Client) AudioFeatures(ctx context.Context, ids []string) (map[string]music.AudioFeatures, error) {
	features := make(map[string]music.AudioFeatures, len(ids))
	if len(ids) == 0 {
		return features, nil
	}

	spotifyIDs := make([]spotify.ID, len(ids))
	for i, id := range ids {
		spotifyIDs[i] = spotify.ID(id)
	}

	for start := 0; start < len(spotifyIDs); start += maxFeaturesPerRequest {
		end := min(start+maxFeaturesPerRequest, len(spotifyIDs))

		batch, err := c.api.GetAudioFeatures(ctx, spotifyIDs[start:end]...)
		if err != nil {
			if isAuthError(err) {
				return nil, music.ErrTokenExpired
			}
			return nil, fmt.Errorf("fetching audio features (batch %d-%d): %w", start+1, end, err)
		}

		for _, f := range batch {
			if f == nil {
				continue // track has no audio features
			}
			features[f.ID.String()] = convertFeatures(f)
		}
	}

	return features, nil
}

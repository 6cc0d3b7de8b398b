package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	"github.com/moodtunes/go-mood-tunes/internal/music"
)

// Recommend fetches up to limit recommended tracks for the given seeds,
// biased toward the target audio features. Single attempt, single page.
// A non-2xx provider response yields an empty list rather than an error.
func (c *Client) Recommend(ctx context.Context, seeds music.Seeds, target music.TargetFeatures, limit int, market string) ([]music.Track, error) {
	apiSeeds := spotify.Seeds{Genres: seeds.Genres}
	for _, id := range seeds.Tracks {
		apiSeeds.Tracks = append(apiSeeds.Tracks, spotify.ID(id))
	}
	for _, id := range seeds.Artists {
		apiSeeds.Artists = append(apiSeeds.Artists, spotify.ID(id))
	}

	attrs := spotify.NewTrackAttributes().
		TargetValence(target.Valence).
		TargetEnergy(target.Energy)
	if target.Danceability > 0 {
		attrs = attrs.TargetDanceability(target.Danceability)
	}

	recs, err := c.api.GetRecommendations(ctx, apiSeeds, attrs,
		spotify.Limit(limit),
		spotify.Market(market),
	)
	if err != nil {
		if isAPIError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetching recommendations: %w", err)
	}

	tracks := make([]music.Track, 0, len(recs.Tracks))
	for _, st := range recs.Tracks {
		tracks = append(tracks, convertSimpleTrack(st))
	}
	return tracks, nil
}

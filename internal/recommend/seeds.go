package recommend

import (
	"context"
	"errors"
	"fmt"

	"github.com/moodtunes/go-mood-tunes/internal/mood"
	"github.com/moodtunes/go-mood-tunes/internal/music"
)

// selection is the outcome of seed selection for a personalized request.
type selection struct {
	Seeds music.Seeds
	Names []string

	// Promoted are mood-matched top tracks placed at the front of the
	// final list as direct picks.
	Promoted []music.Track

	// Features of all retrieved top tracks, kept for profiling.
	Features []music.AudioFeatures
}

// selectSeeds picks up to music.MaxSeeds recommendation seeds from the
// listener's history, in this priority order:
//
//  1. top tracks whose audio features match the mood's predicate,
//     uniformly shuffled to avoid the provider's positional bias;
//  2. a random top track's primary artist plus a random genre from the
//     mood's pool;
//  3. a genre alone;
//  4. no seeds at all — the caller degrades to plain search.
//
// A provider token rejection propagates as music.ErrTokenExpired.
func (s *Service) selectSeeds(ctx context.Context, api MusicAPI, pol mood.Policy) (selection, error) {
	top, err := api.TopTracks(ctx, topTracksLimit)
	if err != nil {
		if errors.Is(err, music.ErrTokenExpired) {
			return selection{}, err
		}
		return selection{}, fmt.Errorf("fetching top tracks: %w", err)
	}

	var sel selection
	var matches []music.Track

	if len(top) > 0 {
		feats, err := api.AudioFeatures(ctx, trackIDs(top))
		if err != nil {
			if errors.Is(err, music.ErrTokenExpired) {
				return selection{}, err
			}
			return selection{}, fmt.Errorf("fetching audio features: %w", err)
		}

		// Order-preserving filter over the listener's top tracks.
		for _, t := range top {
			f, ok := feats[t.ID]
			if !ok {
				continue
			}
			sel.Features = append(sel.Features, f)
			if pol.Matches(f) {
				matches = append(matches, t)
			}
		}
	}

	if len(matches) > 0 {
		s.mu.Lock()
		chosen := shuffled(s.rng, matches)
		s.mu.Unlock()

		if len(chosen) > music.MaxSeeds {
			chosen = chosen[:music.MaxSeeds]
		}

		sel.Promoted = chosen
		for _, t := range chosen {
			sel.Seeds.Tracks = append(sel.Seeds.Tracks, t.ID)
			sel.Names = append(sel.Names, t.Name)
		}
		return sel, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// No mood matches in the history: seed with a random artist from the
	// history plus a genre, so results stay a little personal.
	if len(top) > 0 {
		if artist := pick(s.rng, top).PrimaryArtist(); artist.ID != "" {
			genre := pick(s.rng, pol.Genres)
			sel.Seeds = music.Seeds{Artists: []string{artist.ID}, Genres: []string{genre}}
			sel.Names = []string{artist.Name, genre}
			return sel, nil
		}
	}

	if len(pol.Genres) > 0 {
		genre := pick(s.rng, pol.Genres)
		sel.Seeds = music.Seeds{Genres: []string{genre}}
		sel.Names = []string{genre}
		return sel, nil
	}

	return sel, nil
}

func trackIDs(tracks []music.Track) []string {
	ids := make([]string, len(tracks))
	for i, t := range tracks {
		ids[i] = t.ID
	}
	return ids
}

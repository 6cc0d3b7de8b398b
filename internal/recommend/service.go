// Package recommend turns a mood into a track list, using the listener's
// history when a user client is available and plain genre search otherwise.
package recommend

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/rs/zerolog"

	"github.com/moodtunes/go-mood-tunes/internal/mood"
	"github.com/moodtunes/go-mood-tunes/internal/music"
)

// MusicAPI is the slice of the provider client the recommender depends on.
type MusicAPI interface {
	TopTracks(ctx context.Context, limit int) ([]music.Track, error)
	AudioFeatures(ctx context.Context, ids []string) (map[string]music.AudioFeatures, error)
	Recommend(ctx context.Context, seeds music.Seeds, target music.TargetFeatures, limit int, market string) ([]music.Track, error)
	SearchGenre(ctx context.Context, genre string, limit, offset int) ([]music.Track, error)
}

const (
	// TargetCount is the track count for a personalized response.
	TargetCount = 10

	// AnonymousCount is the track count for an anonymous response.
	AnonymousCount = 5

	topTracksLimit  = 50
	searchPageSize  = 10
	maxSearchOffset = 100 // random page offset keeps repeat queries fresh
)

// Service selects and fetches mood-matched tracks.
// Safe for concurrent use.
type Service struct {
	market string
	log    zerolog.Logger

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewService creates a Service querying the given market.
func NewService(market string, logger zerolog.Logger) *Service {
	return &Service{
		market: market,
		log:    logger,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Result is the payload for a personalized recommendation request.
type Result struct {
	Tracks []music.Track

	// SeedNames are human-readable names of the chosen seeds, for UI
	// transparency ("based on: X, Y").
	SeedNames []string

	// Seeds are the raw identifiers sent to the provider.
	Seeds music.Seeds

	// Features are the audio features of the listener's top tracks,
	// for downstream profiling.
	Features []music.AudioFeatures
}

// MoodTracks returns tracks for a mood without any user context: one catalog
// search for a randomly chosen genre from the mood's pool, at a random page
// offset, shuffled and truncated.
func (s *Service) MoodTracks(ctx context.Context, api MusicAPI, m mood.Mood) ([]music.Track, error) {
	pol := mood.PolicyFor(m)

	s.mu.Lock()
	genre := pick(s.rng, pol.Genres)
	offset := s.rng.IntN(maxSearchOffset)
	s.mu.Unlock()

	found, err := api.SearchGenre(ctx, genre, searchPageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("searching %s tracks: %w", genre, err)
	}

	s.mu.Lock()
	tracks := shuffled(s.rng, found)
	s.mu.Unlock()

	if len(tracks) > AnonymousCount {
		tracks = tracks[:AnonymousCount]
	}
	return tracks, nil
}

// PersonalizedTracks returns mood-matched tracks biased by the listener's
// history. Mood-matched top tracks lead the list; provider recommendations
// fill the remainder up to TargetCount, deduplicated by track ID.
// Returns music.ErrTokenExpired unwrapped so callers can prompt re-login.
func (s *Service) PersonalizedTracks(ctx context.Context, api MusicAPI, m mood.Mood) (*Result, error) {
	pol := mood.PolicyFor(m)

	sel, err := s.selectSeeds(ctx, api, pol)
	if err != nil {
		return nil, err
	}

	var recs []music.Track
	if sel.Seeds.Count() > 0 {
		recs, err = api.Recommend(ctx, sel.Seeds, pol.Target, TargetCount, s.market)
		if err != nil {
			return nil, fmt.Errorf("fetching recommendations: %w", err)
		}
	}

	// Last resort: no seeds, or the seeded call came back empty.
	// Degrade to a plain genre search like the anonymous path.
	if len(sel.Promoted) == 0 && len(recs) == 0 {
		s.log.Debug().Str("mood", string(m)).Msg("no seeded results, degrading to genre search")

		s.mu.Lock()
		genre := pick(s.rng, pol.Genres)
		offset := s.rng.IntN(maxSearchOffset)
		s.mu.Unlock()

		recs, err = api.SearchGenre(ctx, genre, TargetCount, offset)
		if err != nil {
			return nil, fmt.Errorf("searching %s tracks: %w", genre, err)
		}
	}

	return &Result{
		Tracks:    shapeTracks(sel.Promoted, recs, TargetCount),
		SeedNames: sel.Names,
		Seeds:     sel.Seeds,
		Features:  sel.Features,
	}, nil
}

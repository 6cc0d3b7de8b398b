// Package music defines the domain types shared by the mood-tunes packages:
// tracks, audio features, and recommendation seeds. External API payloads are
// converted into these types at the boundary so the rest of the code never
// handles untyped data.
package music

import "errors"

// ErrTokenExpired is returned when the music provider rejects the caller's
// bearer token. Handlers map it to a 401 so the client can prompt re-login.
var ErrTokenExpired = errors.New("bearer token expired")

// Artist identifies a track artist.
type Artist struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Track is the track shape served to the frontend.
type Track struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Artists     []Artist `json:"artists"`
	AlbumName   string   `json:"albumName,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	PreviewURL  string   `json:"previewUrl,omitempty"`
	ExternalURL string   `json:"externalUrl,omitempty"`
}

// PrimaryArtist returns the first listed artist, or the zero Artist if the
// track has none.
func (t Track) PrimaryArtist() Artist {
	if len(t.Artists) == 0 {
		return Artist{}
	}
	return t.Artists[0]
}

// AudioFeatures holds the provider-computed descriptors used for mood
// matching and profiling. All values are in [0, 1].
type AudioFeatures struct {
	Valence      float64 `json:"valence"`
	Energy       float64 `json:"energy"`
	Danceability float64 `json:"danceability"`
	Acousticness float64 `json:"acousticness"`
}

// TargetFeatures biases the provider's recommendation ranking.
// A zero Danceability means no danceability target is sent.
type TargetFeatures struct {
	Valence      float64
	Energy       float64
	Danceability float64
}

// MaxSeeds is the provider's hard limit on seeds per recommendation call,
// counted across all seed kinds.
const MaxSeeds = 5

// Seeds identifies the entities a recommendation call is seeded with.
type Seeds struct {
	Tracks  []string `json:"seedTracks,omitempty"`
	Artists []string `json:"seedArtists,omitempty"`
	Genres  []string `json:"seedGenres,omitempty"`
}

// Count returns the total number of seed entries across all kinds.
func (s Seeds) Count() int {
	return len(s.Tracks) + len(s.Artists) + len(s.Genres)
}

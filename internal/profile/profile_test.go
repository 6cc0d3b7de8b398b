package profile

import (
	"testing"

	"github.com/moodtunes/go-mood-tunes/internal/music"
)

func TestVibeName(t *testing.T) {
	tests := []struct {
		name         string
		energy       float64
		valence      float64
		acousticness float64
		want         string
	}{
		{"high energy high valence", 0.8, 0.7, 0.2, "Upbeat Party"},
		{"high energy low valence", 0.8, 0.3, 0.2, "Intense & Dark"},
		{"low energy high valence", 0.4, 0.7, 0.3, "Chill & Happy"},
		{"low energy low valence", 0.3, 0.3, 0.4, "Reflective & Melancholy"},
		{"high acousticness adds modifier", 0.4, 0.7, 0.8, "Chill & Happy (Acoustic)"},
		{"boundary energy exactly 0.6 is low", 0.6, 0.7, 0.2, "Chill & Happy"},
		{"boundary valence exactly 0.5 is low", 0.8, 0.5, 0.2, "Intense & Dark"},
		{"boundary acousticness exactly 0.6 no modifier", 0.8, 0.7, 0.6, "Upbeat Party"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vibeName(tt.energy, tt.valence, tt.acousticness)
			if got != tt.want {
				t.Errorf("vibeName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildTooFewTracks(t *testing.T) {
	feats := []music.AudioFeatures{
		{Energy: 0.8, Valence: 0.7},
		{Energy: 0.2, Valence: 0.2},
	}

	if got := Build(feats); got != nil {
		t.Errorf("Build() = %+v, want nil for fewer tracks than clusters", got)
	}
}

func TestBuildDominantCluster(t *testing.T) {
	// A history dominated by bright, energetic tracks, plus a couple of
	// quiet outliers. The dominant cluster should name the profile.
	var feats []music.AudioFeatures
	for range 12 {
		feats = append(feats, music.AudioFeatures{
			Energy: 0.85, Valence: 0.8, Danceability: 0.7, Acousticness: 0.1,
		})
	}
	feats = append(feats,
		music.AudioFeatures{Energy: 0.1, Valence: 0.2, Danceability: 0.2, Acousticness: 0.9},
		music.AudioFeatures{Energy: 0.15, Valence: 0.25, Danceability: 0.3, Acousticness: 0.8},
		music.AudioFeatures{Energy: 0.5, Valence: 0.45, Danceability: 0.5, Acousticness: 0.4},
	)

	vibe := Build(feats)
	if vibe == nil {
		t.Fatal("Build() = nil, want a profile")
	}

	if vibe.Name != "Upbeat Party" {
		t.Errorf("Name = %q, want %q", vibe.Name, "Upbeat Party")
	}
	if vibe.TrackCount < 10 {
		t.Errorf("TrackCount = %d, want the dominant cluster", vibe.TrackCount)
	}
	if vibe.Energy <= highEnergyThreshold {
		t.Errorf("Energy = %v, want above %v", vibe.Energy, highEnergyThreshold)
	}
}

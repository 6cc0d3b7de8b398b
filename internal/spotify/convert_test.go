package spotify

import (
	"errors"
	"fmt"
	"testing"

	"github.com/zmb3/spotify/v2"
)

func TestConvertFullTrack(t *testing.T) {
	ft := spotify.FullTrack{
		SimpleTrack: spotify.SimpleTrack{
			ID:   spotify.ID("track-1"),
			Name: "Paranoid Android",
			Artists: []spotify.SimpleArtist{
				{ID: spotify.ID("artist-1"), Name: "Radiohead"},
			},
			PreviewURL:   "https://p.scdn.co/preview/1",
			ExternalURLs: map[string]string{"spotify": "https://open.spotify.com/track/1"},
		},
		Album: spotify.SimpleAlbum{
			Name:   "OK Computer",
			Images: []spotify.Image{{URL: "https://i.scdn.co/image/1"}},
		},
	}

	got := convertFullTrack(ft)

	if got.ID != "track-1" || got.Name != "Paranoid Android" {
		t.Errorf("track identity = %q/%q", got.ID, got.Name)
	}
	if len(got.Artists) != 1 || got.Artists[0].Name != "Radiohead" || got.Artists[0].ID != "artist-1" {
		t.Errorf("artists = %+v", got.Artists)
	}
	if got.AlbumName != "OK Computer" {
		t.Errorf("AlbumName = %q", got.AlbumName)
	}
	if got.ImageURL != "https://i.scdn.co/image/1" {
		t.Errorf("ImageURL = %q", got.ImageURL)
	}
	if got.PreviewURL != "https://p.scdn.co/preview/1" {
		t.Errorf("PreviewURL = %q", got.PreviewURL)
	}
	if got.ExternalURL != "https://open.spotify.com/track/1" {
		t.Errorf("ExternalURL = %q", got.ExternalURL)
	}
}

func TestConvertFullTrackDefaultsMissingFields(t *testing.T) {
	got := convertFullTrack(spotify.FullTrack{
		SimpleTrack: spotify.SimpleTrack{ID: spotify.ID("bare"), Name: "Untitled"},
	})

	if got.ImageURL != "" || got.PreviewURL != "" || got.ExternalURL != "" {
		t.Errorf("missing fields not defaulted: %+v", got)
	}
	if len(got.Artists) != 0 {
		t.Errorf("Artists = %+v, want empty", got.Artists)
	}
}

func TestConvertFeatures(t *testing.T) {
	f := &spotify.AudioFeatures{
		Valence:      0.8,
		Energy:       0.7,
		Danceability: 0.6,
		Acousticness: 0.1,
	}

	got := convertFeatures(f)

	if got.Valence < 0.79 || got.Valence > 0.81 {
		t.Errorf("Valence = %v", got.Valence)
	}
	if got.Energy < 0.69 || got.Energy > 0.71 {
		t.Errorf("Energy = %v", got.Energy)
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantAuth bool
		wantAPI  bool
	}{
		{"provider 401", spotify.Error{Status: 401, Message: "The access token expired"}, true, true},
		{"provider 404", spotify.Error{Status: 404, Message: "Not found"}, false, true},
		{"wrapped provider 401", fmt.Errorf("call: %w", spotify.Error{Status: 401}), true, true},
		{"transport error", errors.New("connection refused"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isAuthError(tt.err); got != tt.wantAuth {
				t.Errorf("isAuthError() = %v, want %v", got, tt.wantAuth)
			}
			if got := isAPIError(tt.err); got != tt.wantAPI {
				t.Errorf("isAPIError() = %v, want %v", got, tt.wantAPI)
			}
		})
	}
}

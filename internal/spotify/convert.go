package spotify

import (
	"github.com/zmb3/spotify/v2"

	"github.com/moodtunes/go-mood-tunes/internal/music"
)

// externalURLKey selects the web player link out of a track's external URLs.
const externalURLKey = "spotify"

// convertFullTrack maps a Spotify track to the domain Track, defaulting
// missing fields so callers never see untyped or partial data.
func convertFullTrack(ft spotify.FullTrack) music.Track {
	t := convertSimpleTrack(ft.SimpleTrack)
	t.AlbumName = ft.Album.Name
	t.ImageURL = firstImageURL(ft.Album.Images)
	return t
}

// convertSimpleTrack maps the track shape returned by the recommendations
// endpoint, which nests the album on the simple track.
func convertSimpleTrack(st spotify.SimpleTrack) music.Track {
	artists := make([]music.Artist, len(st.Artists))
	for i, a := range st.Artists {
		artists[i] = music.Artist{ID: a.ID.String(), Name: a.Name}
	}

	return music.Track{
		ID:          st.ID.String(),
		Name:        st.Name,
		Artists:     artists,
		AlbumName:   st.Album.Name,
		ImageURL:    firstImageURL(st.Album.Images),
		PreviewURL:  st.PreviewURL,
		ExternalURL: st.ExternalURLs[externalURLKey],
	}
}

// convertFeatures maps provider audio features to the domain type.
func convertFeatures(f *spotify.AudioFeatures) music.AudioFeatures {
	return music.AudioFeatures{
		Valence:      float64(f.Valence),
		Energy:       float64(f.Energy),
		Danceability: float64(f.Danceability),
		Acousticness: float64(f.Acousticness),
	}
}

func firstImageURL(images []spotify.Image) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

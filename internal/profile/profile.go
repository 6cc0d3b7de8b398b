// Package profile summarizes a listener's top tracks into a named vibe by
// clustering their audio features and describing the dominant cluster.
package profile

import (
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/moodtunes/go-mood-tunes/internal/music"
)

// numClusters partitions a listening history into this many vibes; the
// largest one names the profile.
const numClusters = 3

// Vibe describes the dominant audio-feature cluster of a track set.
type Vibe struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Energy      float64 `json:"energy"`
	Valence     float64 `json:"valence"`
	TrackCount  int     `json:"trackCount"`
}

// featureObservation adapts AudioFeatures to the clustering interface.
type featureObservation struct {
	coords clusters.Coordinates
}

func (o featureObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o featureObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// Coordinate layout: energy, valence, danceability, acousticness.
func observe(f music.AudioFeatures) featureObservation {
	return featureObservation{coords: clusters.Coordinates{
		f.Energy, f.Valence, f.Danceability, f.Acousticness,
	}}
}

// Build clusters the given audio features and names the dominant cluster.
// Returns nil when there are too few tracks to cluster or clustering fails;
// a profile is decoration, never a reason to fail a request.
func Build(feats []music.AudioFeatures) *Vibe {
	if len(feats) < numClusters {
		return nil
	}

	var obs clusters.Observations
	for _, f := range feats {
		obs = append(obs, observe(f))
	}

	km := kmeans.New()
	result, err := km.Partition(obs, numClusters)
	if err != nil {
		return nil
	}

	// Pick the cluster holding the most tracks.
	dominant := result[0]
	for _, c := range result[1:] {
		if len(c.Observations) > len(dominant.Observations) {
			dominant = c
		}
	}

	energy := dominant.Center[0]
	valence := dominant.Center[1]
	acousticness := dominant.Center[3]

	return &Vibe{
		Name:        vibeName(energy, valence, acousticness),
		Description: vibeDescription(energy, valence),
		Energy:      energy,
		Valence:     valence,
		TrackCount:  len(dominant.Observations),
	}
}

package mood

import "github.com/moodtunes/go-mood-tunes/internal/music"

// Predicate thresholds, tunable independently of the selection logic.
// A track "matches" a mood when its audio features pass the mood's predicate;
// predicates only read valence, energy and danceability.
const (
	happyMinValence = 0.6
	happyMinEnergy  = 0.5

	sadMaxValence = 0.4
	sadMaxEnergy  = 0.5

	angryMinEnergy = 0.7

	neutralMinEnergy = 0.2
	neutralMaxEnergy = 0.6

	surprisedMinEnergy       = 0.6
	surprisedMinDanceability = 0.55
)

// Policy holds everything needed to turn a mood into a music query.
type Policy struct {
	// Genres is the pool of provider genre tags for cold-start and
	// unauthenticated selection. Only real Spotify genre seeds.
	Genres []string

	// Target biases the provider's recommendation ranking.
	Target music.TargetFeatures

	// Matches reports whether a track's audio features fit the mood.
	Matches func(music.AudioFeatures) bool
}

var policies = map[Mood]Policy{
	Happy: {
		Genres: []string{
			"pop", "dance", "funk", "disco", "house", "reggaeton", "k-pop",
			"hip-hop", "r-n-b", "soul", "indie-pop", "synth-pop", "power-pop",
		},
		Target: music.TargetFeatures{Valence: 0.8, Energy: 0.7, Danceability: 0.7},
		Matches: func(f music.AudioFeatures) bool {
			return f.Valence >= happyMinValence && f.Energy >= happyMinEnergy
		},
	},
	Sad: {
		Genres: []string{
			"acoustic", "piano", "indie", "sleep", "ambient", "sad",
			"folk", "singer-songwriter", "blues", "classical", "emo",
		},
		Target: music.TargetFeatures{Valence: 0.2, Energy: 0.3},
		Matches: func(f music.AudioFeatures) bool {
			return f.Valence <= sadMaxValence && f.Energy <= sadMaxEnergy
		},
	},
	Angry: {
		Genres: []string{
			"metal", "rock", "punk", "grunge", "industrial", "alt-rock",
			"hardcore", "metalcore", "heavy-metal", "garage", "psych-rock",
		},
		Target: music.TargetFeatures{Valence: 0.3, Energy: 0.9},
		Matches: func(f music.AudioFeatures) bool {
			return f.Energy >= angryMinEnergy
		},
	},
	Neutral: {
		Genres: []string{
			"chill", "jazz", "study", "bossa-nova",
			"classical", "minimal-techno", "trip-hop", "groove",
		},
		Target: music.TargetFeatures{Valence: 0.5, Energy: 0.4},
		Matches: func(f music.AudioFeatures) bool {
			return f.Energy >= neutralMinEnergy && f.Energy <= neutralMaxEnergy
		},
	},
	Surprised: {
		Genres: []string{
			"electronic", "techno", "dubstep", "psytrance",
			"drum-and-bass", "idm", "breakbeat", "club",
		},
		Target: music.TargetFeatures{Valence: 0.6, Energy: 0.8, Danceability: 0.7},
		Matches: func(f music.AudioFeatures) bool {
			return f.Energy >= surprisedMinEnergy && f.Danceability >= surprisedMinDanceability
		},
	},
}

// PolicyFor returns the policy for m, falling back to the Default mood's
// policy for unrecognized values. It never fails.
func PolicyFor(m Mood) Policy {
	if p, ok := policies[m]; ok {
		return p
	}
	return policies[Default]
}

// Package mood maps client-inferred facial-expression labels to music
// selection policy: genre pools, recommendation targets, and audio-feature
// predicates.
package mood

// Mood is one of the fixed expression labels produced by the client.
type Mood string

// The recognized moods.
const (
	Happy     Mood = "happy"
	Sad       Mood = "sad"
	Angry     Mood = "angry"
	Neutral   Mood = "neutral"
	Surprised Mood = "surprised"
)

// Default is the policy used for unrecognized mood labels.
const Default = Neutral

// All lists every recognized mood.
var All = []Mood{Happy, Sad, Angry, Neutral, Surprised}

// Parse maps a raw label to a Mood. Unrecognized labels (including the
// empty string) resolve to Default rather than failing.
func Parse(s string) Mood {
	m := Mood(s)
	if _, ok := policies[m]; ok {
		return m
	}
	return Default
}

package profile

// Naming thresholds on the cluster centroid.
const (
	highEnergyThreshold  = 0.6
	highValenceThreshold = 0.5
	acousticThreshold    = 0.6
)

// vibeName names a centroid using a 2x2 energy/valence quadrant scheme with
// an acousticness modifier.
//
// Quadrants:
//   - High Energy + High Valence = "Upbeat Party"
//   - High Energy + Low Valence  = "Intense & Dark"
//   - Low Energy  + High Valence = "Chill & Happy"
//   - Low Energy  + Low Valence  = "Reflective & Melancholy"
func vibeName(energy, valence, acousticness float64) string {
	highEnergy := energy > highEnergyThreshold
	highValence := valence > highValenceThreshold

	var base string
	switch {
	case highEnergy && highValence:
		base = "Upbeat Party"
	case highEnergy && !highValence:
		base = "Intense & Dark"
	case !highEnergy && highValence:
		base = "Chill & Happy"
	default:
		base = "Reflective & Melancholy"
	}

	if acousticness > acousticThreshold {
		return base + " (Acoustic)"
	}
	return base
}

// vibeDescription returns a one-line description for the quadrant.
func vibeDescription(energy, valence float64) string {
	switch {
	case energy > highEnergyThreshold && valence > highValenceThreshold:
		return "High-energy, positive vibes"
	case energy > highEnergyThreshold:
		return "Intense, driving energy with darker tones"
	case valence > highValenceThreshold:
		return "Relaxed and uplifting"
	default:
		return "Contemplative and introspective"
	}
}

package recommend

import "github.com/moodtunes/go-mood-tunes/internal/music"

// shapeTracks merges directly-picked tracks with provider recommendations.
// Promoted tracks keep their order at the front; recommendations fill the
// remainder. A recommendation echoing a promoted track's ID is dropped.
// The result never exceeds target.
func shapeTracks(promoted, recs []music.Track, target int) []music.Track {
	out := make([]music.Track, 0, target)
	seen := make(map[string]struct{}, target)

	for _, t := range promoted {
		if len(out) == target {
			return out
		}
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}

	for _, t := range recs {
		if len(out) == target {
			break
		}
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}

	return out
}

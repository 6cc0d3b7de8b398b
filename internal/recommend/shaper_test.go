package recommend

import (
	"testing"

	"github.com/moodtunes/go-mood-tunes/internal/music"
)

func tracksByID(ids ...string) []music.Track {
	tracks := make([]music.Track, len(ids))
	for i, id := range ids {
		tracks[i] = music.Track{ID: id, Name: "Track " + id}
	}
	return tracks
}

func TestShapeTracks(t *testing.T) {
	tests := []struct {
		name     string
		promoted []music.Track
		recs     []music.Track
		target   int
		wantIDs  []string
	}{
		{
			name:     "promoted lead the list",
			promoted: tracksByID("p1", "p2"),
			recs:     tracksByID("r1", "r2"),
			target:   10,
			wantIDs:  []string{"p1", "p2", "r1", "r2"},
		},
		{
			name:     "recommendation echo of a promoted track is dropped",
			promoted: tracksByID("p1", "p2"),
			recs:     tracksByID("r1", "p1", "r2"),
			target:   10,
			wantIDs:  []string{"p1", "p2", "r1", "r2"},
		},
		{
			name:     "capped at target",
			promoted: tracksByID("p1", "p2", "p3"),
			recs:     tracksByID("r1", "r2", "r3", "r4"),
			target:   5,
			wantIDs:  []string{"p1", "p2", "p3", "r1", "r2"},
		},
		{
			name:     "fills to exactly target from recommendations",
			promoted: tracksByID("p1", "p2", "p3"),
			recs:     tracksByID("r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8", "r9", "r10"),
			target:   10,
			wantIDs:  []string{"p1", "p2", "p3", "r1", "r2", "r3", "r4", "r5", "r6", "r7"},
		},
		{
			name:     "empty inputs",
			promoted: nil,
			recs:     nil,
			target:   10,
			wantIDs:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shapeTracks(tt.promoted, tt.recs, tt.target)

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d tracks, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Errorf("track[%d].ID = %q, want %q", i, got[i].ID, want)
				}
			}

			seen := make(map[string]bool)
			for _, tr := range got {
				if seen[tr.ID] {
					t.Errorf("duplicate track ID %q in output", tr.ID)
				}
				seen[tr.ID] = true
			}
		})
	}
}

package web

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/moodtunes/go-mood-tunes/internal/mood"
	"github.com/moodtunes/go-mood-tunes/internal/music"
)

// vibeTTL bounds how long a shared vibe card stays retrievable. Cards live
// in memory only; a restart clears them.
const vibeTTL = 24 * time.Hour

// maxVibeTracks caps the track list stored per card.
const maxVibeTracks = 10

// VibeCard is a shareable snapshot of a mood session: the detected mood,
// who captured it, and the tracks it produced.
type VibeCard struct {
	ID        string        `json:"id"`
	Mood      mood.Mood     `json:"mood"`
	UserName  string        `json:"userName,omitempty"`
	Tracks    []music.Track `json:"tracks"`
	CreatedAt time.Time     `json:"createdAt"`
}

// VibeStore holds shared vibe cards in memory.
type VibeStore struct {
	mu    sync.RWMutex
	cards map[string]*VibeCard
	now   func() time.Time
}

// NewVibeStore creates an empty in-memory vibe store.
func NewVibeStore() *VibeStore {
	return &VibeStore{
		cards: make(map[string]*VibeCard),
		now:   time.Now,
	}
}

// Create stores a new card and returns it with its generated ID.
func (s *VibeStore) Create(m mood.Mood, userName string, tracks []music.Track) *VibeCard {
	if tracks == nil {
		tracks = []music.Track{}
	}
	if len(tracks) > maxVibeTracks {
		tracks = tracks[:maxVibeTracks]
	}

	card := &VibeCard{
		ID:        uuid.NewString(),
		Mood:      m,
		UserName:  userName,
		Tracks:    tracks,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.pruneLocked()
	s.cards[card.ID] = card
	s.mu.Unlock()

	return card
}

// pruneLocked drops every expired card. Caller holds the write lock. Pruning
// on Create keeps never-fetched cards from piling up.
func (s *VibeStore) pruneLocked() {
	cutoff := s.now().Add(-vibeTTL)
	for id, card := range s.cards {
		if card.CreatedAt.Before(cutoff) {
			delete(s.cards, id)
		}
	}
}

// Get retrieves a card by ID. Expired cards are dropped and read as absent.
func (s *VibeStore) Get(id string) *VibeCard {
	s.mu.RLock()
	card, ok := s.cards[id]
	s.mu.RUnlock()

	if !ok {
		return nil
	}

	if s.now().Sub(card.CreatedAt) > vibeTTL {
		s.mu.Lock()
		delete(s.cards, id)
		s.mu.Unlock()
		return nil
	}

	return card
}

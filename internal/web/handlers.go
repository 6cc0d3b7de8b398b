package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"

	"github.com/moodtunes/go-mood-tunes/internal/mood"
	"github.com/moodtunes/go-mood-tunes/internal/music"
	"github.com/moodtunes/go-mood-tunes/internal/profile"
	"github.com/moodtunes/go-mood-tunes/internal/recommend"
)

// vibePage is where the auth flow lands back in the frontend, with either a
// login=success marker or an error code in the query string.
const vibePage = "/vibe"

// MusicClient is the slice of the Spotify wrapper the handlers need.
type MusicClient interface {
	recommend.MusicAPI
	CurrentUserName(ctx context.Context) (string, error)
}

// UserClientFunc builds a provider client for a user's bearer token.
type UserClientFunc func(ctx context.Context, token *oauth2.Token) MusicClient

// ExchangeFunc swaps an authorization code for a token.
type ExchangeFunc func(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	auth       *spotifyauth.Authenticator
	svc        *recommend.Service
	appAPI     recommend.MusicAPI // nil when app credentials are unavailable
	userClient UserClientFunc
	exchange   ExchangeFunc
	vibes      *VibeStore
	log        zerolog.Logger
	secure     bool
}

// NewHandlers creates a Handlers instance.
func NewHandlers(auth *spotifyauth.Authenticator, svc *recommend.Service, appAPI recommend.MusicAPI, userClient UserClientFunc, vibes *VibeStore, logger zerolog.Logger, secure bool) *Handlers {
	return &Handlers{
		auth:       auth,
		svc:        svc,
		appAPI:     appAPI,
		userClient: userClient,
		exchange:   auth.Exchange,
		vibes:      vibes,
		log:        logger,
		secure:     secure,
	}
}

// Health reports liveness (GET /healthz).
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Login starts the authorization-code flow (GET /api/auth/login): generate a
// CSRF state nonce, stash it in a short-lived cookie, and send the browser
// to the provider's consent page.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	state, err := generateOAuthState()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate state")
		return
	}

	h.setCookie(w, stateCookie, state, stateCookieTTL, true)

	url := h.auth.AuthURL(state, oauth2.SetAuthURLParam("show_dialog", "true"))
	http.Redirect(w, r, url, http.StatusFound)
}

// Callback finishes the authorization-code flow (GET /api/auth/callback).
// Every failure redirects back to the frontend with an error code; success
// sets the token cookies and a login=success marker.
func (h *Handlers) Callback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("error") != "" {
		h.redirectError(w, r, "access_denied")
		return
	}

	state := query.Get("state")
	if state == "" || state != cookieValue(r, stateCookie) {
		h.redirectError(w, r, "state_mismatch")
		return
	}

	// The state nonce is single-use: consume it before anything else.
	h.clearCookie(w, stateCookie, true)

	code := query.Get("code")
	if code == "" {
		h.redirectError(w, r, "no_code")
		return
	}

	token, err := h.exchange(r.Context(), code)
	if err != nil {
		h.log.Error().Err(err).Msg("token exchange failed")
		h.redirectError(w, r, "token_exchange_failed")
		return
	}

	userName, err := h.userClient(r.Context(), token).CurrentUserName(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("fetching user profile failed")
		h.redirectError(w, r, "callback_error")
		return
	}

	accessTTL := time.Until(token.Expiry)
	if accessTTL <= 0 {
		accessTTL = defaultAccessTokenTTL
	}

	h.setCookie(w, accessTokenCookie, token.AccessToken, accessTTL, true)
	h.setCookie(w, refreshTokenCookie, token.RefreshToken, refreshCookieTTL, true)
	h.setCookie(w, userNameCookie, userName, refreshCookieTTL, false)

	http.Redirect(w, r, vibePage+"?login=success", http.StatusFound)
}

// Logout clears every session cookie (POST /api/auth/logout).
func (h *Handlers) Logout(w http.ResponseWriter, _ *http.Request) {
	h.clearCookie(w, accessTokenCookie, true)
	h.clearCookie(w, refreshTokenCookie, true)
	h.clearCookie(w, userNameCookie, false)
	h.clearCookie(w, stateCookie, true)

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// MoodTracks serves anonymous mood-based tracks (GET /api/spotify?mood=).
func (h *Handlers) MoodTracks(w http.ResponseWriter, r *http.Request) {
	if h.appAPI == nil {
		writeError(w, http.StatusInternalServerError, "Missing Spotify credentials")
		return
	}

	m := mood.Parse(r.URL.Query().Get("mood"))

	tracks, err := h.svc.MoodTracks(r.Context(), h.appAPI, m)
	if err != nil {
		h.log.Error().Err(err).Str("mood", string(m)).Msg("mood track search failed")
		writeError(w, http.StatusInternalServerError, "Failed to fetch tracks")
		return
	}

	if tracks == nil {
		tracks = []music.Track{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"tracks": tracks})
}

// personalizedResponse is the payload for GET /api/spotify/personalized.
type personalizedResponse struct {
	Tracks       []music.Track `json:"tracks"`
	SeedArtists  []string      `json:"seedArtists"`
	Personalized bool          `json:"personalized"`
	Profile      *profile.Vibe `json:"profile,omitempty"`
	Debug        *music.Seeds  `json:"debug,omitempty"`
}

// Personalized serves history-aware recommendations
// (GET /api/spotify/personalized?mood=). Requires the access-token cookie.
func (h *Handlers) Personalized(w http.ResponseWriter, r *http.Request) {
	accessToken := cookieValue(r, accessTokenCookie)
	if accessToken == "" {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	m := mood.Parse(r.URL.Query().Get("mood"))
	api := h.userClient(r.Context(), &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})

	result, err := h.svc.PersonalizedTracks(r.Context(), api, m)
	if err != nil {
		if errors.Is(err, music.ErrTokenExpired) {
			writeError(w, http.StatusUnauthorized, "Token expired")
			return
		}
		h.log.Error().Err(err).Str("mood", string(m)).Msg("personalized recommendations failed")
		writeError(w, http.StatusInternalServerError, "Failed to get recommendations")
		return
	}

	resp := personalizedResponse{
		Tracks:       result.Tracks,
		SeedArtists:  result.SeedNames,
		Personalized: true,
		Profile:      profile.Build(result.Features),
	}
	if resp.Tracks == nil {
		resp.Tracks = []music.Track{}
	}
	if resp.SeedArtists == nil {
		resp.SeedArtists = []string{}
	}
	if result.Seeds.Count() > 0 {
		resp.Debug = &result.Seeds
	}

	writeJSON(w, http.StatusOK, resp)
}

// shareVibeRequest is the body of POST /api/vibe.
type shareVibeRequest struct {
	Mood     string        `json:"mood"`
	UserName string        `json:"userName"`
	Tracks   []music.Track `json:"tracks"`
}

// ShareVibe stores a vibe card for sharing (POST /api/vibe).
func (h *Handlers) ShareVibe(w http.ResponseWriter, r *http.Request) {
	var req shareVibeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	card := h.vibes.Create(mood.Parse(req.Mood), req.UserName, req.Tracks)
	writeJSON(w, http.StatusCreated, card)
}

// GetVibe retrieves a shared vibe card (GET /api/vibe/{id}).
func (h *Handlers) GetVibe(w http.ResponseWriter, r *http.Request) {
	card := h.vibes.Get(chi.URLParam(r, "id"))
	if card == nil {
		writeError(w, http.StatusNotFound, "Vibe not found")
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// redirectError sends the browser back to the frontend with an error code.
func (h *Handlers) redirectError(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, vibePage+"?error="+code, http.StatusFound)
}

// generateOAuthState creates a random state nonce for CSRF protection.
func generateOAuthState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

package mockapi

import (
	"encoding/json"
	"net/http"

	"tvshows-client/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// CatalogHandler handles show, episode and comment requests
type CatalogHandler struct {
	store  *Store
	logger zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(store *Store, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		store:  store,
		logger: logger,
	}
}

// ListShows handles GET /api/shows
func (h *CatalogHandler) ListShows(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, h.store.Shows())
}

// GetShow handles GET /api/shows/{show_id}
func (h *CatalogHandler) GetShow(w http.ResponseWriter, r *http.Request) {
	show, err := h.store.ShowByID(chi.URLParam(r, "show_id"))
	if err != nil {
		respondError(w, err.Error(), statusFor(err))
		return
	}
	respondData(w, http.StatusOK, show)
}

// ListEpisodes handles GET /api/shows/{show_id}/episodes
func (h *CatalogHandler) ListEpisodes(w http.ResponseWriter, r *http.Request) {
	episodes, err := h.store.EpisodesByShow(chi.URLParam(r, "show_id"))
	if err != nil {
		respondError(w, err.Error(), statusFor(err))
		return
	}
	respondData(w, http.StatusOK, episodes)
}

// GetEpisode handles GET /api/episodes/{episode_id}
func (h *CatalogHandler) GetEpisode(w http.ResponseWriter, r *http.Request) {
	episode, err := h.store.EpisodeByID(chi.URLParam(r, "episode_id"))
	if err != nil {
		respondError(w, err.Error(), statusFor(err))
		return
	}
	respondData(w, http.StatusOK, episode)
}

// CreateEpisode handles POST /api/episodes
func (h *CatalogHandler) CreateEpisode(w http.ResponseWriter, r *http.Request) {
	user, _ := GetUser(r.Context())

	var req models.EpisodeInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	episode, err := h.store.CreateEpisode(req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("user_id", user.ID).
			Str("show_id", req.ShowID).
			Msg("Failed to create episode")
		respondError(w, err.Error(), statusFor(err))
		return
	}

	h.logger.Info().
		Str("user_id", user.ID).
		Str("show_id", episode.ShowID).
		Str("episode_id", episode.ID).
		Msg("Episode created")

	respondData(w, http.StatusCreated, episode)
}

// ListComments handles GET /api/episodes/{episode_id}/comments
func (h *CatalogHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.store.CommentsByEpisode(chi.URLParam(r, "episode_id"))
	if err != nil {
		respondError(w, err.Error(), statusFor(err))
		return
	}
	respondData(w, http.StatusOK, comments)
}

// CreateComment handles POST /api/comments
func (h *CatalogHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user, _ := GetUser(r.Context())

	var req models.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	comment, err := h.store.CreateComment(user, req)
	if err != nil {
		respondError(w, err.Error(), statusFor(err))
		return
	}

	h.logger.Info().
		Str("user_id", user.ID).
		Str("episode_id", comment.EpisodeID).
		Msg("Comment created")

	respondData(w, http.StatusCreated, comment)
}

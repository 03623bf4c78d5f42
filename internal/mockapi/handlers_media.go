package mockapi

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const maxUploadSize = 10 << 20

// MediaHandler handles image uploads and downloads
type MediaHandler struct {
	store  *Store
	media  MediaStore
	logger zerolog.Logger
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(store *Store, media MediaStore, logger zerolog.Logger) *MediaHandler {
	return &MediaHandler{
		store:  store,
		media:  media,
		logger: logger,
	}
}

// Upload handles POST /api/media
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := GetUser(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, hdr, err := r.FormFile("file")
	if err != nil {
		respondError(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, "Failed to read file", http.StatusBadRequest)
		return
	}

	contentType := hdr.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	// record only after the bytes are stored
	id := h.store.NewMediaID()
	if err := h.media.Put(ctx, id, contentType, data); err != nil {
		h.logger.Error().
			Err(err).
			Str("user_id", user.ID).
			Str("media_id", id).
			Msg("Failed to store media")
		respondError(w, "Failed to store media", http.StatusInternalServerError)
		return
	}
	m := h.store.CreateMedia(id, contentType)

	h.logger.Info().
		Str("user_id", user.ID).
		Str("media_id", m.ID).
		Str("content_type", contentType).
		Int("size", len(data)).
		Msg("Media uploaded")

	respondData(w, http.StatusCreated, m)
}

// Download handles GET /api/media/{media_id}
func (h *MediaHandler) Download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	m, err := h.store.MediaByID(chi.URLParam(r, "media_id"))
	if err != nil {
		respondError(w, err.Error(), statusFor(err))
		return
	}

	data, err := h.media.Get(ctx, m.ID)
	if err != nil {
		h.logger.Error().Err(err).Str("media_id", m.ID).Msg("Failed to load media")
		respondError(w, "Failed to load media", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", m.Type)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

package services

import (
	"context"
	"fmt"
	"strings"

	"tvshows-client/internal/models"
)

// EpisodeService loads and creates episodes
type EpisodeService struct {
	api API
}

// NewEpisodeService creates a new episode service
func NewEpisodeService(api API) *EpisodeService {
	return &EpisodeService{api: api}
}

// EpisodeDraft is what the user fills in before adding an episode
type EpisodeDraft struct {
	ShowID        string
	Title         string
	Description   string
	EpisodeNumber string
	Season        string
	MediaID       string
}

// Validate checks that every field of the draft is filled in
func (d EpisodeDraft) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"show id", d.ShowID},
		{"title", d.Title},
		{"description", d.Description},
		{"episode number", d.EpisodeNumber},
		{"season", d.Season},
		{"media id", d.MediaID},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s: %w", f.name, ErrMissingField)
		}
	}
	return nil
}

// Details loads the episode screen
func (s *EpisodeService) Details(ctx context.Context, session *Session, episodeID string) (models.EpisodeDetails, error) {
	token, err := session.token()
	if err != nil {
		return models.EpisodeDetails{}, fail(MsgLoadEpisodeFailed, err)
	}

	episode, err := s.api.EpisodeDetails(ctx, token, episodeID)
	if err != nil {
		return models.EpisodeDetails{}, fail(MsgLoadEpisodeFailed, err)
	}
	return episode, nil
}

// UploadImage uploads a PNG to be used as an episode image
func (s *EpisodeService) UploadImage(ctx context.Context, session *Session, png []byte) (models.Media, error) {
	token, err := session.token()
	if err != nil {
		return models.Media{}, fail(MsgUploadImageFailed, err)
	}
	if len(png) == 0 {
		return models.Media{}, fail(MsgUploadImageFailed, fmt.Errorf("image: %w", ErrMissingField))
	}

	media, err := s.api.UploadMedia(ctx, token, png)
	if err != nil {
		return models.Media{}, fail(MsgUploadImageFailed, err)
	}
	return media, nil
}

// Add creates an episode from a complete draft
func (s *EpisodeService) Add(ctx context.Context, session *Session, draft EpisodeDraft) (models.NewEpisode, error) {
	token, err := session.token()
	if err != nil {
		return models.NewEpisode{}, fail(MsgAddEpisodeFailed, err)
	}
	if err := draft.Validate(); err != nil {
		return models.NewEpisode{}, fail(MsgAddEpisodeFailed, err)
	}

	episode, err := s.api.CreateEpisode(ctx, token, models.EpisodeInput{
		ShowID:        draft.ShowID,
		MediaID:       draft.MediaID,
		Title:         draft.Title,
		Description:   draft.Description,
		EpisodeNumber: draft.EpisodeNumber,
		Season:        draft.Season,
	})
	if err != nil {
		return models.NewEpisode{}, fail(MsgAddEpisodeFailed, err)
	}
	return episode, nil
}

// AddWithImage uploads png and then creates the episode referencing it
func (s *EpisodeService) AddWithImage(ctx context.Context, session *Session, draft EpisodeDraft, png []byte) (models.NewEpisode, error) {
	media, err := s.UploadImage(ctx, session, png)
	if err != nil {
		return models.NewEpisode{}, err
	}
	draft.MediaID = media.ID
	return s.Add(ctx, session, draft)
}

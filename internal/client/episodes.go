package client

import (
	"context"
	"net/http"
	"net/url"

	"tvshows-client/internal/models"
)

// EpisodeDetails returns one episode. GET /api/episodes/{id}
func (c *Client) EpisodeDetails(ctx context.Context, token, episodeID string) (models.EpisodeDetails, error) {
	return send[models.EpisodeDetails](ctx, c, request{
		op:     "episode details",
		method: http.MethodGet,
		path:   "/api/episodes/" + url.PathEscape(episodeID),
		token:  token,
	})
}

// CreateEpisode adds an episode to a show. POST /api/episodes
func (c *Client) CreateEpisode(ctx context.Context, token string, input models.EpisodeInput) (models.NewEpisode, error) {
	r, err := jsonRequest("create episode", http.MethodPost, "/api/episodes", token, input)
	if err != nil {
		return models.NewEpisode{}, err
	}
	return send[models.NewEpisode](ctx, c, r)
}

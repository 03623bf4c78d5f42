package client

import (
	"context"
	"net/http"
	"net/url"

	"tvshows-client/internal/models"
)

// ListShows returns the catalog. GET /api/shows
func (c *Client) ListShows(ctx context.Context, token string) ([]models.Show, error) {
	return send[[]models.Show](ctx, c, request{
		op:     "list shows",
		method: http.MethodGet,
		path:   "/api/shows",
		token:  token,
	})
}

// ShowDetails returns one show. GET /api/shows/{id}
func (c *Client) ShowDetails(ctx context.Context, token, showID string) (models.ShowDetails, error) {
	return send[models.ShowDetails](ctx, c, request{
		op:     "show details",
		method: http.MethodGet,
		path:   "/api/shows/" + url.PathEscape(showID),
		token:  token,
	})
}

// ListEpisodes returns the episodes of a show. GET /api/shows/{id}/episodes
func (c *Client) ListEpisodes(ctx context.Context, token, showID string) ([]models.Episode, error) {
	return send[[]models.Episode](ctx, c, request{
		op:     "list episodes",
		method: http.MethodGet,
		path:   "/api/shows/" + url.PathEscape(showID) + "/episodes",
		token:  token,
	})
}

package client

import (
	"context"
	"net/http"
	"net/url"

	"tvshows-client/internal/models"
)

// ListComments returns the comments of an episode. GET /api/episodes/{id}/comments
func (c *Client) ListComments(ctx context.Context, token, episodeID string) ([]models.Comment, error) {
	return send[[]models.Comment](ctx, c, request{
		op:     "list comments",
		method: http.MethodGet,
		path:   "/api/episodes/" + url.PathEscape(episodeID) + "/comments",
		token:  token,
	})
}

// CreateComment posts a comment on an episode. POST /api/comments
func (c *Client) CreateComment(ctx context.Context, token, episodeID, text string) (models.NewComment, error) {
	r, err := jsonRequest("create comment", http.MethodPost, "/api/comments", token,
		models.CommentInput{Text: text, EpisodeID: episodeID})
	if err != nil {
		return models.NewComment{}, err
	}
	return send[models.NewComment](ctx, c, r)
}

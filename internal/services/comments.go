package services

import (
	"context"
	"fmt"
	"strings"

	"tvshows-client/internal/models"
)

// CommentService loads and posts episode comments
type CommentService struct {
	api API
}

// NewCommentService creates a new comment service
func NewCommentService(api API) *CommentService {
	return &CommentService{api: api}
}

// List loads the comments of an episode
func (s *CommentService) List(ctx context.Context, session *Session, episodeID string) ([]models.Comment, error) {
	token, err := session.token()
	if err != nil {
		return nil, fail(MsgLoadCommentsFailed, err)
	}

	comments, err := s.api.ListComments(ctx, token, episodeID)
	if err != nil {
		return nil, fail(MsgLoadCommentsFailed, err)
	}
	return comments, nil
}

// Post adds a comment and returns the reloaded comment list
func (s *CommentService) Post(ctx context.Context, session *Session, episodeID, text string) ([]models.Comment, error) {
	token, err := session.token()
	if err != nil {
		return nil, fail(MsgAddCommentFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fail(MsgAddCommentFailed, fmt.Errorf("text: %w", ErrMissingField))
	}

	if _, err := s.api.CreateComment(ctx, token, episodeID, text); err != nil {
		return nil, fail(MsgAddCommentFailed, err)
	}

	// the comment is stored; a failed reload reports as a load failure
	return s.List(ctx, session, episodeID)
}

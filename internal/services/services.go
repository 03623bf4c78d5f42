package services

import (
	"context"
	"errors"
	"fmt"

	"tvshows-client/internal/models"
)

// User-facing messages, one per operation
const (
	MsgRegisterFailed     = "Registering new user failed"
	MsgLoginFailed        = "Logging in failed"
	MsgLoadShowsFailed    = "Loading TVShows failed"
	MsgLoadShowFailed     = "Loading Show Details failed"
	MsgLoadEpisodesFailed = "Loading Episodes failed"
	MsgLoadEpisodeFailed  = "Loading Episode Details failed"
	MsgUploadImageFailed  = "Cannot Upload Image"
	MsgAddEpisodeFailed   = "Adding Episode failed"
	MsgLoadCommentsFailed = "Loading Comments failed"
	MsgAddCommentFailed   = "Adding Comment failed"
	msgUnknownFailure     = "Something went wrong"
)

// ErrMissingField is returned when a required input is empty
var ErrMissingField = errors.New("required field is empty")

// ErrNotLoggedIn is returned when a flow needs a session and has none
var ErrNotLoggedIn = errors.New("not logged in")

// ErrNoCredentialStore is returned by Restore when remembering is not configured
var ErrNoCredentialStore = errors.New("no credential store configured")

// API is the subset of the REST client the flows depend on
type API interface {
	Register(ctx context.Context, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.LoginUser, error)
	ListShows(ctx context.Context, token string) ([]models.Show, error)
	ShowDetails(ctx context.Context, token, showID string) (models.ShowDetails, error)
	ListEpisodes(ctx context.Context, token, showID string) ([]models.Episode, error)
	EpisodeDetails(ctx context.Context, token, episodeID string) (models.EpisodeDetails, error)
	CreateEpisode(ctx context.Context, token string, input models.EpisodeInput) (models.NewEpisode, error)
	UploadMedia(ctx context.Context, token string, png []byte) (models.Media, error)
	ListComments(ctx context.Context, token, episodeID string) ([]models.Comment, error)
	CreateComment(ctx context.Context, token, episodeID, text string) (models.NewComment, error)
}

// Session is an authenticated user
type Session struct {
	Email string `json:"email,omitempty"`
	Token string `json:"token"`
}

func (s *Session) token() (string, error) {
	if s == nil || s.Token == "" {
		return "", ErrNotLoggedIn
	}
	return s.Token, nil
}

// OperationError is what every flow returns on failure. Message is the
// static text shown to the user; Err is the underlying cause.
type OperationError struct {
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }

func fail(message string, err error) error {
	return &OperationError{Message: message, Err: err}
}

// UserMessage returns the text to show for err
func UserMessage(err error) string {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Message
	}
	return msgUnknownFailure
}

// UserMessages returns one text per failed operation in err. A joined
// error, as returned by ShowPage, yields a message for each of its parts.
func UserMessages(err error) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var messages []string
		for _, e := range joined.Unwrap() {
			messages = append(messages, UserMessages(e)...)
		}
		if len(messages) > 0 {
			return messages
		}
	}
	return []string{UserMessage(err)}
}

package mockapi

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"tvshows-client/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a referenced record does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique field is already taken
	ErrConflict = errors.New("already exists")
	// ErrInvalid is returned when a request is missing required fields
	ErrInvalid = errors.New("invalid input")
)

const (
	accountType = "user"
	showType    = "show"
	episodeType = "episode"
)

type userRecord struct {
	user         models.User
	passwordHash []byte
}

// Store keeps the mock catalog in memory
type Store struct {
	mu       sync.RWMutex
	users    map[string]*userRecord // keyed by email
	shows    []models.ShowDetails
	episodes []models.EpisodeDetails
	comments []models.NewComment
	media    map[string]models.Media
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users: make(map[string]*userRecord),
		media: make(map[string]models.Media),
	}
}

func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// CreateUser registers an account
func (s *Store) CreateUser(email string, passwordHash []byte) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	if _, exists := s.users[key]; exists {
		return models.User{}, fmt.Errorf("user %s: %w", email, ErrConflict)
	}

	user := models.User{
		Email: email,
		Type:  accountType,
		ID:    newID(),
	}
	s.users[key] = &userRecord{user: user, passwordHash: passwordHash}
	return user, nil
}

// UserByEmail returns an account and its password hash
func (s *Store) UserByEmail(email string) (models.User, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[strings.ToLower(email)]
	if !ok {
		return models.User{}, nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
	}
	return rec.user, rec.passwordHash, nil
}

// UserExists checks whether an account with the given id is registered
func (s *Store) UserExists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.users {
		if rec.user.ID == id {
			return true
		}
	}
	return false
}

// AddShow inserts a show and returns it with an id assigned
func (s *Store) AddShow(show models.ShowDetails) models.ShowDetails {
	s.mu.Lock()
	defer s.mu.Unlock()

	if show.ID == "" {
		show.ID = newID()
	}
	show.Type = showType
	s.shows = append(s.shows, show)
	return show
}

// Shows lists the catalog in insertion order
func (s *Store) Shows() []models.Show {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shows := make([]models.Show, 0, len(s.shows))
	for _, d := range s.shows {
		shows = append(shows, models.Show{
			ID:         d.ID,
			Title:      d.Title,
			ImageURL:   d.ImageURL,
			LikesCount: d.LikesCount,
		})
	}
	return shows
}

// ShowByID returns a single show
func (s *Store) ShowByID(id string) (models.ShowDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showByIDLocked(id)
}

func (s *Store) showByIDLocked(id string) (models.ShowDetails, error) {
	for _, show := range s.shows {
		if show.ID == id {
			return show, nil
		}
	}
	return models.ShowDetails{}, fmt.Errorf("show %s: %w", id, ErrNotFound)
}

// EpisodesByShow lists the episodes of a show
func (s *Store) EpisodesByShow(showID string) ([]models.Episode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.showByIDLocked(showID); err != nil {
		return nil, err
	}

	episodes := make([]models.Episode, 0)
	for _, e := range s.episodes {
		if e.ShowID != showID {
			continue
		}
		episodes = append(episodes, models.Episode{
			ID:            e.ID,
			ShowID:        e.ShowID,
			Title:         e.Title,
			Description:   e.Description,
			ImageURL:      e.ImageURL,
			EpisodeNumber: e.EpisodeNumber,
			Season:        e.Season,
		})
	}
	return episodes, nil
}

// CreateEpisode adds an episode to an existing show
func (s *Store) CreateEpisode(in models.EpisodeInput) (models.NewEpisode, error) {
	if in.ShowID == "" || strings.TrimSpace(in.Title) == "" {
		return models.NewEpisode{}, fmt.Errorf("showId and title are required: %w", ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.showByIDLocked(in.ShowID); err != nil {
		return models.NewEpisode{}, err
	}

	var imageURL string
	if in.MediaID != "" {
		m, ok := s.media[in.MediaID]
		if !ok {
			return models.NewEpisode{}, fmt.Errorf("media %s: %w", in.MediaID, ErrInvalid)
		}
		imageURL = m.Path
	}

	episode := models.EpisodeDetails{
		ID:            newID(),
		ShowID:        in.ShowID,
		Type:          episodeType,
		Title:         in.Title,
		Description:   in.Description,
		ImageURL:      imageURL,
		EpisodeNumber: in.EpisodeNumber,
		Season:        in.Season,
	}
	s.episodes = append(s.episodes, episode)

	return models.NewEpisode{
		ShowID:        episode.ShowID,
		Title:         episode.Title,
		Description:   episode.Description,
		EpisodeNumber: episode.EpisodeNumber,
		Season:        episode.Season,
		Type:          episode.Type,
		ID:            episode.ID,
		ImageURL:      episode.ImageURL,
	}, nil
}

// EpisodeByID returns a single episode
func (s *Store) EpisodeByID(id string) (models.EpisodeDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.episodeByIDLocked(id)
}

func (s *Store) episodeByIDLocked(id string) (models.EpisodeDetails, error) {
	for _, e := range s.episodes {
		if e.ID == id {
			return e, nil
		}
	}
	return models.EpisodeDetails{}, fmt.Errorf("episode %s: %w", id, ErrNotFound)
}

// CommentsByEpisode lists the comments of an episode, oldest first
func (s *Store) CommentsByEpisode(episodeID string) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.episodeByIDLocked(episodeID); err != nil {
		return nil, err
	}

	comments := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.EpisodeID != episodeID {
			continue
		}
		comments = append(comments, models.Comment{
			ID:        c.ID,
			EpisodeID: c.EpisodeID,
			Text:      c.Text,
			UserEmail: c.UserEmail,
		})
	}
	return comments, nil
}

// CreateComment stores a comment written by the given user
func (s *Store) CreateComment(author models.User, in models.CommentInput) (models.NewComment, error) {
	if strings.TrimSpace(in.Text) == "" || in.EpisodeID == "" {
		return models.NewComment{}, fmt.Errorf("text and episodeId are required: %w", ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.episodeByIDLocked(in.EpisodeID); err != nil {
		return models.NewComment{}, err
	}

	comment := models.NewComment{
		ID:        newID(),
		EpisodeID: in.EpisodeID,
		Text:      in.Text,
		UserEmail: author.Email,
		UserID:    author.ID,
	}
	s.comments = append(s.comments, comment)
	return comment, nil
}

// NewMediaID reserves an id for an upload. Nothing is recorded until
// CreateMedia is called with it.
func (s *Store) NewMediaID() string {
	return newID()
}

// CreateMedia records an uploaded file whose bytes are already stored
func (s *Store) CreateMedia(id, contentType string) models.Media {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := models.Media{
		ID:   id,
		Path: "/api/media/" + id,
		Type: contentType,
	}
	s.media[id] = m
	return m
}

// MediaByID returns a media descriptor
func (s *Store) MediaByID(id string) (models.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.media[id]
	if !ok {
		return models.Media{}, fmt.Errorf("media %s: %w", id, ErrNotFound)
	}
	return m, nil
}

// Seed fills an empty store with a small catalog
func (s *Store) Seed() {
	catalog := []struct {
		show     models.ShowDetails
		episodes [][2]string
	}{
		{
			show: models.ShowDetails{
				Title:       "The Office",
				Description: "A mockumentary on a group of typical office workers.",
				LikesCount:  12,
				ImageURL:    "/images/the-office.jpg",
			},
			episodes: [][2]string{{"Pilot", "1"}, {"Diversity Day", "2"}},
		},
		{
			show: models.ShowDetails{
				Title:       "Breaking Bad",
				Description: "A chemistry teacher turns to manufacturing methamphetamine.",
				LikesCount:  30,
				ImageURL:    "/images/breaking-bad.jpg",
			},
			episodes: [][2]string{{"Pilot", "1"}, {"Cat's in the Bag...", "2"}},
		},
		{
			show: models.ShowDetails{
				Title:       "Dark",
				Description: "Four families search for a missing child in a German town.",
				LikesCount:  7,
				ImageURL:    "/images/dark.jpg",
			},
		},
	}

	for _, entry := range catalog {
		show := s.AddShow(entry.show)
		s.mu.Lock()
		for _, ep := range entry.episodes {
			s.episodes = append(s.episodes, models.EpisodeDetails{
				ID:            newID(),
				ShowID:        show.ID,
				Type:          episodeType,
				Title:         ep[0],
				EpisodeNumber: ep[1],
				Season:        "1",
			})
		}
		s.mu.Unlock()
	}
}

package models

// Envelope is the wrapper the API puts around every payload
type Envelope[T any] struct {
	Data T `json:"data"`
}

// User is returned when an account is registered
type User struct {
	Email string `json:"email"`
	Type  string `json:"type"`
	ID    string `json:"_id"`
}

// LoginUser carries the session token returned by login
type LoginUser struct {
	Token string `json:"token"`
}

// Credentials is the body of register and login requests
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Show is a catalog entry as listed on the home screen
type Show struct {
	ID         string `json:"_id"`
	Title      string `json:"title"`
	ImageURL   string `json:"imageUrl"`
	LikesCount int    `json:"likesCount"`
}

// ShowDetails is the full description of a show
type ShowDetails struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ID          string `json:"_id"`
	LikesCount  int    `json:"likesCount"`
	ImageURL    string `json:"imageUrl"`
}

// Episode is an entry of a show's episode list
type Episode struct {
	ID            string `json:"_id"`
	ShowID        string `json:"showId"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ImageURL      string `json:"imageUrl"`
	EpisodeNumber string `json:"episodeNumber"`
	Season        string `json:"season"`
}

// EpisodeDetails is a single episode fetched by id
type EpisodeDetails struct {
	ID            string `json:"_id"`
	ShowID        string `json:"showId"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ImageURL      string `json:"imageUrl"`
	EpisodeNumber string `json:"episodeNumber"`
	Season        string `json:"season"`
}

// NewEpisode is the server's answer to an episode creation
type NewEpisode struct {
	ShowID        string `json:"showId"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	EpisodeNumber string `json:"episodeNumber"`
	Season        string `json:"season"`
	Type          string `json:"type"`
	ID            string `json:"_id"`
	ImageURL      string `json:"imageUrl"`
}

// EpisodeInput is the body of an episode creation request
type EpisodeInput struct {
	ShowID        string `json:"showId"`
	MediaID       string `json:"mediaId"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	EpisodeNumber string `json:"episodeNumber"`
	Season        string `json:"season"`
}

// Media is the result of an image upload
type Media struct {
	ID   string `json:"_id"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// Comment is a comment listed under an episode
type Comment struct {
	ID        string `json:"_id"`
	EpisodeID string `json:"episodeId"`
	Text      string `json:"text"`
	UserEmail string `json:"userEmail"`
}

// NewComment is the server's answer to a comment creation
type NewComment struct {
	ID        string `json:"_id"`
	EpisodeID string `json:"episodeId"`
	Text      string `json:"text"`
	UserEmail string `json:"userEmail"`
	UserID    string `json:"userId"`
}

// CommentInput is the body of a comment creation request
type CommentInput struct {
	Text      string `json:"text"`
	EpisodeID string `json:"episodeId"`
}

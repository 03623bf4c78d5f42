package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tvshows-client/internal/models"

	"github.com/rs/zerolog"
)

// recorded is what a test server saw of the last request
type recorded struct {
	method string
	path   string
	header http.Header
	body   []byte
}

func newTestServer(t *testing.T, status int, body string) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.EscapedPath()
		rec.header = r.Header.Clone()
		rec.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, WithLogger(zerolog.Nop())), rec
}

func TestDecodeEnvelope(t *testing.T) {
	show, err := DecodeEnvelope[models.ShowDetails]([]byte(`{"data":{
		"type":"show","title":"Dark","description":"Time travel","_id":"abc",
		"likesCount":7,"imageUrl":"/images/dark.jpg"}}`))
	if err != nil {
		t.Fatalf("DecodeEnvelope returned error: %v", err)
	}
	want := models.ShowDetails{
		Type: "show", Title: "Dark", Description: "Time travel", ID: "abc",
		LikesCount: 7, ImageURL: "/images/dark.jpg",
	}
	if show != want {
		t.Errorf("got %+v, want %+v", show, want)
	}

	episodes, err := DecodeEnvelope[[]models.Episode]([]byte(`{"data":[
		{"_id":"e1","title":"Pilot","description":"","imageUrl":"","episodeNumber":"1","season":"1"},
		{"_id":"e2","title":"Second","description":"","imageUrl":"","episodeNumber":"2","season":"1"}]}`))
	if err != nil {
		t.Fatalf("DecodeEnvelope returned error: %v", err)
	}
	if len(episodes) != 2 || episodes[1].ID != "e2" || episodes[1].EpisodeNumber != "2" {
		t.Errorf("unexpected episodes: %+v", episodes)
	}

	user, err := DecodeEnvelope[models.User]([]byte(`{"data":{"email":"a@b.c","type":"user","_id":"u1"}}`))
	if err != nil {
		t.Fatalf("DecodeEnvelope returned error: %v", err)
	}
	if user.ID != "u1" || user.Email != "a@b.c" || user.Type != "user" {
		t.Errorf("unexpected user: %+v", user)
	}

	comment, err := DecodeEnvelope[models.NewComment]([]byte(`{"data":{
		"_id":"c1","episodeId":"e1","text":"nice","userEmail":"a@b.c","userId":"u1"}}`))
	if err != nil {
		t.Fatalf("DecodeEnvelope returned error: %v", err)
	}
	if comment.UserID != "u1" || comment.EpisodeID != "e1" || comment.Text != "nice" {
		t.Errorf("unexpected comment: %+v", comment)
	}
}

func TestDecodeEnvelopeMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"no data member", `{"token":"abc"}`},
		{"null data", `{"data":null}`},
		{"wrong shape", `{"data":["a","b"]}`},
		{"wrong field type", `{"data":{"token":42}}`},
		{"missing token", `{"data":{}}`},
		{"null token", `{"data":{"token":null}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestServer(t, http.StatusOK, tt.body)

			_, err := c.Login(context.Background(), "a@b.c", "secret")

			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected DecodeError, got %T: %v", err, err)
			}
			if decodeErr.Op != "login" {
				t.Errorf("expected op %q, got %q", "login", decodeErr.Op)
			}
		})
	}
}

func TestDecodeEnvelopeMissingKeys(t *testing.T) {
	tests := []struct {
		name   string
		decode func() error
	}{
		{"show without title", func() error {
			_, err := DecodeEnvelope[models.Show]([]byte(`{"data":{"_id":"x","imageUrl":"","likesCount":1}}`))
			return err
		}},
		{"show with only id", func() error {
			_, err := DecodeEnvelope[models.Show]([]byte(`{"data":{"_id":"x"}}`))
			return err
		}},
		{"episode list with empty element", func() error {
			_, err := DecodeEnvelope[[]models.Episode]([]byte(`{"data":[{}]}`))
			return err
		}},
		{"episode list with null element", func() error {
			_, err := DecodeEnvelope[[]models.Episode]([]byte(`{"data":[null]}`))
			return err
		}},
		{"comment list second element incomplete", func() error {
			_, err := DecodeEnvelope[[]models.Comment]([]byte(`{"data":[
				{"_id":"c1","episodeId":"e1","text":"a","userEmail":"a@b.c"},
				{"_id":"c2","episodeId":"e1","text":"b"}]}`))
			return err
		}},
		{"media without path", func() error {
			_, err := DecodeEnvelope[models.Media]([]byte(`{"data":{"_id":"m1","type":"image/png"}}`))
			return err
		}},
		{"new comment without user id", func() error {
			_, err := DecodeEnvelope[models.NewComment]([]byte(`{"data":{
				"_id":"c1","episodeId":"e1","text":"a","userEmail":"a@b.c"}}`))
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode()
			var keyErr *models.MissingKeyError
			if !errors.As(err, &keyErr) {
				t.Fatalf("expected MissingKeyError, got %T: %v", err, err)
			}
		})
	}
}

func TestLoginWithoutTokenFails(t *testing.T) {
	c, _ := newTestServer(t, http.StatusOK, `{"data":{}}`)

	user, err := c.Login(context.Background(), "a@b.c", "secret")

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %T: %v", err, err)
	}
	if user.Token != "" {
		t.Errorf("expected zero LoginUser, got %+v", user)
	}
}

func TestTimeoutDoesNotTouchSharedClient(t *testing.T) {
	shared := &http.Client{}

	tests := []struct {
		name string
		opts []Option
	}{
		{"timeout after client", []Option{WithHTTPClient(shared), WithTimeout(3 * time.Second)}},
		{"timeout before client", []Option{WithTimeout(3 * time.Second), WithHTTPClient(shared)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New("http://example.test", tt.opts...)

			if c.httpClient.Timeout != 3*time.Second {
				t.Errorf("client timeout = %v, want 3s", c.httpClient.Timeout)
			}
			if shared.Timeout != 0 {
				t.Errorf("shared client was modified: timeout = %v", shared.Timeout)
			}
		})
	}

	if New("http://example.test").httpClient.Timeout != 0 {
		t.Error("expected no timeout by default")
	}
}

func TestNonSuccessStatus(t *testing.T) {
	// a decodable body must still be ignored on a non-2xx status
	c, _ := newTestServer(t, http.StatusUnauthorized, `{"data":[{"_id":"s1","title":"Leak"}]}`)

	shows, err := c.ListShows(context.Background(), "token")

	var statusErr *HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected HTTPStatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", statusErr.StatusCode)
	}
	if StatusCode(err) != http.StatusUnauthorized {
		t.Errorf("StatusCode returned %d", StatusCode(err))
	}
	if shows != nil {
		t.Errorf("expected no shows, got %+v", shows)
	}
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, WithLogger(zerolog.Nop()))
	_, err := c.ListShows(context.Background(), "token")

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %T: %v", err, err)
	}
}

func TestCanceledContext(t *testing.T) {
	c, _ := newTestServer(t, http.StatusOK, `{"data":[]}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListShows(ctx, "token")
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %T: %v", err, err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}

func TestAuthorizationHeaderVerbatim(t *testing.T) {
	const token = "eyJhbGciOiJIUzI1NiJ9.payload.signature"
	c, rec := newTestServer(t, http.StatusOK, `{"data":[]}`)

	if _, err := c.ListShows(context.Background(), token); err != nil {
		t.Fatalf("ListShows returned error: %v", err)
	}

	if got := rec.header.Get("Authorization"); got != token {
		t.Errorf("Authorization header = %q, want %q", got, token)
	}
	if rec.header.Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestUnauthenticatedCallsSendNoAuthorization(t *testing.T) {
	c, rec := newTestServer(t, http.StatusCreated, `{"data":{"email":"a@b.c","type":"user","_id":"u1"}}`)

	if _, err := c.Register(context.Background(), "a@b.c", "secret"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if _, ok := rec.header["Authorization"]; ok {
		t.Errorf("register must not send Authorization, got %q", rec.header.Get("Authorization"))
	}
}

func TestRequestShapes(t *testing.T) {
	ctx := context.Background()

	const (
		userBody       = `{"data":{"email":"a@b.c","type":"user","_id":"u1"}}`
		loginBody      = `{"data":{"token":"tok"}}`
		showBody       = `{"data":{"type":"show","title":"Dark","description":"","_id":"s1","likesCount":0,"imageUrl":""}}`
		episodesBody   = `{"data":[{"_id":"e1","title":"Pilot","description":"","imageUrl":"","episodeNumber":"1","season":"1"}]}`
		episodeBody    = `{"data":{"_id":"a/b","showId":"s1","type":"episode","title":"Pilot","description":"","imageUrl":"","episodeNumber":"1","season":"1"}}`
		newEpisodeBody = `{"data":{"showId":"s1","title":"Pilot","description":"First","episodeNumber":"1","season":"2","type":"episode","_id":"e9","imageUrl":"/api/media/m1"}}`
		commentsBody   = `{"data":[{"_id":"c1","episodeId":"e1","text":"great","userEmail":"a@b.c"}]}`
		commentBody    = `{"data":{"_id":"c1","episodeId":"e1","text":"great","userEmail":"a@b.c","userId":"u1"}}`
	)

	tests := []struct {
		name       string
		response   string
		call       func(c *Client) error
		wantMethod string
		wantPath   string
		wantBody   map[string]string
	}{
		{
			name:     "register",
			response: userBody,
			call: func(c *Client) error {
				_, err := c.Register(ctx, "a@b.c", "secret")
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/users",
			wantBody:   map[string]string{"email": "a@b.c", "password": "secret"},
		},
		{
			name:     "login",
			response: loginBody,
			call: func(c *Client) error {
				_, err := c.Login(ctx, "a@b.c", "secret")
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/users/sessions",
			wantBody:   map[string]string{"email": "a@b.c", "password": "secret"},
		},
		{
			name:     "show details",
			response: showBody,
			call: func(c *Client) error {
				_, err := c.ShowDetails(ctx, "t", "s1")
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/shows/s1",
		},
		{
			name:     "list episodes",
			response: episodesBody,
			call: func(c *Client) error {
				_, err := c.ListEpisodes(ctx, "t", "s1")
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/shows/s1/episodes",
		},
		{
			name:     "episode details escapes id",
			response: episodeBody,
			call: func(c *Client) error {
				_, err := c.EpisodeDetails(ctx, "t", "a/b")
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/episodes/a%2Fb",
		},
		{
			name:     "create episode",
			response: newEpisodeBody,
			call: func(c *Client) error {
				_, err := c.CreateEpisode(ctx, "t", models.EpisodeInput{
					ShowID: "s1", MediaID: "m1", Title: "Pilot",
					Description: "First", EpisodeNumber: "1", Season: "2",
				})
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/episodes",
			wantBody: map[string]string{
				"showId": "s1", "mediaId": "m1", "title": "Pilot",
				"description": "First", "episodeNumber": "1", "season": "2",
			},
		},
		{
			name:     "list comments",
			response: commentsBody,
			call: func(c *Client) error {
				_, err := c.ListComments(ctx, "t", "e1")
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/episodes/e1/comments",
		},
		{
			name:     "create comment",
			response: commentBody,
			call: func(c *Client) error {
				_, err := c.CreateComment(ctx, "t", "e1", "great")
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/comments",
			wantBody:   map[string]string{"text": "great", "episodeId": "e1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestServer(t, http.StatusOK, tt.response)

			if err := tt.call(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.method != tt.wantMethod {
				t.Errorf("method = %s, want %s", rec.method, tt.wantMethod)
			}
			if rec.path != tt.wantPath {
				t.Errorf("path = %s, want %s", rec.path, tt.wantPath)
			}
			if tt.wantBody == nil {
				if len(rec.body) != 0 {
					t.Errorf("expected empty body, got %s", rec.body)
				}
				return
			}
			if ct := rec.header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			var got map[string]string
			if err := json.Unmarshal(rec.body, &got); err != nil {
				t.Fatalf("body is not JSON: %v", err)
			}
			for k, v := range tt.wantBody {
				if got[k] != v {
					t.Errorf("body[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	c := New("http://example.test/")
	if c.BaseURL() != "http://example.test" {
		t.Errorf("BaseURL = %q", c.BaseURL())
	}
	if New("").BaseURL() != DefaultBaseURL {
		t.Errorf("empty base URL should fall back to %s", DefaultBaseURL)
	}
}

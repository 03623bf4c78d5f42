package client

import (
	"context"
	"net/http"

	"tvshows-client/internal/models"
)

// Register creates an account. POST /api/users
func (c *Client) Register(ctx context.Context, email, password string) (models.User, error) {
	r, err := jsonRequest("register", http.MethodPost, "/api/users", "",
		models.Credentials{Email: email, Password: password})
	if err != nil {
		return models.User{}, err
	}
	return send[models.User](ctx, c, r)
}

// Login opens a session and returns its token. POST /api/users/sessions
func (c *Client) Login(ctx context.Context, email, password string) (models.LoginUser, error) {
	r, err := jsonRequest("login", http.MethodPost, "/api/users/sessions", "",
		models.Credentials{Email: email, Password: password})
	if err != nil {
		return models.LoginUser{}, err
	}
	return send[models.LoginUser](ctx, c, r)
}

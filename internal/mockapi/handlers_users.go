package mockapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"tvshows-client/internal/models"

	"github.com/rs/zerolog"
)

// UserHandler handles account and session requests
type UserHandler struct {
	store  *Store
	tokens *TokenIssuer
	logger zerolog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(store *Store, tokens *TokenIssuer, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		store:  store,
		tokens: tokens,
		logger: logger,
	}
}

func decodeCredentials(r *http.Request) (models.Credentials, error) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		return creds, err
	}
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return creds, ErrInvalid
	}
	return creds, nil
}

// Register handles POST /api/users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeCredentials(r)
	if err != nil {
		respondError(w, "email and password are required", http.StatusBadRequest)
		return
	}

	hash, err := HashPassword(creds.Password)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to hash password")
		respondError(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	user, err := h.store.CreateUser(creds.Email, hash)
	if err != nil {
		respondError(w, "Email has already been taken", statusFor(err))
		return
	}

	h.logger.Info().
		Str("user_id", user.ID).
		Str("email", user.Email).
		Msg("User created")

	respondData(w, http.StatusCreated, user)
}

// Login handles POST /api/users/sessions
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeCredentials(r)
	if err != nil {
		respondError(w, "email and password are required", http.StatusBadRequest)
		return
	}

	user, hash, err := h.store.UserByEmail(creds.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respondError(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		respondError(w, "Failed to log in", http.StatusInternalServerError)
		return
	}
	if !CheckPassword(hash, creds.Password) {
		respondError(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Email)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate token")
		respondError(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	respondData(w, http.StatusOK, models.LoginUser{Token: token})
}

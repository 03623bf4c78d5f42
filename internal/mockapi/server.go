package mockapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// Deps are the collaborators of the mock API
type Deps struct {
	Store  *Store
	Tokens *TokenIssuer
	Media  MediaStore
	Logger zerolog.Logger
}

// NewRouter builds the mock API routes
func NewRouter(d Deps) http.Handler {
	if d.Media == nil {
		d.Media = NewMemoryMediaStore()
	}

	userHandler := NewUserHandler(d.Store, d.Tokens, d.Logger)
	catalogHandler := NewCatalogHandler(d.Store, d.Logger)
	mediaHandler := NewMediaHandler(d.Store, d.Media, d.Logger)

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(d.Logger))
	r.Use(chiMiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/users", userHandler.Register)
		r.Post("/users/sessions", userHandler.Login)
		r.Get("/media/{media_id}", mediaHandler.Download)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(d.Tokens, d.Store))
			r.Get("/shows", catalogHandler.ListShows)
			r.Get("/shows/{show_id}", catalogHandler.GetShow)
			r.Get("/shows/{show_id}/episodes", catalogHandler.ListEpisodes)
			r.Post("/episodes", catalogHandler.CreateEpisode)
			r.Get("/episodes/{episode_id}", catalogHandler.GetEpisode)
			r.Get("/episodes/{episode_id}/comments", catalogHandler.ListComments)
			r.Post("/comments", catalogHandler.CreateComment)
			r.Post("/media", mediaHandler.Upload)
		})
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	})

	return corsHandler.Handler(r)
}

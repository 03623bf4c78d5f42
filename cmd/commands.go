package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"tvshows-client/internal/services"

	"github.com/rs/zerolog/log"
)

var errUsage = errors.New("missing required flag")

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

func required(fs *flag.FlagSet, values ...string) error {
	for _, v := range values {
		if v == "" {
			fs.Usage()
			return errUsage
		}
	}
	return nil
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// session resolves the token from -token/TVSHOWS_TOKEN or the remembered login
func (a *app) session(ctx context.Context) (*services.Session, error) {
	if a.token != "" {
		return &services.Session{Token: a.token}, nil
	}
	return a.sessions.Restore(ctx)
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := newFlagSet("register")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	remember := fs.Bool("remember", false, "remember the login for later commands")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, *email, *password); err != nil {
		return err
	}

	session, err := a.sessions.Register(ctx, *email, *password, *remember)
	if err != nil {
		return err
	}

	log.Info().Str("email", session.Email).Msg("User registered")
	return a.print(session)
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	remember := fs.Bool("remember", false, "remember the login for later commands")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, *email, *password); err != nil {
		return err
	}

	session, err := a.sessions.Login(ctx, *email, *password, *remember)
	if err != nil {
		return err
	}

	log.Info().Str("email", session.Email).Bool("remembered", *remember).Msg("Logged in")
	return a.print(session)
}

func (a *app) logout(ctx context.Context, _ []string) error {
	if err := a.sessions.Logout(ctx); err != nil {
		return err
	}
	log.Info().Msg("Remembered login cleared")
	return nil
}

func (a *app) shows(ctx context.Context, _ []string) error {
	session, err := a.session(ctx)
	if err != nil {
		return err
	}

	shows, err := a.catalog.Shows(ctx, session)
	if err != nil {
		return err
	}
	return a.print(shows)
}

func (a *app) show(ctx context.Context, args []string) error {
	fs := newFlagSet("show")
	id := fs.String("id", "", "show id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, *id); err != nil {
		return err
	}

	session, err := a.session(ctx)
	if err != nil {
		return err
	}

	page, pageErr := a.catalog.ShowPage(ctx, session, *id)
	if page.Details != nil || page.Episodes != nil {
		if err := a.print(page); err != nil {
			return err
		}
	}
	return pageErr
}

func (a *app) episode(ctx context.Context, args []string) error {
	fs := newFlagSet("episode")
	id := fs.String("id", "", "episode id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, *id); err != nil {
		return err
	}

	session, err := a.session(ctx)
	if err != nil {
		return err
	}

	episode, err := a.episodes.Details(ctx, session, *id)
	if err != nil {
		return err
	}
	return a.print(episode)
}

func readImage(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return data, nil
}

func (a *app) upload(ctx context.Context, args []string) error {
	fs := newFlagSet("upload")
	image := fs.String("image", "", "PNG file to upload")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, *image); err != nil {
		return err
	}

	png, err := readImage(*image)
	if err != nil {
		return err
	}

	session, err := a.session(ctx)
	if err != nil {
		return err
	}

	media, err := a.episodes.UploadImage(ctx, session, png)
	if err != nil {
		return err
	}
	return a.print(media)
}

func (a *app) addEpisode(ctx context.Context, args []string) error {
	fs := newFlagSet("add-episode")
	var draft services.EpisodeDraft
	fs.StringVar(&draft.ShowID, "show", "", "show id")
	fs.StringVar(&draft.Title, "title", "", "episode title")
	fs.StringVar(&draft.Description, "description", "", "episode description")
	fs.StringVar(&draft.EpisodeNumber, "number", "", "episode number")
	fs.StringVar(&draft.Season, "season", "", "season number")
	fs.StringVar(&draft.MediaID, "media", "", "id of an already uploaded image")
	image := fs.String("image", "", "PNG file to upload as the episode image")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, draft.ShowID, draft.Title); err != nil {
		return err
	}

	session, err := a.session(ctx)
	if err != nil {
		return err
	}

	if *image != "" {
		png, err := readImage(*image)
		if err != nil {
			return err
		}
		episode, err := a.episodes.AddWithImage(ctx, session, draft, png)
		if err != nil {
			return err
		}
		return a.print(episode)
	}

	episode, err := a.episodes.Add(ctx, session, draft)
	if err != nil {
		return err
	}
	return a.print(episode)
}

func (a *app) listComments(ctx context.Context, args []string) error {
	fs := newFlagSet("comments")
	episodeID := fs.String("episode", "", "episode id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, *episodeID); err != nil {
		return err
	}

	session, err := a.session(ctx)
	if err != nil {
		return err
	}

	comments, err := a.comments.List(ctx, session, *episodeID)
	if err != nil {
		return err
	}
	return a.print(comments)
}

func (a *app) postComment(ctx context.Context, args []string) error {
	fs := newFlagSet("comment")
	episodeID := fs.String("episode", "", "episode id")
	text := fs.String("text", "", "comment text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, *episodeID, *text); err != nil {
		return err
	}

	session, err := a.session(ctx)
	if err != nil {
		return err
	}

	comments, err := a.comments.Post(ctx, session, *episodeID, *text)
	if err != nil {
		return err
	}
	return a.print(comments)
}

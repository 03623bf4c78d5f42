package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"tvshows-client/internal/client"
	"tvshows-client/internal/config"
	"tvshows-client/internal/repository"
	"tvshows-client/internal/services"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: tvshows [-config file] [-token token] <command> [flags]

commands:
  register     -email -password [-remember]
  login        -email -password [-remember]
  logout
  shows
  show         -id
  episode      -id
  upload       -image file.png
  add-episode  -show -title -description -number -season -image file.png
  comments     -episode
  comment      -episode -text
  serve-mock
`

// app carries what every command needs
type app struct {
	cfg      *config.Config
	token    string
	api      *client.Client
	creds    *repository.CredentialRepository
	sessions *services.SessionService
	catalog  *services.CatalogService
	episodes *services.EpisodeService
	comments *services.CommentService
	out      io.Writer
}

func Run() {
	root := flag.NewFlagSet("tvshows", flag.ExitOnError)
	root.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	configPath := root.String("config", "config.yaml", "path to the YAML config file")
	token := root.String("token", os.Getenv("TVSHOWS_TOKEN"), "session token (skips remembered login)")
	root.Parse(os.Args[1:])

	if root.NArg() == 0 {
		root.Usage()
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	command, args := root.Arg(0), root.Args()[1:]
	if command == "serve-mock" {
		serveMock(cfg)
		return
	}

	a, err := newApp(cfg, *token)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize")
	}
	defer a.creds.Close()

	if err := a.dispatch(context.Background(), command, args); err != nil {
		var opErr *services.OperationError
		if errors.As(err, &opErr) {
			log.Debug().Err(err).Str("command", command).Msg("Command failed")
			for _, msg := range services.UserMessages(err) {
				fmt.Fprintln(os.Stderr, "Error: "+msg)
			}
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func newApp(cfg *config.Config, token string) (*app, error) {
	ctx := context.Background()

	// Open remembered credentials
	creds, err := repository.OpenCredentialRepository(ctx, cfg.Credentials.Path)
	if err != nil {
		return nil, err
	}

	// Initialize client
	api := client.New(cfg.API.BaseURL,
		client.WithTimeout(cfg.API.Timeout),
		client.WithLogger(log.Logger),
	)

	// Initialize services
	return &app{
		cfg:      cfg,
		token:    token,
		api:      api,
		creds:    creds,
		sessions: services.NewSessionService(api, creds),
		catalog:  services.NewCatalogService(api),
		episodes: services.NewEpisodeService(api),
		comments: services.NewCommentService(api),
		out:      os.Stdout,
	}, nil
}

func (a *app) dispatch(ctx context.Context, command string, args []string) error {
	handlers := map[string]func(context.Context, []string) error{
		"register":    a.register,
		"login":       a.login,
		"logout":      a.logout,
		"shows":       a.shows,
		"show":        a.show,
		"episode":     a.episode,
		"upload":      a.upload,
		"add-episode": a.addEpisode,
		"comments":    a.listComments,
		"comment":     a.postComment,
	}

	handler, ok := handlers[command]
	if !ok {
		return fmt.Errorf("unknown command %q\n\n%s", command, usage)
	}
	return handler(ctx, args)
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

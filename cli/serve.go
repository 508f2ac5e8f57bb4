package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-site-backend/api"
	"github.com/rpupo63/portfolio-site-backend/cache"
	"github.com/rpupo63/portfolio-site-backend/pages"
	"github.com/rpupo63/portfolio-site-backend/render"
	"github.com/rpupo63/portfolio-site-backend/services"
)

const shutdownTimeout = 30 * time.Second

func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "serve",
		Short:        "Start the HTTP server",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), rootOpts, cmd)
		},
	}
}

func runServe(ctx context.Context, opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg, opts.Verbose, cmd.ErrOrStderr())
	log.Info().Msg("Initializing app...")

	store, err := loadStore(opts)
	if err != nil {
		return WrapExitError(ExitFailure, "loading content", err)
	}

	articleCache, err := cache.New(cache.Options{
		RedisURL:   cfg.RedisURL,
		Prefix:     cfg.CachePrefix,
		DefaultTTL: cfg.CacheTTL,
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "connecting to cache", err)
	}
	defer articleCache.Close()

	articles := services.NewArticleService(store.Posts(), services.ArticleOptions{
		BaseURL:        cfg.BaseURL,
		WordsPerMinute: cfg.ReadingWPM,
		RelatedLimit:   cfg.RelatedLimit,
		Cache:          articleCache,
		CacheTTL:       cfg.CacheTTL,
	})
	if err := articles.Warm(ctx); err != nil {
		log.Warn().Err(err).Msg("article cache warmup failed")
	}

	inline := render.NewInlineRenderer()
	renderer, err := pages.NewRenderer(inline)
	if err != nil {
		return WrapExitError(ExitFailure, "parsing templates", err)
	}

	server := api.NewServer(*cfg, api.Dependencies{
		Store:    store,
		Articles: articles,
		Contact:  services.NewContactService(cfg.ContactSendDelay),
		Pages:    renderer,
	})

	errChannel := make(chan error, 2)
	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(shutdownTimeout)

	if errors.Is(fatalErr, errInterrupted) || errors.Is(fatalErr, http.ErrServerClosed) {
		return nil
	}
	return WrapExitError(ExitFailure, "server stopped", fatalErr)
}

var errInterrupted = errors.New("interrupted")

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%w: %s", errInterrupted, <-c)
}

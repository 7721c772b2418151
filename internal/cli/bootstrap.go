package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/glabrego/noor-cli/internal/app"
	"github.com/glabrego/noor-cli/internal/bookmark"
	"github.com/glabrego/noor-cli/internal/config"
	"github.com/glabrego/noor-cli/internal/explain"
	"github.com/glabrego/noor-cli/internal/gemini"
	"github.com/glabrego/noor-cli/internal/logging"
	"github.com/glabrego/noor-cli/internal/quran"
	"github.com/glabrego/noor-cli/internal/storage"
)

// Runtime is everything a command needs once startup succeeded.
type Runtime struct {
	Config  config.Config
	Logger  zerolog.Logger
	Service *app.Service

	closers []io.Closer
}

func (r *Runtime) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	r.closers = nil
	return errors.Join(errs...)
}

// Bootstrap loads the configuration, opens the log file and the database
// and builds the service. Flag values override the configuration.
func Bootstrap(ctx context.Context, opts *RootOptions) (*Runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if opts.DBPath != "" {
		cfg.DBPath = opts.DBPath
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}

	rt := &Runtime{Config: cfg}

	logger, logCloser, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logging init error: %w", err)
	}
	rt.Logger = logger
	rt.closers = append(rt.closers, logCloser)

	repo, err := storage.NewRepository(cfg.DBPath)
	if err != nil {
		_ = rt.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}
	rt.closers = append(rt.closers, repo)

	initCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	if err := repo.Init(initCtx); err != nil {
		_ = rt.Close()
		return nil, fmt.Errorf("storage schema error: %w", err)
	}
	if err := repo.CheckWritable(initCtx); err != nil {
		_ = rt.Close()
		return nil, fmt.Errorf("storage write check failed (%v). Verify NOOR_DB_PATH is writable: %s", err, cfg.DBPath)
	}

	if !cfg.HasGeminiKey() {
		logger.Warn().Msg("no Gemini API key configured, explanations will be unavailable")
	}

	rt.Service = app.NewService(
		quran.NewClient(cfg.QuranAPIBaseURL, nil),
		explain.NewClient(gemini.NewClient(cfg.GeminiAPIBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, nil), logger),
		bookmark.NewStore(repo, logger),
		logger,
	)
	return rt, nil
}

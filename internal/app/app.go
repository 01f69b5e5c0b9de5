package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/demoapi"
	"github.com/five82/marquee/internal/logging"
	"github.com/five82/marquee/internal/logtail"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/ui"
)

// Options configure a marquee run.
type Options struct {
	ConfigPath string
	APIURL     string // overrides config and environment when set
	PrefsPath  string // empty uses default ~/.config/marquee/prefs.toml
}

const healthTimeout = 3 * time.Second

// Run boots the catalog view and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = env.logger.Close() }()

	client, err := catalog.NewClient(env.cfg.APIURL)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		env.logger.Warn("load prefs failed", "error", err)
	}

	env.logger.Info("starting catalog view", "api", client.BaseURL())
	final, err := ui.Run(ctx, ui.Options{
		Context:   ctx,
		Fetcher:   client,
		Logger:    env.logger,
		ThemeName: userPrefs.Theme,
		Compact:   userPrefs.Compact,
		PrefsPath: prefsPath,
	})
	if err != nil {
		env.logger.Error("catalog view exited with error", "error", err)
		return err
	}
	env.logger.Info("catalog view closed", "outcome", Describe(final))
	return nil
}

// Health checks the configured API's /health endpoint and writes a one-line
// report to out.
func Health(ctx context.Context, opts Options, out io.Writer) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = env.logger.Close() }()

	client, err := catalog.NewClient(env.cfg.APIURL)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	health, err := client.FetchHealth(ctx)
	if err != nil {
		env.logger.Error("health check failed", "api", client.BaseURL(), "error", err)
		return fmt.Errorf("check %s: %w", client.BaseURL(), err)
	}
	if !health.Healthy() {
		return fmt.Errorf("check %s: backend reported status %q", client.BaseURL(), health.Status)
	}
	_, _ = fmt.Fprintf(out, "%s: %s\n", client.BaseURL(), health.Status)
	return nil
}

// Serve runs the demo catalog API on addr until ctx is cancelled.
func Serve(ctx context.Context, opts Options, addr string) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = env.logger.Close() }()

	return demoapi.NewServer(addr, nil, env.logger.With("component", "demoapi")).Run(ctx)
}

// Logs writes the last lines of the diagnostic log to out, one formatted
// record per line.
func Logs(opts Options, lines int, raw bool, out io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.LogFile == "" {
		return fmt.Errorf("no log file configured")
	}
	records, err := logtail.Tail(cfg.LogFile, lines)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		_, _ = fmt.Fprintf(out, "no log entries in %s\n", cfg.LogFile)
		return nil
	}
	for _, line := range records {
		if !raw {
			line = logtail.Format(line)
		}
		_, _ = fmt.Fprintln(out, line)
	}
	return nil
}

// Describe summarizes a final view state for logs.
func Describe(s state.ViewState) string {
	switch v := s.(type) {
	case state.Loaded:
		return fmt.Sprintf("loaded %d movies", len(v.Collection))
	case state.Failed:
		return "failed"
	case state.Loading:
		return "closed while loading"
	default:
		return "unknown"
	}
}

type environment struct {
	cfg    config.Config
	logger *logging.Logger
}

func setup(opts Options) (environment, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return environment{}, fmt.Errorf("load config: %w", err)
	}
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}
	logger, err := logging.NewLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return environment{}, fmt.Errorf("init logger: %w", err)
	}
	return environment{cfg: cfg, logger: logger}, nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/devpulse/pkg/cache"
	"github.com/umputun/devpulse/pkg/config"
	"github.com/umputun/devpulse/pkg/feed"
	"github.com/umputun/devpulse/pkg/repository"
	"github.com/umputun/devpulse/pkg/scheduler"
	"github.com/umputun/devpulse/pkg/source"
	"github.com/umputun/devpulse/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting devpulse version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] devpulse failed: %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// persistent store
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		return fmt.Errorf("init repositories: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close repositories: %v", err)
		}
	}()

	// cache backing store, unavailability degrades to always-miss
	cacheSvc := makeCache(cfg.Cache)
	defer func() {
		if err := cacheSvc.Close(); err != nil {
			log.Printf("[WARN] failed to close cache: %v", err)
		}
	}()

	// source adapters and sync schedule
	syncer := scheduler.NewSyncer(repos.External, nil)
	sched := scheduler.NewScheduler(syncer, makeJobs(cfg.Sources))
	sched.Start(ctx)
	defer sched.Stop()

	// feed assembly over the shared repositories
	adapter := server.NewRepositoryAdapter(repos)
	assembler := feed.NewAssembler(adapter, nil)

	srv := server.New(cfg, assembler, adapter, sched, cacheSvc, revision, opts.Debug)
	return srv.Run(ctx)
}

// loadConfig reads the config file, falling back to defaults when the
// file is absent
func loadConfig(opts Opts) (*config.Config, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		log.Printf("[WARN] config file %s not found, using defaults", opts.Config)
		cfg = &config.Config{}
		cfg.SetDefaults()
	}

	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	return cfg, nil
}

// makeCache opens the badger-backed cache, degrading to a no-op store
// when the backing store cannot be opened
func makeCache(cfg config.CacheConfig) *cache.Service {
	store, err := cache.NewBadgerStore(cfg.Path, cfg.InMemory)
	if err != nil {
		log.Printf("[WARN] cache store unavailable, serving uncached: %v", err)
		return cache.NewService(cache.NoopStore{}, cfg.SingleFlight)
	}
	return cache.NewService(store, cfg.SingleFlight)
}

// makeJobs builds the per-source sync schedule
func makeJobs(cfg config.SourcesConfig) []scheduler.Job {
	hn := source.NewHackerNews(source.HackerNewsParams{
		Timeout:   cfg.HackerNews.Timeout,
		MinPoints: cfg.HackerNews.MinEngagement,
	})
	devto := source.NewDevTo(source.DevToParams{
		Timeout:      cfg.DevTo.Timeout,
		MinReactions: cfg.DevTo.MinEngagement,
		Token:        cfg.DevTo.Token,
	})

	return []scheduler.Job{
		{
			Adapter:    hn,
			Interval:   cfg.HackerNews.Interval,
			FetchLimit: cfg.HackerNews.FetchLimit,
			Retention:  time.Duration(cfg.HackerNews.RetentionDays) * 24 * time.Hour,
			Enabled:    cfg.HackerNews.Enabled,
		},
		{
			Adapter:    devto,
			Interval:   cfg.DevTo.Interval,
			FetchLimit: cfg.DevTo.FetchLimit,
			Retention:  time.Duration(cfg.DevTo.RetentionDays) * 24 * time.Hour,
			Enabled:    cfg.DevTo.Enabled,
		},
	}
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

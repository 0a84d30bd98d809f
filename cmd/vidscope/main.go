package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/vidscope/vidscope/pkg/config"
	"github.com/vidscope/vidscope/pkg/feed"
	"github.com/vidscope/vidscope/pkg/repository"
	"github.com/vidscope/vidscope/pkg/service"
	"github.com/vidscope/vidscope/pkg/syncer"
	"github.com/vidscope/vidscope/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	// load .env if present, environment wins over file values
	_ = godotenv.Load()

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
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}

	cancel()
	log.Print("[INFO] shutdown complete")
}

// run wires the application together and blocks until the context ends
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// credentials and the trigger secret must never reach the logs
	secrets := []string{}
	if cfg.Upstream.DefaultCredential != "" {
		secrets = append(secrets, cfg.Upstream.DefaultCredential)
	}
	if cfg.Auth.CronSecret != "" {
		secrets = append(secrets, cfg.Auth.CronSecret)
	}
	SetupLog(opts.Debug, secrets...)

	log.Printf("[INFO] starting vidscope version %s", revision)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	svc := service.NewSyncService(repos)

	upstream := cfg.GetUpstreamConfig()
	client := feed.NewClient(feed.ClientConfig{
		Timeout:    upstream.Timeout,
		MaxRetries: upstream.MaxRetries,
		BaseDelay:  upstream.BaseDelay,
		MaxDelay:   upstream.MaxDelay,
	})
	adapter := feed.NewAdapter(client, feed.AdapterConfig{
		BaseURL:           upstream.BaseURL,
		UserAgent:         upstream.UserAgent,
		Referer:           upstream.Referer,
		Origin:            upstream.Origin,
		DefaultCredential: upstream.DefaultCredential,
	})

	syncCfg := cfg.GetSyncConfig()
	orchestrator := syncer.NewOrchestrator(syncer.Params{
		Store:       svc,
		Fetcher:     adapter,
		Persister:   syncer.NewReconciler(svc),
		Notifier:    syncer.NewEmitter(svc, syncCfg.NotifyTitles, syncCfg.NotifyPayloadSize),
		Platform:    upstream.Platform,
		SourceDelay: syncCfg.SourceDelay,
	})

	scheduler := syncer.NewScheduler(orchestrator, syncCfg.Interval)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	srv := server.New(cfg, svc, orchestrator, revision, opts.Debug)
	return srv.Run(ctx)
}

// SetupLog configures the logger, optionally masking secrets
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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

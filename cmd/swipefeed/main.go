package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/swipefeed/pkg/catalog"
	"github.com/umputun/swipefeed/pkg/config"
	"github.com/umputun/swipefeed/pkg/swipe"
	"github.com/umputun/swipefeed/pkg/term"
	"github.com/umputun/swipefeed/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"config file, built-in sample videos used if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	Mode   string `long:"mode" env:"MODE" choice:"web" choice:"term" default:"web" description:"shell to run"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

// terminal shell streams
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

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

	if opts.NoColor {
		color.NoColor = true
	}
	SetupLog(opts.Debug)

	log.Printf("[INFO] starting swipefeed version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run loads configuration and videos and runs the selected shell until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	videos, err := catalog.NewLoader(cfg.Catalog.Workers, makeSources(cfg)...).Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load videos: %w", err)
	}

	ctrl := swipe.NewController(videos)

	if opts.Mode == "term" {
		return term.New(ctrl, stdin, stdout, opts.NoColor).Run(ctx)
	}

	srv := server.New(cfg, ctrl, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeSources builds catalog sources from config, inline videos first, then feeds and stores
func makeSources(cfg *config.Config) []catalog.Source {
	var res []catalog.Source
	if len(cfg.Catalog.Videos) > 0 {
		res = append(res, catalog.Static(cfg.Catalog.Videos))
	}
	for _, f := range cfg.Catalog.Feeds {
		res = append(res, catalog.NewFeedSource(catalog.FeedParams{
			URL:       f.URL,
			Name:      f.Name,
			Timeout:   cfg.Catalog.Fetch.Timeout,
			UserAgent: cfg.Catalog.Fetch.UserAgent,
			Retries:   cfg.Catalog.Fetch.Retries,
		}))
	}
	for _, s := range cfg.Catalog.Stores {
		res = append(res, catalog.NewStoreSource(s.DSN))
	}
	return res
}

// SetupLog configures lgr and the standard logger, logs go to stderr to keep stdout for the terminal shell
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(os.Stderr), lgr.Err(os.Stderr)}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError, lgr.CallerFile, lgr.CallerFunc)
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

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/contentfactory/internal/config"
	"github.com/iudanet/contentfactory/internal/server"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env загружается до чтения переменных окружения
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}

	cfg, err := config.FromEnv(nil)
	if err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}

	// Флаги переопределяют окружение
	showVersion := flag.Bool("version", false, "Show version information")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if *showVersion {
		printVersion()
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, logger, Version)
	if err != nil {
		return err
	}

	logger.Info("ContentFactory server starting",
		"version", Version,
		"commit", GitCommit,
		"storage", srv.Backend(),
		"serverless", cfg.Serverless,
	)

	return srv.Run(ctx)
}

func newLogger(cfg config.Config) *slog.Logger {
	level, _ := config.ParseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

func printVersion() {
	fmt.Printf("ContentFactory Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}

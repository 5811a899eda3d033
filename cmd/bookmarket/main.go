package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/avolkovs/bookmarket-cli/internal/client/cli"
	"github.com/avolkovs/bookmarket-cli/internal/client/config"
	"github.com/avolkovs/bookmarket-cli/internal/logging"
)

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func main() {

	cfg := config.LoadConfig()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel(cfg.LogLevel)})
	logger := logging.NewSlogLogger(slog.New(handler))

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}

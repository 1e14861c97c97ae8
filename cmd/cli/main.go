package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/cli"
	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/cli/config"
	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	// Logs go to stderr so they do not interleave with the menus on stdout.
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}

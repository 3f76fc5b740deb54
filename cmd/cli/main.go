package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/guilhermegsr/password-manager-LP/internal/buildinfo"
	"github.com/guilhermegsr/password-manager-LP/internal/cli"
	"github.com/guilhermegsr/password-manager-LP/internal/config"
	"github.com/guilhermegsr/password-manager-LP/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})
	logger := logging.NewSlogLogger(slog.New(handler))

	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}

// Command roomrenderd serves room renders over HTTP.
//
// Configuration is read from ROOMRENDER_* environment variables, optionally
// seeded from a .env file in the working directory.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/roomrender"
	"github.com/gogpu/roomrender/internal/server"
)

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	roomrender.SetLogger(logger)

	r, err := roomrender.NewRenderer(roomrender.WithWarmAssets())
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg, r, logger).ListenAndServe(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

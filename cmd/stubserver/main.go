package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/patiparn/rodchao/internal/buildinfo"
	"github.com/patiparn/rodchao/internal/logging"
	"github.com/patiparn/rodchao/internal/server/stub"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := stub.LoadConfig()
	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	store := stub.NewStore()
	if err := store.Seed(); err != nil {
		log.Error(ctx, "seeding fixture data failed", "error", err)
		os.Exit(1)
	}

	r := stub.NewRouter(store, log, cfg.RequestsPerMinute, cfg.Burst)

	log.Info(ctx, "fixture backend listening", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}

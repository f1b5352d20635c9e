package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/patiparn/rodchao/internal/buildinfo"
	"github.com/patiparn/rodchao/internal/client/cli"
	"github.com/patiparn/rodchao/internal/client/config"
	"github.com/patiparn/rodchao/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app := cli.NewApp(cfg, log)
	app.Run(ctx)
}

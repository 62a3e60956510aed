package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/weeksoflife/internal/buildinfo"
	"github.com/dmitrijs2005/weeksoflife/internal/client/cli"
	"github.com/dmitrijs2005/weeksoflife/internal/client/config"
	"github.com/dmitrijs2005/weeksoflife/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig(ctx)
	logger := logging.New(cfg.LoggingOptions())

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "error closing storage", "error", err)
	}

}

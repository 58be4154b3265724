package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/coinviewer/internal/client/cli"
	"github.com/dmitrijs2005/coinviewer/internal/client/config"
	"github.com/dmitrijs2005/coinviewer/internal/logging"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}

package main

import (
	"context"
	"log"
	"os"

	"github.com/roadfleet/roadfleet/internal/buildinfo"
	"github.com/roadfleet/roadfleet/internal/console/cli"
	"github.com/roadfleet/roadfleet/internal/console/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}

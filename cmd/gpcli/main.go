package main

import (
	"context"
	"log"
	"os"

	"github.com/avdenisov/groupplan/internal/buildinfo"
	"github.com/avdenisov/groupplan/internal/client/cli"
	"github.com/avdenisov/groupplan/internal/client/config"
	"github.com/avdenisov/groupplan/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewText(os.Stderr)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}

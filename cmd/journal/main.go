package main

import (
	"context"
	"log"
	"os"

	"github.com/ericmacharia6907-max/365/internal/auth"
	"github.com/ericmacharia6907-max/365/internal/buildinfo"
	"github.com/ericmacharia6907-max/365/internal/cli"
	"github.com/ericmacharia6907-max/365/internal/config"
	"github.com/ericmacharia6907-max/365/internal/cryptox"
	"github.com/ericmacharia6907-max/365/internal/journal"
	"github.com/ericmacharia6907-max/365/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(cfg.SlogLevel())

	store, err := cli.NewStore(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	engine := auth.NewEngine(auth.NewStore(store, logger), cryptox.NewPBKDF2Deriver(), logger)
	session := auth.NewSession(store)
	svc := journal.NewService(store, logger)

	app := cli.NewApp(cfg, engine, session, svc, logger)
	app.Run(ctx)
}

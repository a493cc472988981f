package main

import (
	"fmt"

	"github.com/mvolkhin/notelock/internal/adapter"
	"github.com/mvolkhin/notelock/internal/client"
	"github.com/mvolkhin/notelock/internal/config"
	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/internal/service"
	"github.com/mvolkhin/notelock/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("notelock-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	remote, err := adapter.NewHTTPRemoteStore(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote store")
	}

	local, err := store.NewLocalStore(cfg.Storage.LocalPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local store")
	}
	defer local.Close()

	services := service.NewClientServices(local, remote, log)

	app := client.NewApp(services, cfg.Workers, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

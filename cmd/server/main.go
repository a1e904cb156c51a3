package main

import (
	"context"
	"fmt"

	"github.com/mzholudev/go-referral-hub/internal/config"
	"github.com/mzholudev/go-referral-hub/internal/handler"
	"github.com/mzholudev/go-referral-hub/internal/logger"
	"github.com/mzholudev/go-referral-hub/internal/mailer"
	"github.com/mzholudev/go-referral-hub/internal/server"
	"github.com/mzholudev/go-referral-hub/internal/service"
	"github.com/mzholudev/go-referral-hub/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("referral-hub-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	// without SMTP credentials reset emails are logged instead of sent
	var mail mailer.Mailer
	if cfg.Mail.Host != "" {
		mail = mailer.NewSMTPMailer(cfg.Mail, log)
	} else {
		log.Warn().Msg("no SMTP host configured, using nop mailer")
		mail = mailer.NewNopMailer(log)
	}

	services := service.NewServices(storages, mail, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	if err := storages.Close(); err != nil {
		log.Err(err).Msg("error closing storages")
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

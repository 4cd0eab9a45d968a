package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"robotswatch/internal/checker"
	"robotswatch/internal/common"
	"robotswatch/internal/config"
	"robotswatch/internal/datastore"
	"robotswatch/internal/differ"
	"robotswatch/internal/fetcher"
	"robotswatch/internal/logger"
	"robotswatch/internal/notifier"
	"robotswatch/internal/reporter"
	"robotswatch/internal/runner"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not load global config using path '%s': %v", flags.GlobalConfigFile, err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not initialize logger: %v", err)
	}

	// Flags take precedence over the config file.
	if flags.Mode != "" {
		gCfg.Mode = flags.Mode
		zLogger.Info().Str("mode", gCfg.Mode).Msg("Mode overridden by command line flag.")
	}
	if flags.SitesFile != "" {
		gCfg.SitesFile = flags.SitesFile
		zLogger.Info().Str("file", gCfg.SitesFile).Msg("Sites file overridden by command line flag.")
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}
	zLogger.Info().Msg("Configuration validated successfully.")

	store := datastore.NewContentStore(&gCfg.StorageConfig, zLogger)
	if err := store.EnsureDataDir(); err != nil {
		zLogger.Fatal().Err(err).Msg("Could not create the data directory")
	}

	errs := common.NewErrorCollector()
	robotsFetcher := fetcher.NewFetcher(&gCfg.FetcherConfig, zLogger)
	contentDiffer := differ.NewContentDiffer(zLogger)
	sender := notifier.NewSMTPSender(&gCfg.NotificationConfig, zLogger)
	notif := notifier.NewNotifier(&gCfg.NotificationConfig, sender, store.DataDir(), zLogger)
	chk := checker.NewChecker(robotsFetcher, store, zLogger)
	rep := reporter.NewReporter(store, contentDiffer, notif, errs, zLogger)
	run := runner.NewRunner(chk, rep, notif, store, gCfg, errs, zLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch gCfg.Mode {
	case "automated":
		zLogger.Info().Msg("Running in automated mode...")
		if err := run.RunLoop(ctx); err != nil && !errors.Is(err, context.Canceled) {
			zLogger.Error().Err(err).Msg("Run loop terminated with error")
			os.Exit(1)
		}
	default:
		zLogger.Info().Msg("Running in onetime mode...")
		if err := run.Execute(ctx); err != nil {
			zLogger.Error().Err(err).Msg("Run terminated with error")
			os.Exit(1)
		}
	}

	zLogger.Info().Msg("Application finished.")
}

package main

import (
	"flag"
	"os"

	"github.com/Kanagaraj46/socialnet/pkg/api"
	"github.com/Kanagaraj46/socialnet/pkg/config"
	"github.com/Kanagaraj46/socialnet/pkg/logging"
	"github.com/Kanagaraj46/socialnet/pkg/metrics"
	"github.com/Kanagaraj46/socialnet/pkg/server"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	port := flag.Int("port", 0, "HTTP server port (overrides config and PORT)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.NewDefaultLogger().Error("failed to load configuration", logging.Error(err))
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.Log.Level))
	logger.Info("social network analysis server starting",
		logging.String("version", api.Version),
		logging.Int("port", cfg.Server.Port),
	)

	registry := metrics.DefaultRegistry()
	apiServer, err := api.NewServer(cfg, logger, registry)
	if err != nil {
		logger.Error("failed to initialize server", logging.Error(err))
		os.Exit(1)
	}

	gs := server.NewGracefulServer(cfg.Server, apiServer.Handler(), logger)
	gs.SetConfigReloadFunc(func() error {
		reloaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		logger.SetLevel(logging.ParseLevel(reloaded.Log.Level))
		return nil
	})

	if err := gs.Start(); err != nil {
		logger.Error("server failed", logging.Error(err))
		os.Exit(1)
	}
}

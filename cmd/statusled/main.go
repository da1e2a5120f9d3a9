package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/earthlume/statusled/internal/config"
	"github.com/earthlume/statusled/internal/display"
	"github.com/earthlume/statusled/internal/indicator"
	"github.com/earthlume/statusled/internal/logger"
	"github.com/earthlume/statusled/internal/pid"
	"github.com/earthlume/statusled/internal/probe"
	"github.com/earthlume/statusled/internal/sysmon"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
	if !cfg.Debug && !cfg.Verbose {
		if level, err := logger.ParseLevel(cfg.LogLevel); err == nil {
			logger.SetLogLevel(level)
		}
	}
	logger.Debug().Msg("Config loaded")

	if err := pid.Write(); err != nil {
		logger.Fatal().Err(err).Msg("failed to write pidfile")
	}

	device, err := openDevice(cfg)
	if err != nil {
		if removeErr := pid.Remove(); removeErr != nil {
			logger.Error().Err(removeErr).Msg("failed to remove pidfile")
		}
		logger.Fatal().Err(err).Msg("failed to open display")
	}

	ind := indicator.New(device, sysmon.New(), probe.NewExecProber(), cfg.Monitor)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	ind.Startup(ctx)

	if cfg.Monitor {
		logger.Info().Msg("Monitor mode activated. Logging status...")
	}

	if err := ind.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("error in render loop")
	}

	ind.Shutdown()
	if err := pid.Remove(); err != nil {
		logger.Error().Err(err).Msg("failed to remove pidfile")
	}
	logger.Info().Msg("Exiting...")
}

func openDevice(cfg *config.Config) (display.Device, error) {
	if cfg.Monitor {
		return display.NewNop(), nil
	}

	return display.NewBlinkt()
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

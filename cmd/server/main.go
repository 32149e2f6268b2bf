package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx := context.Background()
	cfg := setup.LoadConfig()

	// Components get a structured JSON logger; the console writer above is
	// only for this main's own messages.
	logger := logger.New(cfg.LogLevel)

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	defer deps.Redis.Close()

	if err := deps.Server.Start(cfg.GRPCAddr); err != nil {
		log.Fatal().Err(err).Msg("Failed to start gRPC server")
	}

	signals := make(chan os.Signal, 2)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-signals:
		logger.Info().Str("signal", sig.String()).Msg("Stop signal received")
	case err := <-deps.Server.ServeErr():
		if err != nil {
			log.Fatal().Err(err).Msg("gRPC server failed")
		}
		return
	}

	// A second Ctrl-C during the drain must not cut the grace period short.
	deps.Server.ShutdownAbsorbingSignals(signals, cfg.ShutdownGrace)

	log.Info().Msg("Chat Agent stopped")
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/account"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/api"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/conversation"
	redisconn "github.com/povarna/generative-ai-agents/chat-agent/internal/redis"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logger := log.Logger

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx := context.Background()

	// Account store
	store, err := account.NewStore(ctx, account.Config{
		Host:     getEnv("POSTGRES_HOST", "localhost"),
		Port:     getEnv("POSTGRES_PORT", "5432"),
		User:     getEnv("POSTGRES_USER", "postgres"),
		Password: getEnv("POSTGRES_PASSWORD", "postgres"),
		Database: getEnv("POSTGRES_DB", "chat_agent"),
		SSLMode:  getEnv("POSTGRES_SSL_MODE", "disable"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Postgres")
	}
	defer store.Close()

	if err := store.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("Postgres is not reachable")
	}

	// Recorded exchanges are mirrored into the same history the pipeline
	// reads, so the chat survives restarts.
	redisClient, err := redisconn.ConnectRedis(ctx, getEnv("REDIS_ADDR", "localhost:6379"), os.Getenv("REDIS_PASSWORD"), 5)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	recorder := conversation.NewRedisStore(redisClient, &logger)

	messageLimit, err := strconv.Atoi(os.Getenv("MESSAGE_LIMIT"))
	if err != nil || messageLimit <= 0 {
		messageLimit = 1000
	}

	accounts := account.NewService(store, recorder, messageLimit, &logger)

	// API
	handler := api.NewHandler(accounts, &logger)
	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	// Server
	port := getEnv("API_PORT", "18082")
	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("address", addr).Msg("Starting Chat Agent API")

	server := http.Server{
		Addr:    addr,
		Handler: corsHandler.Handler(container),
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

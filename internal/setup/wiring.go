package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/povarna/generative-ai-agents/chat-agent/internal/answer"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/classifier"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/config"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/conversation"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/guardrails"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/pipeline"
	redisconn "github.com/povarna/generative-ai-agents/chat-agent/internal/redis"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/search"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/server"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel        string
	GRPCAddr        string
	ShutdownGrace   time.Duration
	OracleTimeout   time.Duration
	AWSRegion       string
	ClaudeModelID   string
	OpenAIKey       string
	OpenAIModelID   string
	DefaultProvider string
	RedisAddr       string
	RedisPassword   string
	ConversationKey string
	SearchTimeout   time.Duration
	DegradeToDirect bool
}

type Dependencies struct {
	Server *server.Service
	Redis  *goredis.Client
	Logger *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		GRPCAddr:        getEnv("GRPC_ADDR", ":50051"),
		ShutdownGrace:   getEnvSeconds("SHUTDOWN_GRACE_SECONDS", 10),
		OracleTimeout:   getEnvSeconds("ORACLE_TIMEOUT_SECONDS", 0), // 0 = unbounded
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:   getEnv("CLAUDE_MODEL_ID", ""),
		OpenAIKey:       getEnv("OPEN_AI_KEY", ""),
		OpenAIModelID:   getEnv("OPEN_AI_MODEL_ID", ""),
		DefaultProvider: getEnv("DEFAULT_LLM_PROVIDER", "bedrock"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		ConversationKey: getEnv("CONVERSATION_KEY", "default"),
		SearchTimeout:   getEnvSeconds("SEARCH_TIMEOUT_SECONDS", 30),
		DegradeToDirect: getEnvBool("SEARCH_DEGRADE_TO_DIRECT", false),
	}
}

// Wire builds the dependency graph for the gRPC service: oracle clients,
// moderation gate, classifier, handlers, pipeline, history source.
// Everything is constructed here and passed down; no package-level state.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	llmClient, err := createLLMClient(ctx, cfg.DefaultProvider, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	moderationCfg, err := config.LoadModerationConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load moderation config: %w", err)
	}

	gate := guardrails.NewGate(llmClient, moderationCfg.BanWords, moderationCfg.FailOpen, logger)
	queryClassifier := classifier.NewClassifier(llmClient, logger)

	searchClient := search.NewClient(cfg.SearchTimeout)
	direct := answer.NewDirectHandler(llmClient, logger)
	webSearch := answer.NewWebSearchHandler(llmClient, searchClient, logger)

	pipe := pipeline.New(gate, queryClassifier, direct, webSearch, pipeline.Options{
		ModerateOutput:  moderationCfg.ModerateOutput,
		DegradeToDirect: cfg.DegradeToDirect,
	}, logger)

	redisClient, err := redisconn.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	history := conversation.NewRedisStore(redisClient, logger)

	svc := server.New(pipe, history, cfg.ConversationKey, cfg.OracleTimeout, logger)

	return &Dependencies{
		Server: svc,
		Redis:  redisClient,
		Logger: logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvSeconds(key string, defaultValue int) time.Duration {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return time.Duration(value) * time.Second
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}

func createLLMClient(ctx context.Context, provider string, cfg *Config) (llm.LLMClient, error) {
	switch provider {
	case "openai":
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID)
	default:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	}
}

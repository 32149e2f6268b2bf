package conversation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/povarna/generative-ai-agents/chat-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const historyKeyPrefix = "chat:history:"

// maxHistoryEntries bounds how much history a single prompt can drag in.
const maxHistoryEntries = 50

// RedisStore keeps each conversation as a Redis list of JSON-encoded
// messages, newest last.
type RedisStore struct {
	client *redis.Client
	logger *zerolog.Logger
}

func NewRedisStore(client *redis.Client, logger *zerolog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		logger: logger,
	}
}

func (s *RedisStore) History(ctx context.Context, conversationKey string) ([]models.Message, error) {
	key := historyKeyPrefix + conversationKey

	entries, err := s.client.LRange(ctx, key, int64(-maxHistoryEntries), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read conversation history: %w", err)
	}

	messages := make([]models.Message, 0, len(entries))
	for _, entry := range entries {
		var msg models.Message
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("skipping malformed history entry")
			continue
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

func (s *RedisStore) Append(ctx context.Context, conversationKey string, message models.Message) error {
	key := historyKeyPrefix + conversationKey

	entry, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %w", err)
	}

	if err := s.client.RPush(ctx, key, entry).Err(); err != nil {
		return fmt.Errorf("failed to append to conversation history: %w", err)
	}

	return nil
}

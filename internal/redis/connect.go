package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ConnectRedis dials the conversation history store, retrying with
// exponential backoff. The caller decides how many attempts a failed
// startup is worth.
func ConnectRedis(ctx context.Context, addr string, password string, maxRetries int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            addr,
		Password:        password,
		DB:              0,
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
	})

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = client.Ping(ctx).Err()
		if err == nil {
			log.Info().Str("addr", addr).Int("attempt", attempt).Msg("Redis connected")
			return client, nil
		}

		log.Warn().Err(err).Int("attempt", attempt).Int("max_retries", maxRetries).Msg("Redis ping failed")

		if attempt < maxRetries {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				client.Close()
				return nil, ctx.Err()
			}
		}
	}

	client.Close()
	return nil, fmt.Errorf("failed to connect to Redis after %d attempts: %w", maxRetries, err)
}

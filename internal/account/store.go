package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/models"
)

var (
	ErrUserExists   = errors.New("user already registered")
	ErrUserNotFound = errors.New("user not found")
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s", c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

// Store owns the users, message counter and message log tables.
type Store struct {
	Pool *pgxpool.Pool
}

func NewStore(ctx context.Context, config Config) (*Store, error) {
	pgPool, err := pgxpool.New(ctx, config.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Store{
		Pool: pgPool,
	}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

func (s *Store) Close() {
	s.Pool.Close()
}

func (s *Store) CreateUser(ctx context.Context, email string) error {
	query := `INSERT INTO users (email, created_at) VALUES ($1, $2)`

	_, err := s.Pool.Exec(ctx, query, email, time.Now())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return ErrUserExists
		}
		return fmt.Errorf("failed to create user %s: %w", email, err)
	}

	return nil
}

func (s *Store) UserExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := s.Pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to look up user %s: %w", email, err)
	}

	return exists, nil
}

func (s *Store) MessageCount(ctx context.Context, email string) (int, error) {
	query := `SELECT count FROM message_counters WHERE email = $1`

	var count int
	err := s.Pool.QueryRow(ctx, query, email).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read message counter for %s: %w", email, err)
	}

	return count, nil
}

func (s *Store) IncrementMessageCount(ctx context.Context, email string) error {
	query := `
	INSERT INTO message_counters (email, count) VALUES ($1, 1)
	ON CONFLICT (email) DO UPDATE SET count = message_counters.count + 1`

	if _, err := s.Pool.Exec(ctx, query, email); err != nil {
		return fmt.Errorf("failed to update message counter for %s: %w", email, err)
	}

	return nil
}

func (s *Store) SaveMessage(ctx context.Context, email string, message models.Message) error {
	query := `INSERT INTO messages (email, role, content, created_at) VALUES ($1, $2, $3, $4)`

	createdAt := message.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	if _, err := s.Pool.Exec(ctx, query, email, string(message.Role), message.Content, createdAt); err != nil {
		return fmt.Errorf("failed to save message for %s: %w", email, err)
	}

	return nil
}

func (s *Store) LoadMessages(ctx context.Context, email string) ([]models.Message, error) {
	query := `SELECT role, content, created_at FROM messages WHERE email = $1 ORDER BY created_at ASC`

	rows, err := s.Pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages for %s: %w", email, err)
	}

	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var msg models.Message
		var role string

		if err := rows.Scan(&role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		msg.Role = models.Role(role)

		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return messages, nil
}

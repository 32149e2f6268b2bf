package account

import (
	"context"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/chat-agent/internal/conversation"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/models"
	"github.com/rs/zerolog"
)

// Storage is what the service needs from the account store.
type Storage interface {
	CreateUser(ctx context.Context, email string) error
	UserExists(ctx context.Context, email string) (bool, error)
	MessageCount(ctx context.Context, email string) (int, error)
	IncrementMessageCount(ctx context.Context, email string) error
	SaveMessage(ctx context.Context, email string, message models.Message) error
	LoadMessages(ctx context.Context, email string) ([]models.Message, error)
}

// Service manages registration, the per-user message quota and the message
// log. This is the persistence collaborator around the Q&A core; the gRPC
// pipeline never touches it.
type Service struct {
	store        Storage
	recorder     conversation.Recorder
	messageLimit int
	logger       *zerolog.Logger
}

func NewService(store Storage, recorder conversation.Recorder, messageLimit int, logger *zerolog.Logger) *Service {
	return &Service{
		store:        store,
		recorder:     recorder,
		messageLimit: messageLimit,
		logger:       logger,
	}
}

func (s *Service) Register(ctx context.Context, email string) error {
	if err := s.store.CreateUser(ctx, email); err != nil {
		return err
	}

	s.logger.Info().Str("email", email).Msg("user registered")
	return nil
}

func (s *Service) Login(ctx context.Context, email string) error {
	exists, err := s.store.UserExists(ctx, email)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	return nil
}

// RemainingQuota returns how many messages the user may still send.
func (s *Service) RemainingQuota(ctx context.Context, email string) (int, error) {
	sent, err := s.store.MessageCount(ctx, email)
	if err != nil {
		return 0, err
	}

	remaining := s.messageLimit - sent
	if remaining < 0 {
		remaining = 0
	}

	return remaining, nil
}

// RecordExchange persists one question/answer pair, bumps the quota counter
// and mirrors both messages into the conversation history the pipeline
// reads.
func (s *Service) RecordExchange(ctx context.Context, email string, question string, answer string) error {
	now := time.Now()
	userMsg := models.Message{Role: models.RoleUser, Content: question, CreatedAt: now}
	assistantMsg := models.Message{Role: models.RoleAssistant, Content: answer, CreatedAt: now}

	if err := s.store.SaveMessage(ctx, email, userMsg); err != nil {
		return fmt.Errorf("failed to save user message: %w", err)
	}
	if err := s.store.SaveMessage(ctx, email, assistantMsg); err != nil {
		return fmt.Errorf("failed to save assistant message: %w", err)
	}

	if err := s.store.IncrementMessageCount(ctx, email); err != nil {
		return err
	}

	if s.recorder != nil {
		if err := s.recorder.Append(ctx, email, userMsg); err != nil {
			s.logger.Warn().Err(err).Str("email", email).Msg("failed to mirror user message into history")
		}
		if err := s.recorder.Append(ctx, email, assistantMsg); err != nil {
			s.logger.Warn().Err(err).Str("email", email).Msg("failed to mirror assistant message into history")
		}
	}

	return nil
}

func (s *Service) Messages(ctx context.Context, email string) ([]models.Message, error) {
	return s.store.LoadMessages(ctx, email)
}

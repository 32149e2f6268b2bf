package account

import (
	"context"
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/chat-agent/internal/models"
	"github.com/rs/zerolog"
)

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

type fakeStorage struct {
	users     map[string]bool
	counts    map[string]int
	saved     []models.Message
	createErr error
	countErr  error
	saveErr   error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		users:  make(map[string]bool),
		counts: make(map[string]int),
	}
}

func (f *fakeStorage) CreateUser(ctx context.Context, email string) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.users[email] {
		return ErrUserExists
	}
	f.users[email] = true
	return nil
}

func (f *fakeStorage) UserExists(ctx context.Context, email string) (bool, error) {
	return f.users[email], nil
}

func (f *fakeStorage) MessageCount(ctx context.Context, email string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.counts[email], nil
}

func (f *fakeStorage) IncrementMessageCount(ctx context.Context, email string) error {
	f.counts[email]++
	return nil
}

func (f *fakeStorage) SaveMessage(ctx context.Context, email string, message models.Message) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, message)
	return nil
}

func (f *fakeStorage) LoadMessages(ctx context.Context, email string) ([]models.Message, error) {
	return f.saved, nil
}

type fakeRecorder struct {
	appended []models.Message
	err      error
}

func (f *fakeRecorder) Append(ctx context.Context, conversationKey string, message models.Message) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, message)
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	storage := newFakeStorage()
	service := NewService(storage, nil, 1000, testLogger())
	ctx := context.Background()

	if err := service.Register(ctx, "ana@example.com"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if err := service.Register(ctx, "ana@example.com"); !errors.Is(err, ErrUserExists) {
		t.Errorf("Expected ErrUserExists on duplicate registration, got %v", err)
	}

	if err := service.Login(ctx, "ana@example.com"); err != nil {
		t.Errorf("Login returned error: %v", err)
	}
	if err := service.Login(ctx, "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestRemainingQuota(t *testing.T) {
	tests := []struct {
		name   string
		limit  int
		sent   int
		expect int
	}{
		{"nothing sent", 1000, 0, 1000},
		{"some sent", 1000, 40, 960},
		{"limit reached", 1000, 1000, 0},
		{"over limit clamps to zero", 10, 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := newFakeStorage()
			storage.counts["ana@example.com"] = tt.sent

			service := NewService(storage, nil, tt.limit, testLogger())

			remaining, err := service.RemainingQuota(context.Background(), "ana@example.com")
			if err != nil {
				t.Fatalf("RemainingQuota returned error: %v", err)
			}
			if remaining != tt.expect {
				t.Errorf("RemainingQuota = %d, expected %d", remaining, tt.expect)
			}
		})
	}
}

func TestRecordExchange(t *testing.T) {
	storage := newFakeStorage()
	recorder := &fakeRecorder{}
	service := NewService(storage, recorder, 1000, testLogger())

	err := service.RecordExchange(context.Background(), "ana@example.com", "como vai?", "tudo bem!")
	if err != nil {
		t.Fatalf("RecordExchange returned error: %v", err)
	}

	if len(storage.saved) != 2 {
		t.Fatalf("Expected 2 saved messages, got %d", len(storage.saved))
	}
	if storage.saved[0].Role != models.RoleUser || storage.saved[0].Content != "como vai?" {
		t.Errorf("Unexpected user message %+v", storage.saved[0])
	}
	if storage.saved[1].Role != models.RoleAssistant || storage.saved[1].Content != "tudo bem!" {
		t.Errorf("Unexpected assistant message %+v", storage.saved[1])
	}

	if got := storage.counts["ana@example.com"]; got != 1 {
		t.Errorf("Expected message counter 1, got %d", got)
	}

	// Both messages are mirrored into the pipeline's history source.
	if len(recorder.appended) != 2 {
		t.Errorf("Expected 2 mirrored messages, got %d", len(recorder.appended))
	}
}

func TestRecordExchange_MirrorFailureIsNotFatal(t *testing.T) {
	storage := newFakeStorage()
	recorder := &fakeRecorder{err: errors.New("redis down")}
	service := NewService(storage, recorder, 1000, testLogger())

	err := service.RecordExchange(context.Background(), "ana@example.com", "como vai?", "tudo bem!")
	if err != nil {
		t.Fatalf("RecordExchange failed on a mirror error: %v", err)
	}

	if got := storage.counts["ana@example.com"]; got != 1 {
		t.Errorf("Expected message counter 1, got %d", got)
	}
}

func TestRecordExchange_SaveFailure(t *testing.T) {
	storage := newFakeStorage()
	storage.saveErr = errors.New("connection refused")
	service := NewService(storage, &fakeRecorder{}, 1000, testLogger())

	err := service.RecordExchange(context.Background(), "ana@example.com", "como vai?", "tudo bem!")
	if err == nil {
		t.Fatal("Expected error when the store rejects the message")
	}
	if got := storage.counts["ana@example.com"]; got != 0 {
		t.Errorf("Counter was incremented despite a failed save: %d", got)
	}
}

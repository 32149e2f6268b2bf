package server

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/chat-agent/internal/genaipb"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/models"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/pipeline"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type allowGate struct{}

func (allowGate) Check(ctx context.Context, role models.Role, content string) (models.ModerationVerdict, error) {
	return models.ModerationVerdict{Allowed: true, Role: role}, nil
}

type simpleClassifier struct{}

func (simpleClassifier) Classify(ctx context.Context, query string, history []models.Message) (models.Category, error) {
	return models.CategorySimple, nil
}

// slowEchoHandler echoes the question back, after an optional delay so tests
// can hold a call in flight.
type slowEchoHandler struct {
	delay time.Duration
}

func (h slowEchoHandler) Answer(ctx context.Context, query string, history []models.Message) (string, error) {
	if h.delay > 0 {
		select {
		case <-time.After(h.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return "echo: " + query, nil
}

type noHistory struct{}

func (noHistory) History(ctx context.Context, conversationKey string) ([]models.Message, error) {
	return nil, nil
}

func newTestService(t *testing.T, delay, oracleTimeout time.Duration) (*Service, genaipb.GenAiServiceClient) {
	t.Helper()

	logger := zerolog.Nop()
	pipe := pipeline.New(allowGate{}, simpleClassifier{}, slowEchoHandler{delay: delay}, slowEchoHandler{}, pipeline.Options{}, &logger)

	svc := New(pipe, noHistory{}, "test", oracleTimeout, &logger)
	if err := svc.Start("127.0.0.1:0"); err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	t.Cleanup(func() { svc.Shutdown(time.Second) })

	conn, err := grpc.NewClient(svc.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return svc, genaipb.NewGenAiServiceClient(conn)
}

func TestAskQuestion(t *testing.T) {
	_, client := newTestService(t, 0, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := client.AskQuestion(ctx, &genaipb.QuestionRequest{Question: "como vai?"})
	if err != nil {
		t.Fatalf("AskQuestion returned error: %v", err)
	}
	if resp.GetAnswer() != "echo: como vai?" {
		t.Errorf("Unexpected answer %q", resp.GetAnswer())
	}
}

func TestAskQuestion_EmptyQuestion(t *testing.T) {
	_, client := newTestService(t, 0, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tests := []string{"", "   ", "\n\t"}
	for _, question := range tests {
		_, err := client.AskQuestion(ctx, &genaipb.QuestionRequest{Question: question})
		if status.Code(err) != codes.InvalidArgument {
			t.Errorf("AskQuestion(%q) = %v, expected InvalidArgument", question, err)
		}
	}
}

func TestAskQuestion_OracleTimeoutReturnsTextualAnswer(t *testing.T) {
	// Generation overruns the configured oracle timeout. The deadline is
	// server-imposed, so the caller still gets the pipeline's fixed
	// processing-error text, not a transport fault.
	_, client := newTestService(t, 500*time.Millisecond, 100*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := client.AskQuestion(ctx, &genaipb.QuestionRequest{Question: "pergunta demorada"})
	if err != nil {
		t.Fatalf("AskQuestion returned a transport error for a server-side timeout: %v", err)
	}
	if resp.GetAnswer() != pipeline.ProcessingErrorMessage {
		t.Errorf("Expected the fixed processing-error message, got %q", resp.GetAnswer())
	}
}

func TestAskQuestion_ClientCancellation(t *testing.T) {
	_, client := newTestService(t, 500*time.Millisecond, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := client.AskQuestion(ctx, &genaipb.QuestionRequest{Question: "pergunta demorada"})
	if status.Code(err) != codes.DeadlineExceeded {
		t.Errorf("Expected DeadlineExceeded for a caller-side deadline, got %v", err)
	}
}

func TestShutdown_DrainsInFlightCalls(t *testing.T) {
	svc, client := newTestService(t, 300*time.Millisecond, 0)

	type outcome struct {
		answer string
		err    error
	}
	results := make(chan outcome, 1)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		resp, err := client.AskQuestion(ctx, &genaipb.QuestionRequest{Question: "pergunta lenta"})
		results <- outcome{answer: resp.GetAnswer(), err: err}
	}()

	// Let the call reach the handler before initiating shutdown.
	time.Sleep(100 * time.Millisecond)

	svc.Shutdown(2 * time.Second)

	got := <-results
	if got.err != nil {
		t.Fatalf("In-flight call failed during graceful shutdown: %v", got.err)
	}
	if got.answer != "echo: pergunta lenta" {
		t.Errorf("Unexpected answer %q", got.answer)
	}

	// The drained server must refuse new work.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := client.AskQuestion(ctx, &genaipb.QuestionRequest{Question: "tarde demais"}); err == nil {
		t.Error("Expected calls after shutdown to fail")
	}
}

func TestShutdown_ForcesStopAfterGrace(t *testing.T) {
	svc, client := newTestService(t, 2*time.Second, 0)

	done := make(chan struct{})
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client.AskQuestion(ctx, &genaipb.QuestionRequest{Question: "pergunta muito lenta"})
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)

	start := time.Now()
	svc.Shutdown(200 * time.Millisecond)
	elapsed := time.Since(start)

	if elapsed >= 2*time.Second {
		t.Errorf("Shutdown waited %v, expected the grace period to cut the drain short", elapsed)
	}

	<-done
}

func TestShutdownAbsorbingSignals_SecondSignalDoesNotAbortDrain(t *testing.T) {
	svc, client := newTestService(t, 300*time.Millisecond, 0)

	type outcome struct {
		answer string
		err    error
	}
	results := make(chan outcome, 1)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		resp, err := client.AskQuestion(ctx, &genaipb.QuestionRequest{Question: "pergunta lenta"})
		results <- outcome{answer: resp.GetAnswer(), err: err}
	}()

	time.Sleep(100 * time.Millisecond)

	signals := make(chan os.Signal, 1)
	drained := make(chan struct{})
	go func() {
		svc.ShutdownAbsorbingSignals(signals, 2*time.Second)
		close(drained)
	}()

	// A second stop signal lands mid-drain; it must be absorbed.
	signals <- syscall.SIGTERM

	got := <-results
	if got.err != nil {
		t.Fatalf("In-flight call failed after a second stop signal: %v", got.err)
	}
	if got.answer != "echo: pergunta lenta" {
		t.Errorf("Unexpected answer %q", got.answer)
	}

	select {
	case <-drained:
	case <-time.After(3 * time.Second):
		t.Fatal("Drain did not complete after a second stop signal")
	}
}

func TestStart_BindFailure(t *testing.T) {
	svc, _ := newTestService(t, 0, 0)

	logger := zerolog.Nop()
	pipe := pipeline.New(allowGate{}, simpleClassifier{}, slowEchoHandler{}, slowEchoHandler{}, pipeline.Options{}, &logger)
	other := New(pipe, noHistory{}, "test", 0, &logger)

	if err := other.Start(svc.Addr().String()); err == nil {
		other.Shutdown(time.Second)
		t.Fatal("Expected bind failure on an occupied address")
	}
}

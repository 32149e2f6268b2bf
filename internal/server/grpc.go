package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/chat-agent/internal/conversation"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/genaipb"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/pipeline"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service exposes the conversation pipeline over gRPC and owns the process
// lifecycle: bind, serve concurrent calls, drain on shutdown. grpc-go runs
// one goroutine per call; pipeline runs share no mutable state, so no
// locking happens at this level.
type Service struct {
	genaipb.UnimplementedGenAiServiceServer

	pipeline        *pipeline.Pipeline
	history         conversation.Store
	conversationKey string
	oracleTimeout   time.Duration
	logger          *zerolog.Logger

	grpcServer *grpc.Server
	listener   net.Listener
	serveErr   chan error
}

func New(
	pipe *pipeline.Pipeline,
	history conversation.Store,
	conversationKey string,
	oracleTimeout time.Duration,
	logger *zerolog.Logger,
) *Service {
	return &Service{
		pipeline:        pipe,
		history:         history,
		conversationKey: conversationKey,
		oracleTimeout:   oracleTimeout,
		logger:          logger,
	}
}

// AskQuestion runs one pipeline pass for one question. Oracle failures are
// already converted to textual answers inside the pipeline; the only
// transport-level errors produced here are invalid input and cancellation.
func (s *Service) AskQuestion(ctx context.Context, req *genaipb.QuestionRequest) (*genaipb.AnswerResponse, error) {
	question := strings.TrimSpace(req.GetQuestion())
	if question == "" {
		return nil, status.Error(codes.InvalidArgument, "question is required")
	}

	// The oracle timeout is server-imposed: when it fires, the pipeline has
	// already absorbed the failure into a textual answer, and that answer is
	// returned. Only the caller's own context deciding the call is over
	// (disconnect, shutdown) becomes a transport error.
	parent := ctx
	if s.oracleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.oracleTimeout)
		defer cancel()
	}

	history, err := s.history.History(ctx, s.conversationKey)
	if err != nil {
		// The history source is an external collaborator; a failed read
		// degrades to an empty history instead of failing the call.
		s.logger.Warn().Err(err).Msg("failed to load conversation history")
		history = nil
	}

	result := s.pipeline.Run(ctx, question, history)

	if parent.Err() != nil {
		return nil, status.FromContextError(parent.Err()).Err()
	}

	s.logger.Info().
		Str("stage", string(result.Stage)).
		Str("category", string(result.Category)).
		Str("handler", string(result.Handler)).
		Msg("question answered")

	return &genaipb.AnswerResponse{Answer: result.Answer}, nil
}

// Start binds the listening endpoint and begins serving in the background.
// A bind failure is returned to the caller and is fatal; it is never
// retried here.
func (s *Service) Start(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", addr, err)
	}

	s.listener = lis
	s.grpcServer = grpc.NewServer()
	genaipb.RegisterGenAiServiceServer(s.grpcServer, s)

	s.serveErr = make(chan error, 1)
	go func() {
		s.serveErr <- s.grpcServer.Serve(lis)
	}()

	s.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server started")
	return nil
}

// Addr reports the bound address, useful when starting on :0.
func (s *Service) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// ServeErr reports the terminal error of the serve loop.
func (s *Service) ServeErr() <-chan error {
	return s.serveErr
}

// ShutdownAbsorbingSignals runs Shutdown while logging and discarding any
// further stop signals delivered during the drain. The channel is consumed,
// never closed, so a second signal can neither abort the grace wait nor
// kill the process through the default handler.
func (s *Service) ShutdownAbsorbingSignals(signals <-chan os.Signal, grace time.Duration) {
	done := make(chan struct{})
	go func() {
		s.Shutdown(grace)
		close(done)
	}()

	for {
		select {
		case sig := <-signals:
			s.logger.Warn().Str("signal", sig.String()).Msg("shutdown already in progress, ignoring signal")
		case <-done:
			return
		}
	}
}

// Shutdown stops accepting new calls and waits for in-flight calls up to
// the grace period, then force-closes. The wait is a plain timer select,
// deliberately not tied to any context: a second cancellation signal must
// not abort the drain.
func (s *Service) Shutdown(grace time.Duration) {
	if s.grpcServer == nil {
		return
	}

	s.logger.Info().Dur("grace", grace).Msg("shutting down, draining in-flight calls")

	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case <-done:
		s.logger.Info().Msg("all in-flight calls drained")
	case <-timer.C:
		s.logger.Warn().Msg("grace period expired, forcing stop")
		s.grpcServer.Stop()
		<-done
	}
}

package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/povarna/generative-ai-agents/chat-agent/internal/answer"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/models"
	"github.com/rs/zerolog"
)

// Fixed user-facing texts, carried over from the original deployment. These
// are the only answers a caller sees for blocked or failed requests;
// internals are logged, never leaked.
const (
	BlockedMessage         = "Desculpe, sua pergunta contém conteúdo bloqueado."
	BlockedAnswerMessage   = "Desculpe, não posso exibir a resposta gerada."
	ProcessingErrorMessage = "Desculpe, ocorreu um erro ao processar sua pergunta."
)

// Stage names the pipeline's position for logging and tests. Transitions
// are strictly sequential; the only branches are the moderation verdicts
// and the router's handler selection.
type Stage string

const (
	StageReceived         Stage = "received"
	StageModeratingInput  Stage = "moderating_input"
	StageClassifying      Stage = "classifying"
	StageRouting          Stage = "routing"
	StageGenerating       Stage = "generating"
	StageModeratingOutput Stage = "moderating_output"
	StageCompleted        Stage = "completed"
	StageBlocked          Stage = "blocked"
	StageFailed           Stage = "failed"
)

// ModerationGate wraps the moderation oracle.
type ModerationGate interface {
	Check(ctx context.Context, role models.Role, content string) (models.ModerationVerdict, error)
}

// QueryClassifier wraps the classification oracle.
type QueryClassifier interface {
	Classify(ctx context.Context, query string, history []models.Message) (models.Category, error)
}

type Options struct {
	// ModerateOutput runs the gate on the generated answer as well. A block
	// replaces the answer with BlockedAnswerMessage.
	ModerateOutput bool
	// DegradeToDirect falls back to the direct handler when the search
	// oracle fails, instead of returning the processing-error text.
	DegradeToDirect bool
}

// Result is what the caller gets back. Answer is always a well-formed,
// user-presentable text; Stage tells which terminal state the run reached.
type Result struct {
	Answer   string
	Stage    Stage
	Category models.Category
	Handler  answer.HandlerKind
}

// Pipeline owns the per-request control flow: moderate input, classify,
// route, generate, optionally moderate output. One Run per request; runs
// share no mutable state.
type Pipeline struct {
	gate       ModerationGate
	classifier QueryClassifier
	direct     answer.Handler
	webSearch  answer.Handler
	opts       Options
	logger     *zerolog.Logger
}

func New(
	gate ModerationGate,
	classifier QueryClassifier,
	direct answer.Handler,
	webSearch answer.Handler,
	opts Options,
	logger *zerolog.Logger,
) *Pipeline {
	return &Pipeline{
		gate:       gate,
		classifier: classifier,
		direct:     direct,
		webSearch:  webSearch,
		opts:       opts,
		logger:     logger,
	}
}

// Run processes one question. Oracle failures never escape as errors; they
// are logged and converted to the fixed processing-error answer.
func (p *Pipeline) Run(ctx context.Context, query string, history []models.Message) Result {
	state := &models.ConversationState{
		Query:   query,
		History: history,
	}
	p.enter(StageReceived)

	p.enter(StageModeratingInput)
	verdict, err := p.gate.Check(ctx, models.RoleUser, state.Query)
	if err != nil {
		return p.fail(fmt.Errorf("%w: %v", ErrModerationFailure, err))
	}
	if !verdict.Allowed {
		p.logger.Info().Str("reason", verdict.Reason).Msg("question blocked by moderation")
		return Result{Answer: BlockedMessage, Stage: StageBlocked}
	}

	p.enter(StageClassifying)
	category, err := p.classifier.Classify(ctx, state.Query, state.History)
	if err != nil {
		return p.fail(fmt.Errorf("%w: %v", ErrClassificationFailure, err))
	}
	state.Category = category

	p.enter(StageRouting)
	kind := answer.Route(state.Category)
	handler := p.direct
	if kind == answer.HandlerWebSearch {
		handler = p.webSearch
	}

	p.logger.Info().
		Str("category", string(state.Category)).
		Str("handler", string(kind)).
		Msg("question routed")

	p.enter(StageGenerating)
	text, err := handler.Answer(ctx, state.Query, state.History)
	if err != nil && errors.Is(err, answer.ErrSearchFailed) && p.opts.DegradeToDirect {
		p.logger.Warn().Err(err).Msg("search failed, degrading to direct generation")
		kind = answer.HandlerDirect
		text, err = p.direct.Answer(ctx, state.Query, state.History)
	}
	if err != nil {
		return p.fail(fmt.Errorf("%w: %v", ErrGenerationFailure, err))
	}
	state.Answer = text

	if p.opts.ModerateOutput {
		p.enter(StageModeratingOutput)
		verdict, err := p.gate.Check(ctx, models.RoleAssistant, state.Answer)
		if err != nil {
			return p.fail(fmt.Errorf("%w: %v", ErrModerationFailure, err))
		}
		if !verdict.Allowed {
			p.logger.Warn().Str("reason", verdict.Reason).Msg("generated answer blocked by moderation")
			return Result{Answer: BlockedAnswerMessage, Stage: StageBlocked, Category: state.Category, Handler: kind}
		}
	}

	return Result{
		Answer:   state.Answer,
		Stage:    StageCompleted,
		Category: state.Category,
		Handler:  kind,
	}
}

func (p *Pipeline) enter(stage Stage) {
	p.logger.Debug().Str("stage", string(stage)).Msg("pipeline stage entered")
}

func (p *Pipeline) fail(err error) Result {
	p.logger.Error().Err(err).Msg("pipeline run failed")
	return Result{Answer: ProcessingErrorMessage, Stage: StageFailed}
}

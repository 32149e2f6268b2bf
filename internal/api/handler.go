package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/account"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/models"
	"github.com/rs/zerolog"
)

// AccountService is what the handlers need from the account layer.
type AccountService interface {
	Register(ctx context.Context, email string) error
	Login(ctx context.Context, email string) error
	RemainingQuota(ctx context.Context, email string) (int, error)
	Messages(ctx context.Context, email string) ([]models.Message, error)
}

type Handler struct {
	accounts AccountService
	logger   *zerolog.Logger
}

func NewHandler(accounts AccountService, logger *zerolog.Logger) *Handler {
	return &Handler{
		accounts: accounts,
		logger:   logger,
	}
}

type RegisterRequest struct {
	Email string `json:"email"`
}

type QuotaResponse struct {
	Email     string `json:"email"`
	Remaining int    `json:"remaining"`
}

type MessagesResponse struct {
	Email    string           `json:"email"`
	Messages []models.Message `json:"messages"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// POST /api/v1/users
func (h *Handler) Register(req *restful.Request, resp *restful.Response) {
	var registerRequest RegisterRequest
	if err := req.ReadEntity(&registerRequest); err != nil {
		h.logger.Error().Err(err).Msg("failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(registerRequest.Email)
	if email == "" {
		middleware.HandleError(resp, errors.New("email is required"), http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	if err := h.accounts.Register(ctx, email); err != nil {
		if errors.Is(err, account.ErrUserExists) {
			middleware.HandleError(resp, err, http.StatusConflict)
			return
		}
		h.logger.Error().Err(err).Str("email", email).Msg("registration failed")
		middleware.HandleError(resp, errors.New("registration failed"), http.StatusInternalServerError)
		return
	}

	resp.WriteHeader(http.StatusCreated)
}

// POST /api/v1/login
func (h *Handler) Login(req *restful.Request, resp *restful.Response) {
	var loginRequest RegisterRequest
	if err := req.ReadEntity(&loginRequest); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(loginRequest.Email)
	if email == "" {
		middleware.HandleError(resp, errors.New("email is required"), http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	if err := h.accounts.Login(ctx, email); err != nil {
		if errors.Is(err, account.ErrUserNotFound) {
			middleware.HandleError(resp, err, http.StatusUnauthorized)
			return
		}
		h.logger.Error().Err(err).Str("email", email).Msg("login failed")
		middleware.HandleError(resp, errors.New("login failed"), http.StatusInternalServerError)
		return
	}

	resp.WriteHeader(http.StatusOK)
}

// GET /api/v1/users/{email}/quota
func (h *Handler) Quota(req *restful.Request, resp *restful.Response) {
	email := req.PathParameter("email")

	ctx := req.Request.Context()
	remaining, err := h.accounts.RemainingQuota(ctx, email)
	if err != nil {
		h.logger.Error().Err(err).Str("email", email).Msg("failed to read quota")
		middleware.HandleError(resp, errors.New("failed to read quota"), http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, QuotaResponse{
		Email:     email,
		Remaining: remaining,
	})
}

// GET /api/v1/users/{email}/messages
func (h *Handler) Messages(req *restful.Request, resp *restful.Response) {
	email := req.PathParameter("email")

	ctx := req.Request.Context()
	messages, err := h.accounts.Messages(ctx, email)
	if err != nil {
		h.logger.Error().Err(err).Str("email", email).Msg("failed to load messages")
		middleware.HandleError(resp, errors.New("failed to load messages"), http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, MessagesResponse{
		Email:    email,
		Messages: messages,
	})
}

// GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}

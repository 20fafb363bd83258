package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ametova/valentine-api/internal/auth/resolver"
	authservice "github.com/ametova/valentine-api/internal/auth/service"
	"github.com/ametova/valentine-api/internal/auth/session"
	commonerrors "github.com/ametova/valentine-api/internal/common/errors"
	commonhttp "github.com/ametova/valentine-api/internal/common/http"
	"github.com/ametova/valentine-api/internal/common/logger"
	"github.com/ametova/valentine-api/internal/observability/metrics"
	responseservice "github.com/ametova/valentine-api/internal/response/service"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createResponseRequest struct {
	Message string `json:"message"`
}

type loginResponse struct {
	OK    bool   `json:"ok"`
	User  string `json:"user"`
	Token string `json:"token"`
}

type meResponse struct {
	OK   bool   `json:"ok"`
	User string `json:"user"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type createdResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

type Handler struct {
	auth      *authservice.AuthService
	sessions  *session.Manager
	resolvers []resolver.CredentialResolver
	responses *responseservice.Service
	validate  *validator.Validate
	errors    *commonhttp.ErrorHandler
	log       *logger.Logger
	timeout   time.Duration
}

func NewHandler(
	auth *authservice.AuthService,
	sessions *session.Manager,
	resolvers []resolver.CredentialResolver,
	responses *responseservice.Service,
	timeout time.Duration,
	log *logger.Logger,
) http.Handler {
	h := &Handler{
		auth:      auth,
		sessions:  sessions,
		resolvers: resolvers,
		responses: responses,
		validate:  validator.New(),
		errors:    commonhttp.NewErrorHandler(log),
		log:       log,
		timeout:   timeout,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.HandleFunc("/auth/login", h.login)
	mux.HandleFunc("/auth/logout", h.logout)
	mux.HandleFunc("/auth/me", h.me)
	mux.HandleFunc("/responses", h.createResponse)
	return mux
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "method not allowed", nil)
		return
	}

	var req loginRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("login failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", nil)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeBadRequest, "username and password are required", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	if err := h.sessions.Issue(w, result.User); err != nil {
		h.errors.HandleError(w, r, commonerrors.ErrInternalError.WithCause(err))
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, loginResponse{OK: true, User: result.User, Token: result.Token})
}

// logout clears the cookie session only; previously issued bearer tokens
// remain valid. Idempotent.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "method not allowed", nil)
		return
	}

	h.sessions.Clear(w)
	metrics.SessionsCleared.Inc()
	commonhttp.WriteJSON(w, http.StatusOK, okResponse{OK: true})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "method not allowed", nil)
		return
	}

	user, ok := resolver.ResolvePrincipal(r, h.resolvers)
	if !ok {
		h.errors.HandleError(w, r, commonerrors.ErrNotAuthenticated)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, meResponse{OK: true, User: user})
}

func (h *Handler) createResponse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "method not allowed", nil)
		return
	}

	user, ok := resolver.ResolvePrincipal(r, h.resolvers)
	if !ok {
		h.errors.HandleError(w, r, commonerrors.ErrNotAuthenticated)
		return
	}

	var req createResponseRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("create response failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, err := h.responses.Create(ctx, req.Message, user)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, createdResponse{OK: true, ID: id})
}

package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"idverify/pkg/platform/httputil"
	"idverify/pkg/requestcontext"

	"idverify/internal/auth"
)

// Service defines the interface for token issuance.
type Service interface {
	Authenticate(ctx context.Context, clientID, secret string) (auth.Token, error)
}

// Handler exposes the token endpoint.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an auth handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts auth endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/token", h.HandleToken)
}

// TokenResponse is the HTTP response for POST /auth/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// HandleToken handles POST /auth/token requests.
func (h *Handler) HandleToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[TokenRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	issued, err := h.service.Authenticate(ctx, req.ClientID, req.ClientSecret)
	if err != nil {
		h.logger.InfoContext(ctx, "token request rejected",
			"request_id", requestID,
			"client_id", req.ClientID,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "token issued",
		"request_id", requestID,
		"client_id", req.ClientID,
	)

	httputil.WriteJSON(w, http.StatusOK, &TokenResponse{
		AccessToken: issued.AccessToken,
		TokenType:   issued.TokenType,
		ExpiresIn:   int64(time.Until(issued.ExpiresAt).Seconds()),
	})
}

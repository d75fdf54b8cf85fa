package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	dErrors "idverify/pkg/domain-errors"
	"idverify/pkg/platform/httputil"
	"idverify/pkg/requestcontext"

	"idverify/internal/registry"
)

// Service defines the interface for registration operations.
type Service interface {
	VerifyAndSubmit(ctx context.Context, in registry.SubmitInput) (*registry.SubmitResult, error)
	Status(ctx context.Context, preRegID string) (registry.ApplicationStatus, error)
}

// Handler wires registration endpoints to the registration service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a registration handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts registration endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/registration/submit", h.HandleSubmit)
	r.Get("/registration/status/{id}", h.HandleStatus)
}

// HandleSubmit handles POST /registration/submit requests.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[SubmitRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res, err := h.service.VerifyAndSubmit(ctx, registry.SubmitInput{
		Extracted: req.Extracted,
		Stated:    req.Stated,
		Threshold: req.Threshold,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "registration submission failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "registration submission processed",
		"request_id", requestID,
		"run_id", res.Run.ID,
		"submitted", res.Submitted,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	status := http.StatusOK
	if res.Submitted {
		status = http.StatusCreated
	}
	httputil.WriteJSON(w, status, FromSubmitResult(res))
}

// HandleStatus handles GET /registration/status/{id} requests.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	preRegID := strings.TrimSpace(chi.URLParam(r, "id"))
	if preRegID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "pre-registration id is required"))
		return
	}

	status, err := h.service.Status(ctx, preRegID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &StatusResponse{
		PreRegistrationID: preRegID,
		Status:            string(status),
	})
}

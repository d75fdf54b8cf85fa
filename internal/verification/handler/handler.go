package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	dErrors "idverify/pkg/domain-errors"
	"idverify/pkg/platform/httputil"
	"idverify/pkg/requestcontext"

	"idverify/internal/verification"
)

// Service defines the interface for verification operations.
type Service interface {
	Verify(ctx context.Context, in verification.VerifyInput) (*verification.Run, error)
	GetRun(ctx context.Context, id uuid.UUID) (*verification.Run, error)
	ListRuns(ctx context.Context, limit int) ([]verification.Run, error)
}

// Handler wires verification endpoints to the verification service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a verification handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts verification endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/verification/verify", h.HandleVerify)
	r.Get("/verification/example", h.HandleExample)
	r.Get("/verification/runs", h.HandleListRuns)
	r.Get("/verification/runs/{id}", h.HandleGetRun)
}

// HandleVerify handles POST /verification/verify requests.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[VerifyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	run, err := h.service.Verify(ctx, verification.VerifyInput{
		Extracted: req.Extracted,
		Stated:    req.Stated,
		Weights:   req.Weights,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "verification failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "verification completed",
		"request_id", requestID,
		"run_id", run.ID,
		"decision", run.Result.Decision,
		"overall_score", run.Result.OverallScore,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromRun(run))
}

// HandleGetRun handles GET /verification/runs/{id} requests.
func (h *Handler) HandleGetRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "invalid run id"))
		return
	}

	run, err := h.service.GetRun(ctx, id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRun(run))
}

// HandleListRuns handles GET /verification/runs requests.
func (h *Handler) HandleListRuns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	runs, err := h.service.ListRuns(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "listing verification runs failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRuns(runs))
}

// HandleExample handles GET /verification/example requests. It returns a
// ready-to-submit request body for API exploration.
func (h *Handler) HandleExample(w http.ResponseWriter, _ *http.Request) {
	example := VerifyRequest{
		Extracted: map[string]string{
			"name":    "Ramesh Kumar",
			"dob":     "19-04-2001",
			"phone":   "+91 9876543210",
			"address": "Flat No. B-12/3, Gandhi St. (Near MG Road)",
			"gender":  "Male",
		},
		Stated: map[string]string{
			"full_name":     "Ramesh Kumar",
			"date_of_birth": "19/04/2001",
			"mobile":        "9876543210",
			"address":       "B12/3 Gandhi Street MG Road",
			"sex":           "M",
			"age":           "25",
		},
	}
	httputil.WriteJSON(w, http.StatusOK, example)
}

package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"idverify/pkg/platform/audit"
	"idverify/pkg/platform/httputil"
	"idverify/pkg/requestcontext"

	"idverify/internal/extraction"
	"idverify/internal/verification"
	verifhandler "idverify/internal/verification/handler"
)

// Verifier is the slice of the verification service map-and-verify needs.
type Verifier interface {
	Verify(ctx context.Context, in verification.VerifyInput) (*verification.Run, error)
}

// Handler wires extraction endpoints to the mapper and, for the combined
// endpoint, the verification service.
type Handler struct {
	verifier Verifier
	auditor  *audit.Publisher
	logger   *slog.Logger
}

// New constructs an extraction handler with its dependencies.
func New(verifier Verifier, auditor *audit.Publisher, logger *slog.Logger) *Handler {
	return &Handler{verifier: verifier, auditor: auditor, logger: logger}
}

// Register mounts extraction endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/extraction/extract-fields", h.HandleExtract)
	r.Post("/map-and-verify", h.HandleMapAndVerify)
}

// HandleExtract handles POST /extraction/extract-fields requests.
func (h *Handler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ExtractRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	fields := extraction.ExtractFields(req.RawText)
	missing := extraction.MissingFields(fields)

	if err := h.auditor.Emit(ctx, audit.Event{
		ClientID:  requestcontext.ClientID(ctx),
		Action:    string(audit.EventFieldsExtracted),
		Reason:    "missing: " + strings.Join(missing, ","),
		RequestID: requestID,
	}); err != nil {
		h.logger.ErrorContext(ctx, "audit emit failed",
			"request_id", requestID,
			"error", err,
		)
	}

	h.logger.InfoContext(ctx, "fields extracted",
		"request_id", requestID,
		"found", len(fields),
		"missing", len(missing),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, NewExtractResponse(fields, missing))
}

// MapAndVerifyResponse is the HTTP response for POST /map-and-verify.
type MapAndVerifyResponse struct {
	Extraction   *ExtractResponse             `json:"extraction"`
	Verification *verifhandler.VerifyResponse `json:"verification"`
}

// HandleMapAndVerify handles POST /map-and-verify requests.
func (h *Handler) HandleMapAndVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[MapAndVerifyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	fields := extraction.ExtractFields(req.RawText)
	missing := extraction.MissingFields(fields)

	run, err := h.verifier.Verify(ctx, verification.VerifyInput{
		Extracted: fields,
		Stated:    req.Stated,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "map-and-verify failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "map-and-verify completed",
		"request_id", requestID,
		"run_id", run.ID,
		"decision", run.Result.Decision,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, MapAndVerifyResponse{
		Extraction:   NewExtractResponse(fields, missing),
		Verification: verifhandler.FromRun(run),
	})
}

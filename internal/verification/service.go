package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	dErrors "idverify/pkg/domain-errors"
	"idverify/pkg/platform/audit"
	"idverify/pkg/platform/sentinel"
	"idverify/pkg/requestcontext"

	"idverify/internal/normalize"
	"idverify/internal/verification/metrics"
)

// ageNoteTolerance is the allowed gap in years between the age derived from
// the extracted birth date and the stated age.
const ageNoteTolerance = 1

// VerifyInput carries both sides of a comparison with their original keys.
// The service canonicalizes keys at this boundary; callers never pre-map.
// Weights optionally override the engine's field weights for this call only.
type VerifyInput struct {
	Extracted map[string]string
	Stated    map[string]string
	Weights   map[string]float64
}

// Service orchestrates verification: key mapping, scoring, consistency
// notes, persistence, audit, and metrics.
type Service struct {
	engine  *Engine
	store   RunStore
	auditor *audit.Publisher
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewService(engine *Engine, store RunStore, auditor *audit.Publisher,
	m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		engine:  engine,
		store:   store,
		auditor: auditor,
		metrics: m,
		logger:  logger,
	}
}

// Verify scores the two records, attaches age consistency notes, persists
// the run, and emits an audit event. The run is returned even when the
// decision is a mismatch; only infrastructure failures return an error.
func (s *Service) Verify(ctx context.Context, in VerifyInput) (*Run, error) {
	start := time.Now()

	extracted := CanonicalizeRecord(in.Extracted)
	stated := CanonicalizeRecord(in.Stated)

	weights, err := weightOverride(in.Weights)
	if err != nil {
		return nil, err
	}

	result := s.engine.VerifyWithWeights(extracted, stated, weights)
	result.Notes = append(result.Notes, ageNotes(ctx, extracted.Get(FieldDOB), in.Stated)...)

	run := Run{
		ID:        uuid.New(),
		ClientID:  requestcontext.ClientID(ctx),
		Extracted: extracted,
		Stated:    stated,
		Result:    result,
		CreatedAt: requestcontext.Now(ctx),
	}
	if err := s.store.Save(ctx, run); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist verification run")
	}

	if err := s.auditor.Emit(ctx, audit.Event{
		ClientID:  run.ClientID,
		Subject:   run.ID.String(),
		Action:    string(audit.EventVerificationCompleted),
		Decision:  string(result.Decision),
		Reason:    strings.Join(result.Notes, "; "),
		RequestID: requestcontext.RequestID(ctx),
	}); err != nil {
		// Audit is best-effort on this path; the run is already persisted.
		s.logger.ErrorContext(ctx, "audit emit failed",
			"run_id", run.ID,
			"error", err,
		)
	}

	s.metrics.IncrementDecision(string(result.Decision))
	for field, score := range result.FieldScores {
		s.metrics.ObserveFieldScore(string(field), score)
	}
	s.metrics.ObserveVerifyLatency(time.Since(start))

	return &run, nil
}

// GetRun loads a single run by ID.
func (s *Service) GetRun(ctx context.Context, id uuid.UUID) (*Run, error) {
	run, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "verification run not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load verification run")
	}
	return &run, nil
}

// ListRuns returns the caller's most recent runs.
func (s *Service) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	runs, err := s.store.List(ctx, requestcontext.ClientID(ctx), limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list verification runs")
	}
	return runs, nil
}

// weightOverride converts caller-supplied weights to engine weights. A nil
// or empty map means no override.
func weightOverride(raw map[string]float64) (Weights, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	weights := make(Weights, len(raw))
	for key, w := range raw {
		weights[Field(canonicalKey(key))] = w
	}
	if err := ValidateWeights(weights); err != nil {
		return nil, err
	}
	return weights, nil
}

// ageNotes cross-checks a stated age against the extracted birth date. The
// result never changes the score; mismatches surface as notes only.
func ageNotes(ctx context.Context, extractedDOB string, stated map[string]string) []string {
	statedAge := ""
	for key, value := range stated {
		if canonicalKey(key) == "age" {
			statedAge = strings.TrimSpace(value)
			break
		}
	}
	if statedAge == "" || extractedDOB == "" {
		return nil
	}

	dob, ok := normalize.ParseDate(extractedDOB)
	if !ok {
		return nil
	}
	derived := int(requestcontext.Now(ctx).Sub(dob).Hours() / 24 / 365.25)

	age, err := strconv.Atoi(statedAge)
	if err != nil {
		return []string{"age_parse_error"}
	}
	diff := derived - age
	if diff < 0 {
		diff = -diff
	}
	if diff > ageNoteTolerance {
		return []string{fmt.Sprintf("age_mismatch(derived=%d, stated=%d)", derived, age)}
	}
	return nil
}

package handler

import (
	"math"
	"time"

	"idverify/internal/verification"
)

// engineVersion tags responses with the scoring revision so stored results
// remain interpretable after tuning changes.
const engineVersion = "a3-v1"

// VerifyResponse is the HTTP response for POST /verification/verify.
type VerifyResponse struct {
	RunID        string             `json:"run_id"`
	OverallScore float64            `json:"overall_score"`
	Decision     string             `json:"decision"`
	FieldScores  map[string]float64 `json:"field_scores"`
	Notes        []string           `json:"notes"`
	Version      string             `json:"version"`
	CreatedAt    time.Time          `json:"created_at"`
}

// FromRun converts a persisted run to an HTTP response. Scores are rounded
// to four decimals for stable presentation.
func FromRun(run *verification.Run) *VerifyResponse {
	fieldScores := make(map[string]float64, len(run.Result.FieldScores))
	for field, score := range run.Result.FieldScores {
		fieldScores[string(field)] = round4(score)
	}
	notes := run.Result.Notes
	if notes == nil {
		notes = []string{}
	}
	return &VerifyResponse{
		RunID:        run.ID.String(),
		OverallScore: round4(run.Result.OverallScore),
		Decision:     string(run.Result.Decision),
		FieldScores:  fieldScores,
		Notes:        notes,
		Version:      engineVersion,
		CreatedAt:    run.CreatedAt,
	}
}

// ListRunsResponse is the HTTP response for GET /verification/runs.
type ListRunsResponse struct {
	Runs []*VerifyResponse `json:"runs"`
}

// FromRuns converts a run list.
func FromRuns(runs []verification.Run) *ListRunsResponse {
	out := make([]*VerifyResponse, 0, len(runs))
	for i := range runs {
		out = append(out, FromRun(&runs[i]))
	}
	return &ListRunsResponse{Runs: out}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

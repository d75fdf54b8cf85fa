package handler

import (
	"math"

	"idverify/internal/registry"
)

// SubmitResponse is the HTTP response for POST /registration/submit.
type SubmitResponse struct {
	Submitted         bool    `json:"submitted"`
	PreRegistrationID string  `json:"pre_registration_id,omitempty"`
	RunID             string  `json:"run_id"`
	OverallScore      float64 `json:"overall_score"`
	Decision          string  `json:"decision"`
	Reason            string  `json:"reason,omitempty"`
}

// FromSubmitResult converts a service result to an HTTP response.
func FromSubmitResult(res *registry.SubmitResult) *SubmitResponse {
	return &SubmitResponse{
		Submitted:         res.Submitted,
		PreRegistrationID: res.PreRegID,
		RunID:             res.Run.ID.String(),
		OverallScore:      round4(res.Run.Result.OverallScore),
		Decision:          string(res.Run.Result.Decision),
		Reason:            res.Reason,
	}
}

// StatusResponse is the HTTP response for GET /registration/status/{id}.
type StatusResponse struct {
	PreRegistrationID string `json:"pre_registration_id"`
	Status            string `json:"status"`
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

package verification

import (
	"fmt"
	"math"
	"strings"

	dErrors "idverify/pkg/domain-errors"

	"idverify/internal/match"
)

// lowScoreNote is the per-field score below which a note is attached.
const lowScoreNote = 0.60

// scorer compares two raw values for one field.
type scorer func(a, b string) float64

var fieldScorers = map[Field]scorer{
	FieldName:    match.NameScore,
	FieldDOB:     match.DOBScore,
	FieldPhone:   match.PhoneScore,
	FieldAddress: match.AddressScore,
	FieldGender:  match.GenderScore,
}

// Engine scores record pairs. It is stateless and safe for concurrent use.
type Engine struct {
	weights    Weights
	thresholds Thresholds
}

// NewEngine validates the configuration and builds an engine. Unknown weight
// keys, negative weights, and inverted thresholds are rejected.
func NewEngine(weights Weights, thresholds Thresholds) (*Engine, error) {
	if weights == nil {
		weights = DefaultWeights()
	}
	if err := ValidateWeights(weights); err != nil {
		return nil, err
	}
	if thresholds.Match < thresholds.Review ||
		thresholds.Match > 1 || thresholds.Review < 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid decision thresholds")
	}
	return &Engine{weights: weights, thresholds: thresholds}, nil
}

// ValidateWeights rejects unknown fields and non-finite or negative weights.
func ValidateWeights(weights Weights) error {
	for field, w := range weights {
		if _, ok := fieldScorers[field]; !ok {
			return dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("unknown weight field %q", field))
		}
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("invalid weight for field %q", field))
		}
	}
	return nil
}

// MustEngine builds an engine with the default configuration.
func MustEngine() *Engine {
	e, err := NewEngine(DefaultWeights(), DefaultThresholds)
	if err != nil {
		panic(err)
	}
	return e
}

// Verify scores every field present on both sides, renormalizes the weights
// over those fields, and bands the weighted overall score into a decision.
// When no field is comparable the decision is indeterminate rather than a
// mismatch: absence of evidence is not evidence of difference.
func (e *Engine) Verify(extracted, stated Record) Result {
	return e.verify(extracted, stated, e.weights)
}

// VerifyWithWeights scores with a per-call weight override, leaving the
// engine's configuration untouched. The caller validates the weights.
func (e *Engine) VerifyWithWeights(extracted, stated Record, weights Weights) Result {
	if weights == nil {
		weights = e.weights
	}
	return e.verify(extracted, stated, weights)
}

func (e *Engine) verify(extracted, stated Record, weights Weights) Result {
	// Every field gets a score so the result map always carries the full
	// key set. Only fields present on both sides enter the weighted mean.
	scores := make(map[Field]float64, len(Fields))
	available := make([]Field, 0, len(Fields))

	for _, field := range Fields {
		a := strings.TrimSpace(extracted.Get(field))
		b := strings.TrimSpace(stated.Get(field))
		if a == "" || b == "" {
			scores[field] = 0
			continue
		}
		scores[field] = fieldScorers[field](a, b)
		available = append(available, field)
	}

	totalWeight := 0.0
	for _, field := range available {
		totalWeight += weights[field]
	}
	if len(available) == 0 || totalWeight == 0 {
		return Result{
			OverallScore: 0,
			Decision:     DecisionIndeterminate,
			FieldScores:  scores,
			Notes:        []string{"no comparable fields"},
		}
	}

	overall := 0.0
	for _, field := range available {
		overall += scores[field] * (weights[field] / totalWeight)
	}

	return Result{
		OverallScore: overall,
		Decision:     e.Decide(overall),
		FieldScores:  scores,
		Notes:        lowScoreNotes(scores, available),
	}
}

// Decide bands an overall score using the engine's thresholds.
func (e *Engine) Decide(overall float64) Decision {
	switch {
	case overall >= e.thresholds.Match:
		return DecisionMatch
	case overall >= e.thresholds.Review:
		return DecisionReview
	default:
		return DecisionMismatch
	}
}

// lowScoreNotes flags compared fields scoring below the note threshold, in
// canonical field order. Fields absent from a side carry a zero score but
// never a note.
func lowScoreNotes(scores map[Field]float64, available []Field) []string {
	compared := make(map[Field]bool, len(available))
	for _, field := range available {
		compared[field] = true
	}
	var notes []string
	for _, field := range Fields {
		if compared[field] && scores[field] < lowScoreNote {
			notes = append(notes, fmt.Sprintf("%s low_score(%.2f)", field, scores[field]))
		}
	}
	return notes
}

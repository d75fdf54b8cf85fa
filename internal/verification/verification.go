// Package verification implements the identity field verification engine:
// it compares an extracted document record against user-stated values,
// producing per-field scores, a weighted overall score, and a decision.
package verification

import (
	"time"

	"github.com/google/uuid"
)

// Field identifies a comparable identity attribute.
type Field string

const (
	FieldName    Field = "name"
	FieldDOB     Field = "dob"
	FieldPhone   Field = "phone"
	FieldAddress Field = "address"
	FieldGender  Field = "gender"
)

// Fields lists every comparable field in canonical order.
var Fields = []Field{FieldName, FieldDOB, FieldPhone, FieldAddress, FieldGender}

// Record holds one side's raw field values keyed by canonical field name.
// Missing and empty values are equivalent.
type Record map[Field]string

// Get returns the raw value for f, or "" when absent.
func (r Record) Get(f Field) string {
	if r == nil {
		return ""
	}
	return r[f]
}

// Decision is the verification outcome band.
type Decision string

const (
	DecisionMatch         Decision = "MATCH"
	DecisionReview        Decision = "REVIEW"
	DecisionMismatch      Decision = "MISMATCH"
	DecisionIndeterminate Decision = "INDETERMINATE"
)

// Thresholds are the decision cut points. Overall scores at or above Match
// pass, scores at or above Review go to manual review, the rest fail.
type Thresholds struct {
	Match  float64
	Review float64
}

// DefaultThresholds are the tuned production cut points.
var DefaultThresholds = Thresholds{Match: 0.85, Review: 0.60}

// Weights maps each field to its share of the overall score. Weights for
// fields absent from either record are excluded and the rest renormalized.
type Weights map[Field]float64

// DefaultWeights reflect field reliability: names and birth dates are the
// strongest identity signals, gender the weakest.
func DefaultWeights() Weights {
	return Weights{
		FieldName:    0.35,
		FieldDOB:     0.30,
		FieldPhone:   0.15,
		FieldAddress: 0.15,
		FieldGender:  0.05,
	}
}

// Result is the outcome of one verification comparison.
type Result struct {
	OverallScore float64
	Decision     Decision
	FieldScores  map[Field]float64
	Notes        []string
}

// Run is a persisted verification execution.
type Run struct {
	ID        uuid.UUID
	ClientID  string
	Extracted Record
	Stated    Record
	Result    Result
	CreatedAt time.Time
}

// Package audit captures structured events for compliance and operational
// visibility. Domain code emits Events through a Publisher; stores, workers
// and brokers fan them out.
package audit

import "time"

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies, storage backends, and routing.
type EventCategory string

const (
	// CategoryCompliance covers events with legal/regulatory significance.
	// These require tamper-proof storage and long retention.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers events relevant to security monitoring.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers events useful for debugging and
	// operational visibility. These can be sampled or aggregated.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	ClientID  string
	Subject   string
	Action    string
	Decision  string
	Reason    string
	RequestID string
}

// AuditEvent names every action the system records.
type AuditEvent string

const (
	// Verification events
	EventVerificationCompleted AuditEvent = "verification_completed"
	EventFieldsExtracted       AuditEvent = "fields_extracted"

	// Registration events
	EventRegistrationSubmitted AuditEvent = "registration_submitted"
	EventRegistrationChecked   AuditEvent = "registration_checked"

	// Auth events
	EventTokenIssued AuditEvent = "token_issued"
	EventAuthFailed  AuditEvent = "auth_failed"
)

var eventCategories = map[AuditEvent]EventCategory{
	// Verification decisions carry regulatory weight for onboarding.
	EventVerificationCompleted: CategoryCompliance,
	EventRegistrationSubmitted: CategoryCompliance,

	EventAuthFailed: CategorySecurity,

	EventFieldsExtracted:     CategoryOperations,
	EventRegistrationChecked: CategoryOperations,
	EventTokenIssued:         CategoryOperations,
}

// Category returns the routing category for the event, defaulting to
// operations for unknown actions.
func (e AuditEvent) Category() EventCategory {
	if c, ok := eventCategories[e]; ok {
		return c
	}
	return CategoryOperations
}

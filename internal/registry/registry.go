// Package registry submits verified applicants to an external
// pre-registration system and tracks application status. The gateway keeps
// the client interface small so tests can stub quickly.
package registry

import (
	"context"
	"time"
)

// ApplicationStatus is the remote system's view of a submission.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// PreRegistration is the remote system's receipt for a submission.
type PreRegistration struct {
	ID          string
	SubmittedAt time.Time
}

// Client talks to the pre-registration system.
type Client interface {
	CreatePreRegistration(ctx context.Context, fields map[string]string) (PreRegistration, error)
	GetApplicationStatus(ctx context.Context, preRegID string) (ApplicationStatus, error)
}

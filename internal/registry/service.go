package registry

import (
	"context"
	"fmt"
	"log/slog"

	dErrors "idverify/pkg/domain-errors"
	"idverify/pkg/platform/audit"
	"idverify/pkg/requestcontext"

	"idverify/internal/verification"
)

// DefaultSubmitThreshold is the minimum overall score required before an
// applicant is forwarded to the registry.
const DefaultSubmitThreshold = 0.85

// Verifier is the slice of the verification service this module needs.
type Verifier interface {
	Verify(ctx context.Context, in verification.VerifyInput) (*verification.Run, error)
}

// SubmitInput carries both record sides plus an optional score threshold.
type SubmitInput struct {
	Extracted map[string]string
	Stated    map[string]string
	Threshold float64
}

// SubmitResult reports the verification outcome and, when the threshold was
// met, the registry receipt.
type SubmitResult struct {
	Run       *verification.Run
	Submitted bool
	PreRegID  string
	Reason    string
}

// Service gates registry submissions on verification outcomes.
type Service struct {
	client   Client
	verifier Verifier
	auditor  *audit.Publisher
	logger   *slog.Logger
}

func NewService(client Client, verifier Verifier, auditor *audit.Publisher, logger *slog.Logger) *Service {
	return &Service{client: client, verifier: verifier, auditor: auditor, logger: logger}
}

// VerifyAndSubmit verifies the records and submits the stated values to the
// registry when the overall score meets the threshold. A below-threshold
// outcome is a result, not an error.
func (s *Service) VerifyAndSubmit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	threshold := in.Threshold
	if threshold == 0 {
		threshold = DefaultSubmitThreshold
	}
	if threshold < 0 || threshold > 1 {
		return nil, dErrors.New(dErrors.CodeValidation, "threshold must be within [0,1]")
	}

	run, err := s.verifier.Verify(ctx, verification.VerifyInput{
		Extracted: in.Extracted,
		Stated:    in.Stated,
	})
	if err != nil {
		return nil, err
	}

	if run.Result.Decision == verification.DecisionIndeterminate ||
		run.Result.OverallScore < threshold {
		reason := fmt.Sprintf("score %.4f below threshold %.2f", run.Result.OverallScore, threshold)
		if err := s.auditor.Emit(ctx, audit.Event{
			ClientID:  requestcontext.ClientID(ctx),
			Subject:   run.ID.String(),
			Action:    string(audit.EventRegistrationSubmitted),
			Decision:  string(run.Result.Decision),
			Reason:    reason,
			RequestID: requestcontext.RequestID(ctx),
		}); err != nil {
			s.logger.ErrorContext(ctx, "failed to record registration audit event",
				"error", err, "run_id", run.ID)
		}
		return &SubmitResult{Run: run, Reason: reason}, nil
	}

	preReg, err := s.client.CreatePreRegistration(ctx, in.Stated)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "registry submission failed")
	}

	if err := s.auditor.Emit(ctx, audit.Event{
		ClientID:  requestcontext.ClientID(ctx),
		Subject:   preReg.ID,
		Action:    string(audit.EventRegistrationSubmitted),
		Decision:  string(run.Result.Decision),
		Reason:    fmt.Sprintf("run %s score %.4f", run.ID, run.Result.OverallScore),
		RequestID: requestcontext.RequestID(ctx),
	}); err != nil {
		// Submission already happened; the event is advisory.
		s.logger.ErrorContext(ctx, "failed to record registration audit event",
			"error", err, "pre_registration_id", preReg.ID)
	}

	return &SubmitResult{Run: run, Submitted: true, PreRegID: preReg.ID}, nil
}

// Status looks up an application's registry status.
func (s *Service) Status(ctx context.Context, preRegID string) (ApplicationStatus, error) {
	status, err := s.client.GetApplicationStatus(ctx, preRegID)
	if err != nil {
		return "", err
	}

	if err := s.auditor.Emit(ctx, audit.Event{
		ClientID:  requestcontext.ClientID(ctx),
		Subject:   preRegID,
		Action:    string(audit.EventRegistrationChecked),
		Decision:  string(status),
		RequestID: requestcontext.RequestID(ctx),
	}); err != nil {
		s.logger.ErrorContext(ctx, "failed to record status check audit event",
			"error", err, "pre_registration_id", preRegID)
	}
	return status, nil
}

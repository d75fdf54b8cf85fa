package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	dErrors "idverify/pkg/domain-errors"
	"idverify/pkg/platform/audit"
	"idverify/pkg/platform/sentinel"
	"idverify/pkg/requestcontext"

	"idverify/internal/token"
)

// Token is the issued credential handed back to the caller.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// Service authenticates API clients and issues access tokens.
type Service struct {
	store   ClientStore
	tokens  *token.Service
	auditor *audit.Publisher
	logger  *slog.Logger
}

func NewService(store ClientStore, tokens *token.Service, auditor *audit.Publisher, logger *slog.Logger) *Service {
	return &Service{store: store, tokens: tokens, auditor: auditor, logger: logger}
}

// Provision registers a client with the given secret. An empty secret gets
// a generated one; the plaintext is returned exactly once.
func (s *Service) Provision(ctx context.Context, clientID, name, secret string) (string, error) {
	if clientID == "" {
		return "", dErrors.New(dErrors.CodeValidation, "client id cannot be empty")
	}
	if secret == "" {
		generated, err := GenerateSecret()
		if err != nil {
			return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate client secret")
		}
		secret = generated
	}
	hash, err := HashSecret(secret)
	if err != nil {
		return "", err
	}
	client := APIClient{
		ClientID:   clientID,
		Name:       name,
		SecretHash: hash,
		CreatedAt:  requestcontext.Now(ctx),
	}
	if err := s.store.Save(ctx, client); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist client")
	}
	return secret, nil
}

// Authenticate verifies client credentials and issues an access token.
// Failures are deliberately uniform so callers cannot probe which client
// ids exist.
func (s *Service) Authenticate(ctx context.Context, clientID, secret string) (Token, error) {
	client, err := s.store.GetByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.emitAuthEvent(ctx, clientID, audit.EventAuthFailed, "unknown client")
			return Token{}, dErrors.New(dErrors.CodeUnauthorized, "invalid client credentials")
		}
		return Token{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load client")
	}

	if err := VerifySecret(secret, client.SecretHash); err != nil {
		s.emitAuthEvent(ctx, clientID, audit.EventAuthFailed, "secret mismatch")
		return Token{}, dErrors.New(dErrors.CodeUnauthorized, "invalid client credentials")
	}

	signed, expiresAt, err := s.tokens.Issue(client.ClientID)
	if err != nil {
		return Token{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign token")
	}

	s.emitAuthEvent(ctx, clientID, audit.EventTokenIssued, "")
	return Token{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *Service) emitAuthEvent(ctx context.Context, clientID string, action audit.AuditEvent, reason string) {
	if err := s.auditor.Emit(ctx, audit.Event{
		ClientID:  clientID,
		Subject:   clientID,
		Action:    string(action),
		Reason:    reason,
		RequestID: requestcontext.RequestID(ctx),
	}); err != nil {
		s.logger.ErrorContext(ctx, "failed to record auth audit event",
			"error", err, "client_id", clientID)
	}
}

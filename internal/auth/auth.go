// Package auth manages API clients and the client-credentials flow. Client
// secrets are stored as bcrypt hashes only; the plaintext is shown once at
// provisioning time.
package auth

import (
	"context"
	"time"
)

// APIClient identifies one consumer of the API.
type APIClient struct {
	ClientID   string
	Name       string
	SecretHash string
	CreatedAt  time.Time
}

// ClientStore persists API clients.
type ClientStore interface {
	Save(ctx context.Context, client APIClient) error
	GetByClientID(ctx context.Context, clientID string) (APIClient, error)
}

package auth

import (
	"context"
	"sync"

	"idverify/pkg/platform/sentinel"
)

// InMemoryClientStore keeps API clients in process memory. Intended for
// tests and single-node deployments seeded from configuration.
type InMemoryClientStore struct {
	mu      sync.RWMutex
	clients map[string]APIClient
}

func NewInMemoryClientStore() *InMemoryClientStore {
	return &InMemoryClientStore{clients: make(map[string]APIClient)}
}

func (s *InMemoryClientStore) Save(_ context.Context, client APIClient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[client.ClientID] = client
	return nil
}

func (s *InMemoryClientStore) GetByClientID(_ context.Context, clientID string) (APIClient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	client, ok := s.clients[clientID]
	if !ok {
		return APIClient{}, sentinel.ErrNotFound
	}
	return client, nil
}

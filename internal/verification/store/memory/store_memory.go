package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"idverify/internal/verification"
	"idverify/pkg/platform/sentinel"
)

// InMemoryStore keeps verification runs in a map. Intended for tests and
// local runs without Postgres.
type InMemoryStore struct {
	mu   sync.RWMutex
	runs map[uuid.UUID]verification.Run
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{runs: make(map[uuid.UUID]verification.Run)}
}

func (s *InMemoryStore) Save(_ context.Context, run verification.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, id uuid.UUID) (verification.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if run, ok := s.runs[id]; ok {
		return run, nil
	}
	return verification.Run{}, sentinel.ErrNotFound
}

func (s *InMemoryStore) List(_ context.Context, clientID string, limit int) ([]verification.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var runs []verification.Run
	for _, run := range s.runs {
		if run.ClientID == clientID {
			runs = append(runs, run)
		}
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

package registry

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// StubClient is a deterministic in-process Client for dev and tests. IDs are
// "PRE" plus ten uppercase hex characters; every submitted application
// reports pending.
type StubClient struct {
	Latency time.Duration

	mu      sync.RWMutex
	created map[string]time.Time
}

func NewStubClient() *StubClient {
	return &StubClient{created: make(map[string]time.Time)}
}

func (c *StubClient) CreatePreRegistration(_ context.Context, _ map[string]string) (PreRegistration, error) {
	time.Sleep(c.Latency)
	id := "PRE" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
	now := time.Now()

	c.mu.Lock()
	c.created[id] = now
	c.mu.Unlock()

	return PreRegistration{ID: id, SubmittedAt: now}, nil
}

func (c *StubClient) GetApplicationStatus(_ context.Context, preRegID string) (ApplicationStatus, error) {
	time.Sleep(c.Latency)
	c.mu.RLock()
	defer c.mu.RUnlock()
	if _, ok := c.created[preRegID]; ok {
		return StatusPending, nil
	}
	// Unknown IDs still answer pending so the stub works across restarts.
	return StatusPending, nil
}

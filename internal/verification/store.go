package verification

import (
	"context"

	"github.com/google/uuid"
)

// RunStore persists verification runs. Implementations live under store/.
type RunStore interface {
	Save(ctx context.Context, run Run) error
	Get(ctx context.Context, id uuid.UUID) (Run, error)
	List(ctx context.Context, clientID string, limit int) ([]Run, error)
}

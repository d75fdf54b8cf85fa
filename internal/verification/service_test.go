package verification

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "idverify/pkg/domain-errors"
	"idverify/pkg/platform/audit"
	auditmem "idverify/pkg/platform/audit/store/memory"
	"idverify/pkg/platform/sentinel"
	"idverify/pkg/requestcontext"
)

// stubRunStore is a map-backed RunStore for service tests. The real memory
// implementation lives under store/memory; a local stub avoids the import
// cycle between the package and its own store.
type stubRunStore struct {
	runs    map[uuid.UUID]Run
	saveErr error
}

func newStubRunStore() *stubRunStore {
	return &stubRunStore{runs: make(map[uuid.UUID]Run)}
}

func (s *stubRunStore) Save(_ context.Context, run Run) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.runs[run.ID] = run
	return nil
}

func (s *stubRunStore) Get(_ context.Context, id uuid.UUID) (Run, error) {
	if run, ok := s.runs[id]; ok {
		return run, nil
	}
	return Run{}, sentinel.ErrNotFound
}

func (s *stubRunStore) List(_ context.Context, clientID string, limit int) ([]Run, error) {
	var runs []Run
	for _, run := range s.runs {
		if run.ClientID == clientID {
			runs = append(runs, run)
		}
	}
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

func newTestService(store RunStore, auditStore audit.Store) *Service {
	return NewService(
		MustEngine(),
		store,
		audit.NewPublisher(auditStore),
		nil, // metrics are nil-safe
		slog.New(slog.DiscardHandler),
	)
}

func TestServiceVerify(t *testing.T) {
	ctx := requestcontext.WithClientID(context.Background(), "client-1")

	t.Run("persists run and emits audit event", func(t *testing.T) {
		store := newStubRunStore()
		auditStore := auditmem.NewInMemoryStore()
		svc := newTestService(store, auditStore)

		run, err := svc.Verify(ctx, VerifyInput{
			Extracted: map[string]string{"name": "Ramesh Kumar", "dob": "19-04-2001"},
			Stated:    map[string]string{"full_name": "Ramesh Kumar", "birth_date": "19/04/2001"},
		})
		require.NoError(t, err)
		assert.Equal(t, DecisionMatch, run.Result.Decision)
		assert.Equal(t, "client-1", run.ClientID)

		saved, err := store.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, run.Result.OverallScore, saved.Result.OverallScore)

		events, err := auditStore.ListByClient(ctx, "client-1")
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, string(audit.EventVerificationCompleted), events[0].Action)
		assert.Equal(t, string(DecisionMatch), events[0].Decision)
		assert.Equal(t, audit.CategoryCompliance, events[0].Category)
	})

	t.Run("store failure surfaces as internal error", func(t *testing.T) {
		store := newStubRunStore()
		store.saveErr = errors.New("connection refused")
		svc := newTestService(store, auditmem.NewInMemoryStore())

		_, err := svc.Verify(ctx, VerifyInput{
			Extracted: map[string]string{"name": "a"},
			Stated:    map[string]string{"name": "a"},
		})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})

	t.Run("age mismatch noted", func(t *testing.T) {
		svc := newTestService(newStubRunStore(), auditmem.NewInMemoryStore())
		now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		tctx := requestcontext.WithTime(ctx, now)

		run, err := svc.Verify(tctx, VerifyInput{
			Extracted: map[string]string{"name": "Ramesh Kumar", "dob": "19-04-2001"},
			Stated:    map[string]string{"name": "Ramesh Kumar", "dob": "19-04-2001", "age": "30"},
		})
		require.NoError(t, err)
		assert.Contains(t, run.Result.Notes, "age_mismatch(derived=25, stated=30)")
		// The note never moves the score.
		assert.Equal(t, DecisionMatch, run.Result.Decision)
	})

	t.Run("age within tolerance has no note", func(t *testing.T) {
		svc := newTestService(newStubRunStore(), auditmem.NewInMemoryStore())
		now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		tctx := requestcontext.WithTime(ctx, now)

		run, err := svc.Verify(tctx, VerifyInput{
			Extracted: map[string]string{"name": "Ramesh Kumar", "dob": "19-04-2001"},
			Stated:    map[string]string{"name": "Ramesh Kumar", "dob": "19-04-2001", "age": "26"},
		})
		require.NoError(t, err)
		assert.Empty(t, run.Result.Notes)
	})

	t.Run("unparseable stated age noted", func(t *testing.T) {
		svc := newTestService(newStubRunStore(), auditmem.NewInMemoryStore())

		run, err := svc.Verify(ctx, VerifyInput{
			Extracted: map[string]string{"name": "Ramesh Kumar", "dob": "19-04-2001"},
			Stated:    map[string]string{"name": "Ramesh Kumar", "dob": "19-04-2001", "age": "twenty"},
		})
		require.NoError(t, err)
		assert.Contains(t, run.Result.Notes, "age_parse_error")
	})

	t.Run("per-request weights override the engine defaults", func(t *testing.T) {
		store := newStubRunStore()
		svc := newTestService(store, auditmem.NewInMemoryStore())

		run, err := svc.Verify(ctx, VerifyInput{
			Extracted: map[string]string{"name": "Ramesh Kumar", "phone": "9876543210"},
			Stated:    map[string]string{"name": "Ramesh Kumar", "phone": "9876500000"},
			Weights:   map[string]float64{"name": 1, "phone": 0},
		})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, run.Result.OverallScore, 1e-9)
		assert.Equal(t, DecisionMatch, run.Result.Decision)
	})

	t.Run("unknown weight key rejected before the run is saved", func(t *testing.T) {
		store := newStubRunStore()
		svc := newTestService(store, auditmem.NewInMemoryStore())

		_, err := svc.Verify(ctx, VerifyInput{
			Extracted: map[string]string{"name": "a"},
			Stated:    map[string]string{"name": "a"},
			Weights:   map[string]float64{"email": 1},
		})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Empty(t, store.runs)
	})
}

func TestServiceGetRun(t *testing.T) {
	ctx := requestcontext.WithClientID(context.Background(), "client-1")
	store := newStubRunStore()
	svc := newTestService(store, auditmem.NewInMemoryStore())

	run, err := svc.Verify(ctx, VerifyInput{
		Extracted: map[string]string{"name": "a"},
		Stated:    map[string]string{"name": "a"},
	})
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		got, err := svc.GetRun(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, run.ID, got.ID)
	})

	t.Run("missing run maps to not found", func(t *testing.T) {
		_, err := svc.GetRun(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestServiceListRuns(t *testing.T) {
	ctx := requestcontext.WithClientID(context.Background(), "client-1")
	store := newStubRunStore()
	svc := newTestService(store, auditmem.NewInMemoryStore())

	for i := 0; i < 3; i++ {
		_, err := svc.Verify(ctx, VerifyInput{
			Extracted: map[string]string{"name": "a"},
			Stated:    map[string]string{"name": "a"},
		})
		require.NoError(t, err)
	}

	runs, err := svc.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	t.Run("other clients see nothing", func(t *testing.T) {
		otherCtx := requestcontext.WithClientID(context.Background(), "client-2")
		runs, err := svc.ListRuns(otherCtx, 10)
		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"idverify/internal/verification"
	"idverify/pkg/platform/sentinel"
)

// Store persists verification runs in PostgreSQL. Records and field scores
// are stored as JSONB so schema changes in field sets need no migration.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Save(ctx context.Context, run verification.Run) error {
	extracted, err := json.Marshal(run.Extracted)
	if err != nil {
		return fmt.Errorf("marshal extracted record: %w", err)
	}
	stated, err := json.Marshal(run.Stated)
	if err != nil {
		return fmt.Errorf("marshal stated record: %w", err)
	}
	fieldScores, err := json.Marshal(run.Result.FieldScores)
	if err != nil {
		return fmt.Errorf("marshal field scores: %w", err)
	}
	notes, err := json.Marshal(run.Result.Notes)
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}

	query := `
		INSERT INTO verification_runs
			(id, client_id, extracted, stated, overall_score, decision, field_scores, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = s.db.ExecContext(ctx, query,
		run.ID,
		run.ClientID,
		extracted,
		stated,
		run.Result.OverallScore,
		string(run.Result.Decision),
		fieldScores,
		notes,
		run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert verification run: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (verification.Run, error) {
	query := `
		SELECT id, client_id, extracted, stated, overall_score, decision, field_scores, notes, created_at
		FROM verification_runs
		WHERE id = $1
	`
	run, err := scanRun(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return verification.Run{}, sentinel.ErrNotFound
		}
		return verification.Run{}, fmt.Errorf("get verification run: %w", err)
	}
	return run, nil
}

func (s *Store) List(ctx context.Context, clientID string, limit int) ([]verification.Run, error) {
	query := `
		SELECT id, client_id, extracted, stated, overall_score, decision, field_scores, notes, created_at
		FROM verification_runs
		WHERE client_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, clientID, limit)
	if err != nil {
		return nil, fmt.Errorf("list verification runs: %w", err)
	}
	defer rows.Close()

	var runs []verification.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan verification run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (verification.Run, error) {
	var (
		run         verification.Run
		extracted   []byte
		stated      []byte
		fieldScores []byte
		notes       []byte
		decision    string
	)
	err := row.Scan(&run.ID, &run.ClientID, &extracted, &stated,
		&run.Result.OverallScore, &decision, &fieldScores, &notes, &run.CreatedAt)
	if err != nil {
		return verification.Run{}, err
	}
	run.Result.Decision = verification.Decision(decision)
	if err := json.Unmarshal(extracted, &run.Extracted); err != nil {
		return verification.Run{}, fmt.Errorf("unmarshal extracted record: %w", err)
	}
	if err := json.Unmarshal(stated, &run.Stated); err != nil {
		return verification.Run{}, fmt.Errorf("unmarshal stated record: %w", err)
	}
	if err := json.Unmarshal(fieldScores, &run.Result.FieldScores); err != nil {
		return verification.Run{}, fmt.Errorf("unmarshal field scores: %w", err)
	}
	if err := json.Unmarshal(notes, &run.Result.Notes); err != nil {
		return verification.Run{}, fmt.Errorf("unmarshal notes: %w", err)
	}
	return run, nil
}

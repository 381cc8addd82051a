package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
	"github.com/custodia-labs/jsonbridge/internal/core/ports/driven"
)

// timeLayout is fixed width so text ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// activityStore implements driven.ActivityStore.
type activityStore struct {
	store *Store
}

var _ driven.ActivityStore = (*activityStore)(nil)

// Record appends an activity, assigning an ID when it has none.
func (s *activityStore) Record(ctx context.Context, activity domain.Activity) error {
	if !activity.Operation.IsValid() {
		return domain.ErrInvalidInput
	}
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	if activity.At.IsZero() {
		activity.At = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO activity (id, operation, path, outcome, bytes, error, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, activity.ID,
		activity.Operation.String(),
		nullString(activity.Path),
		activity.Outcome,
		activity.Bytes,
		nullString(activity.Error),
		activity.At.UTC().Format(timeLayout))

	if err != nil {
		return fmt.Errorf("recording activity: %w", err)
	}
	return nil
}

// Recent returns up to limit activities, most recent first.
// A non-positive limit returns everything.
func (s *activityStore) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, operation, path, outcome, bytes, error, occurred_at
		FROM activity
		ORDER BY occurred_at DESC, seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying activity: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity //nolint:prealloc // size unknown from query
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity: %w", err)
	}

	return activities, nil
}

// Prune removes everything but the most recent keep activities.
func (s *activityStore) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		DELETE FROM activity
		WHERE seq NOT IN (
			SELECT seq FROM (
				SELECT seq, ROW_NUMBER() OVER (ORDER BY occurred_at DESC, seq DESC) AS rn
				FROM activity
			) WHERE rn <= ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning activity: %w", err)
	}
	return nil
}

// scanActivity scans one activity row.
func scanActivity(rows *sql.Rows) (*domain.Activity, error) {
	var a domain.Activity
	var operation, occurredAt string
	var path, errMsg sql.NullString

	if err := rows.Scan(&a.ID, &operation, &path, &a.Outcome, &a.Bytes, &errMsg, &occurredAt); err != nil {
		return nil, fmt.Errorf("scanning activity: %w", err)
	}

	a.Operation = domain.Operation(operation)
	a.Path = path.String
	a.Error = errMsg.String

	at, err := time.Parse(timeLayout, occurredAt)
	if err != nil {
		return nil, fmt.Errorf("parsing activity time %q: %w", occurredAt, err)
	}
	a.At = at

	return &a, nil
}

// nullString returns nil for empty strings, otherwise the string.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

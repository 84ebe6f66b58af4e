package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/edustack-labs/coursectl/internal/core/domain"
	"github.com/edustack-labs/coursectl/internal/core/ports/driven"
)

// draftStore implements driven.DraftStore.
type draftStore struct {
	store *Store
}

var _ driven.DraftStore = (*draftStore)(nil)

// Save stores or updates a draft. The batch is stored as JSON; drafts are
// local-only and never interpreted by anything but coursectl itself.
func (s *draftStore) Save(ctx context.Context, draft domain.Draft) error {
	batchJSON, err := json.Marshal(draft.Batch)
	if err != nil {
		return fmt.Errorf("marshalling batch: %w", err)
	}

	now := time.Now().UTC()
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = now
	}
	if draft.UpdatedAt.IsZero() {
		draft.UpdatedAt = now
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO drafts (id, name, flow, batch, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			flow = excluded.flow,
			batch = excluded.batch,
			updated_at = excluded.updated_at
	`, draft.ID, draft.Name, draft.Flow, string(batchJSON), draft.CreatedAt, draft.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

// Get retrieves a draft by ID.
func (s *draftStore) Get(ctx context.Context, id string) (*domain.Draft, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, flow, batch, created_at, updated_at
		FROM drafts WHERE id = ?
	`, id)

	draft, err := scanDraft(row)
	if err != nil {
		return nil, err
	}
	return draft, nil
}

// Delete removes a draft.
func (s *draftStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM drafts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	return nil
}

// List returns all drafts, most recently updated first.
func (s *draftStore) List(ctx context.Context) ([]domain.Draft, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, flow, batch, created_at, updated_at
		FROM drafts ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying drafts: %w", err)
	}
	defer rows.Close()

	var drafts []domain.Draft
	for rows.Next() {
		draft, err := scanDraftRows(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, *draft)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating drafts: %w", err)
	}
	return drafts, nil
}

// scanDraft scans a single-row query result.
func scanDraft(row *sql.Row) (*domain.Draft, error) {
	var draft domain.Draft
	var batchJSON string

	err := row.Scan(&draft.ID, &draft.Name, &draft.Flow, &batchJSON, &draft.CreatedAt, &draft.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning draft: %w", err)
	}

	if err := json.Unmarshal([]byte(batchJSON), &draft.Batch); err != nil {
		return nil, fmt.Errorf("unmarshalling batch: %w", err)
	}
	return &draft, nil
}

// scanDraftRows scans one row of a multi-row query result.
func scanDraftRows(rows *sql.Rows) (*domain.Draft, error) {
	var draft domain.Draft
	var batchJSON string

	err := rows.Scan(&draft.ID, &draft.Name, &draft.Flow, &batchJSON, &draft.CreatedAt, &draft.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("scanning draft: %w", err)
	}

	if err := json.Unmarshal([]byte(batchJSON), &draft.Batch); err != nil {
		return nil, fmt.Errorf("unmarshalling batch: %w", err)
	}
	return &draft, nil
}

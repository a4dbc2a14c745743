package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/lunch/pkg/domain"
)

// pruneSelectionsSQL keeps the most recent rows, ties broken by insertion order
const pruneSelectionsSQL = `
	DELETE FROM recent_selections WHERE rowid NOT IN (
		SELECT rowid FROM recent_selections ORDER BY selected_at DESC, rowid DESC LIMIT ?
	)
`

// selectionRow is a row of recent_selections table
type selectionRow struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	SelectedAt string `db:"selected_at"`
}

// SelectionRepository handles the history of rolled restaurants
type SelectionRepository struct {
	db *sqlx.DB
}

// NewSelectionRepository creates a new selection repository
func NewSelectionRepository(db *sqlx.DB) *SelectionRepository {
	return &SelectionRepository{db: db}
}

// GetLastSelection returns the most recent selection, nil if history is empty
func (r *SelectionRepository) GetLastSelection(ctx context.Context) (*domain.Selection, error) {
	query := `
		SELECT id, name, selected_at FROM recent_selections
		ORDER BY selected_at DESC, rowid DESC
		LIMIT 1
	`
	var row selectionRow
	err := r.db.GetContext(ctx, &row, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get last selection: %w: %w", domain.ErrStorageRead, err)
	}
	sel, err := toDomainSelection(row)
	if err != nil {
		return nil, fmt.Errorf("get last selection: %w: %w", domain.ErrStorageRead, err)
	}
	return &sel, nil
}

// GetSelections returns retained selections, most recent first
func (r *SelectionRepository) GetSelections(ctx context.Context) ([]domain.Selection, error) {
	query := "SELECT id, name, selected_at FROM recent_selections ORDER BY selected_at DESC, rowid DESC"
	var rows []selectionRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get selections: %w: %w", domain.ErrStorageRead, err)
	}
	res := make([]domain.Selection, 0, len(rows))
	for _, row := range rows {
		sel, err := toDomainSelection(row)
		if err != nil {
			return nil, fmt.Errorf("get selections: %w: %w", domain.ErrStorageRead, err)
		}
		res = append(res, sel)
	}
	return res, nil
}

// RecordSelection inserts a selection and prunes history to the keep most recent entries.
// Both happen in a single transaction, so history is never left pruned-but-not-inserted.
func (r *SelectionRepository) RecordSelection(ctx context.Context, name string, at time.Time, keep int) (domain.Selection, error) {
	if keep < 1 {
		return domain.Selection{}, fmt.Errorf("%w: history size %d", domain.ErrInvalidInput, keep)
	}

	row := selectionRow{ID: uuid.NewString(), Name: name, SelectedAt: formatTS(at)}
	err := retryWrite(ctx, "record selection", func() error {
		return inTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
			insert := "INSERT INTO recent_selections (id, name, selected_at) VALUES (:id, :name, :selected_at)"
			if _, err := tx.NamedExecContext(ctx, insert, row); err != nil {
				return fmt.Errorf("insert selection: %w", err)
			}
			if _, err := tx.ExecContext(ctx, pruneSelectionsSQL, keep); err != nil {
				return fmt.Errorf("prune selections: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return domain.Selection{}, err
	}
	return toDomainSelection(row)
}

func toDomainSelection(row selectionRow) (domain.Selection, error) {
	ts, err := parseTS(row.SelectedAt)
	if err != nil {
		return domain.Selection{}, fmt.Errorf("parse selected_at %q: %w", row.SelectedAt, err)
	}
	return domain.Selection{ID: row.ID, Name: row.Name, SelectedAt: ts}, nil
}

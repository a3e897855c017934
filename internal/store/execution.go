package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/HVLAB-SJ/hvlab-go/internal/models"
	"github.com/jackc/pgx/v5"
)

const executionColumns = `
	id, project, entry_date, category, vendor, description,
	amount, payment_method, created_by, created_at, updated_at
`

func scanExecutionEntry(row pgx.Row) (models.ExecutionEntry, error) {
	var e models.ExecutionEntry
	err := row.Scan(
		&e.ID,
		&e.Project,
		&e.EntryDate,
		&e.Category,
		&e.Vendor,
		&e.Description,
		&e.Amount,
		&e.PaymentMethod,
		&e.CreatedBy,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// ListExecutionEntries returns the execution ledger, optionally for one
// project, oldest booking first
func ListExecutionEntries(ctx context.Context, db Querier, project string) ([]models.ExecutionEntry, error) {
	query := `
		SELECT ` + executionColumns + `
		FROM execution_entries
	`
	args := []any{}
	if project != "" {
		query += ` WHERE project = $1`
		args = append(args, project)
	}
	query += ` ORDER BY entry_date ASC, id ASC`

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query execution entries: %w", err)
	}
	defer rows.Close()

	entries := []models.ExecutionEntry{}
	for rows.Next() {
		e, err := scanExecutionEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan execution entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CreateExecutionEntry inserts a ledger entry and returns its new id
func CreateExecutionEntry(ctx context.Context, db Querier, e models.ExecutionEntry) (int64, error) {
	query := `
		INSERT INTO execution_entries
			(project, entry_date, category, vendor, description,
			 amount, payment_method, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := db.QueryRow(ctx, query,
		e.Project, e.EntryDate, e.Category, e.Vendor, e.Description,
		e.Amount, e.PaymentMethod, e.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create execution entry: %w", err)
	}
	return id, nil
}

// UpdateExecutionEntry applies a partial patch to one ledger entry
func UpdateExecutionEntry(ctx context.Context, db Querier, id int64, patch models.UpdateExecutionEntryRequest) error {
	sets := []string{}
	args := []any{}
	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}

	if patch.EntryDate != nil {
		add("entry_date", *patch.EntryDate)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Vendor != nil {
		add("vendor", *patch.Vendor)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Amount != nil {
		add("amount", *patch.Amount)
	}
	if patch.PaymentMethod != nil {
		add("payment_method", *patch.PaymentMethod)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE execution_entries SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(sets, ", "), len(args),
	)

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update execution entry %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExecutionEntry removes one ledger entry
func DeleteExecutionEntry(ctx context.Context, db Querier, id int64) error {
	tag, err := db.Exec(ctx, `DELETE FROM execution_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete execution entry %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package store

import (
	"context"
	"fmt"

	"github.com/HVLAB-SJ/hvlab-go/internal/models"
)

// CreateEstimate inserts an estimate with its items. Callers pass a
// transaction so the header and lines commit together.
func CreateEstimate(ctx context.Context, db Querier, e models.Estimate) (int64, error) {
	query := `
		INSERT INTO estimates (project, vat_type, subtotal, vat_amount, grand_total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := db.QueryRow(ctx, query, e.Project, e.VATType, e.Subtotal, e.VATAmount, e.GrandTotal).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create estimate: %w", err)
	}

	for _, item := range e.Items {
		_, err := db.Exec(ctx, `
			INSERT INTO estimate_items (estimate_id, product_id, name, quantity, unit_price, total)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, id, item.ProductID, item.Name, item.Quantity, item.UnitPrice, item.Total)
		if err != nil {
			return 0, fmt.Errorf("failed to create estimate item: %w", err)
		}
	}
	return id, nil
}

// GetEstimate returns one estimate with its items
func GetEstimate(ctx context.Context, db Querier, id int64) (*models.Estimate, error) {
	query := `
		SELECT id, project, vat_type, subtotal, vat_amount, grand_total, created_at, updated_at
		FROM estimates
		WHERE id = $1
	`

	var e models.Estimate
	err := db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Project, &e.VATType, &e.Subtotal, &e.VATAmount, &e.GrandTotal,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get estimate %d: %w", id, err)
	}

	rows, err := db.Query(ctx, `
		SELECT id, product_id, name, quantity, unit_price, total
		FROM estimate_items
		WHERE estimate_id = $1
		ORDER BY id ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query estimate items: %w", err)
	}
	defer rows.Close()

	e.Items = []models.EstimateItem{}
	for rows.Next() {
		var item models.EstimateItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Name, &item.Quantity, &item.UnitPrice, &item.Total); err != nil {
			return nil, fmt.Errorf("failed to scan estimate item: %w", err)
		}
		e.Items = append(e.Items, item)
	}
	return &e, rows.Err()
}

// ListEstimates returns estimate headers for a project, or all projects
// when project is empty.
func ListEstimates(ctx context.Context, db Querier, project string) ([]models.Estimate, error) {
	query := `
		SELECT id, project, vat_type, subtotal, vat_amount, grand_total, created_at, updated_at
		FROM estimates
	`
	args := []any{}
	if project != "" {
		query += ` WHERE project = $1`
		args = append(args, project)
	}
	query += ` ORDER BY id DESC`

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query estimates: %w", err)
	}
	defer rows.Close()

	estimates := []models.Estimate{}
	for rows.Next() {
		var e models.Estimate
		err := rows.Scan(
			&e.ID, &e.Project, &e.VATType, &e.Subtotal, &e.VATAmount, &e.GrandTotal,
			&e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan estimate: %w", err)
		}
		estimates = append(estimates, e)
	}
	return estimates, rows.Err()
}

package store

import (
	"context"
	"fmt"

	"github.com/HVLAB-SJ/hvlab-go/internal/models"
)

// ListProducts returns the spec-book catalog, optionally limited to a category
func ListProducts(ctx context.Context, db Querier, category string) ([]models.Product, error) {
	query := `
		SELECT id, category, name, vendor, unit_price, unit, image_url, created_at, updated_at
		FROM products
	`
	args := []any{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY category, name`

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		err := rows.Scan(
			&p.ID, &p.Category, &p.Name, &p.Vendor,
			&p.UnitPrice, &p.Unit, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// CreateProduct inserts a catalog entry and returns its new id
func CreateProduct(ctx context.Context, db Querier, p models.Product) (int64, error) {
	query := `
		INSERT INTO products (category, name, vendor, unit_price, unit, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	if p.Unit == "" {
		p.Unit = "EA"
	}

	var id int64
	err := db.QueryRow(ctx, query, p.Category, p.Name, p.Vendor, p.UnitPrice, p.Unit, p.ImageURL).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}
	return id, nil
}

// DeleteProduct removes a catalog entry
func DeleteProduct(ctx context.Context, db Querier, id int64) error {
	tag, err := db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

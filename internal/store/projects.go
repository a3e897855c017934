package store

import (
	"context"
	"fmt"

	"github.com/HVLAB-SJ/hvlab-go/internal/models"
)

// ListProjects returns every project
func ListProjects(ctx context.Context, db Querier) ([]models.Project, error) {
	query := `
		SELECT id, name, location, status, start_date, end_date, created_at, updated_at
		FROM projects
		ORDER BY id ASC
	`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		err := rows.Scan(
			&p.ID, &p.Name, &p.Location, &p.Status,
			&p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetProjectByName returns one project by its canonical name
func GetProjectByName(ctx context.Context, db Querier, name string) (*models.Project, error) {
	query := `
		SELECT id, name, location, status, start_date, end_date, created_at, updated_at
		FROM projects
		WHERE name = $1
	`

	var p models.Project
	err := db.QueryRow(ctx, query, name).Scan(
		&p.ID, &p.Name, &p.Location, &p.Status,
		&p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project %s: %w", name, err)
	}
	return &p, nil
}

// CreateProject inserts a project and returns its new id
func CreateProject(ctx context.Context, db Querier, p models.Project) (int64, error) {
	query := `
		INSERT INTO projects (name, location, status, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	if p.Status == "" {
		p.Status = "planned"
	}

	var id int64
	err := db.QueryRow(ctx, query, p.Name, p.Location, p.Status, p.StartDate, p.EndDate).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create project: %w", err)
	}
	return id, nil
}

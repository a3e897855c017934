package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/HVLAB-SJ/hvlab-go/internal/models"
)

// ListASRequests returns every AS request
func ListASRequests(ctx context.Context, db Querier) ([]models.ASRequest, error) {
	query := `
		SELECT id, project, assigned_to, scheduled_visit_date,
		       scheduled_visit_time, description, status, created_at, updated_at
		FROM as_requests
		ORDER BY id ASC
	`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query AS requests: %w", err)
	}
	defer rows.Close()

	requests := []models.ASRequest{}
	for rows.Next() {
		var r models.ASRequest
		var assigned []string
		err := rows.Scan(
			&r.ID,
			&r.Project,
			&assigned,
			&r.ScheduledVisitDate,
			&r.ScheduledVisitTime,
			&r.Description,
			&r.Status,
			&r.CreatedAt,
			&r.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan AS request: %w", err)
		}
		r.AssignedTo = models.StringList(assigned)
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

// UpdateASRequest applies a partial patch. ClearVisitDate nulls the visit
// date, which drops the request from the calendar without deleting it.
func UpdateASRequest(ctx context.Context, db Querier, id int64, patch models.UpdateASRequestRequest) error {
	sets := []string{}
	args := []any{}
	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}

	if patch.AssignedTo != nil {
		add("assigned_to", []string(*patch.AssignedTo))
	}
	if patch.ClearVisitDate {
		sets = append(sets, "scheduled_visit_date = NULL")
	} else if patch.ScheduledVisitDate != nil {
		add("scheduled_visit_date", *patch.ScheduledVisitDate)
	}
	if patch.ScheduledVisitTime != nil {
		add("scheduled_visit_time", *patch.ScheduledVisitTime)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE as_requests SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(sets, ", "), len(args),
	)

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update AS request %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

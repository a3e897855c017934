package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/HVLAB-SJ/hvlab-go/internal/models"
	"github.com/jackc/pgx/v5"
)

const scheduleColumns = `
	id, title, start_date, end_date, project, attendees,
	time_of_day, type, description, as_request_id, created_by,
	created_at, updated_at
`

func scanSchedule(row pgx.Row) (models.Schedule, error) {
	var s models.Schedule
	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Start,
		&s.End,
		&s.Project,
		&s.Attendees,
		&s.Time,
		&s.Type,
		&s.Description,
		&s.ASRequestID,
		&s.CreatedBy,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// ListSchedules returns every schedule overlapping the date range
func ListSchedules(ctx context.Context, db Querier, start, end time.Time) ([]models.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE start_date <= $2 AND end_date >= $1
		ORDER BY id ASC
	`

	rows, err := db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	schedules := []models.Schedule{}
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// GetSchedulesByIDs returns the listed schedules in id order
func GetSchedulesByIDs(ctx context.Context, db Querier, ids []int64) ([]models.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE id = ANY($1)
		ORDER BY id ASC
	`

	rows, err := db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules by ids: %w", err)
	}
	defer rows.Close()

	schedules := []models.Schedule{}
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// CreateSchedule inserts a schedule and returns its new id
func CreateSchedule(ctx context.Context, db Querier, s models.Schedule) (int64, error) {
	query := `
		INSERT INTO schedules
			(title, start_date, end_date, project, attendees, time_of_day,
			 type, description, as_request_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	if s.Attendees == nil {
		s.Attendees = []string{}
	}

	var id int64
	err := db.QueryRow(ctx, query,
		s.Title, s.Start, s.End, s.Project, s.Attendees, s.Time,
		s.Type, s.Description, s.ASRequestID, s.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create schedule: %w", err)
	}
	return id, nil
}

// UpdateSchedule applies a partial patch to one schedule
func UpdateSchedule(ctx context.Context, db Querier, id int64, patch models.UpdateScheduleRequest) error {
	sets := []string{}
	args := []any{}
	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Start != nil {
		add("start_date", *patch.Start)
	}
	if patch.End != nil {
		add("end_date", *patch.End)
	}
	if patch.Project != nil {
		add("project", *patch.Project)
	}
	if patch.Attendees != nil {
		add("attendees", *patch.Attendees)
	}
	if patch.Time != nil {
		add("time_of_day", *patch.Time)
	}
	if patch.Type != nil {
		add("type", *patch.Type)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE schedules SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(sets, ", "), len(args),
	)

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update schedule %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MoveSchedules updates start/end for every listed schedule. Callers pass
// a transaction so a batch move commits atomically.
func MoveSchedules(ctx context.Context, db Querier, ids []int64, start, end time.Time) error {
	query := `
		UPDATE schedules
		SET start_date = $1, end_date = $2, updated_at = NOW()
		WHERE id = ANY($3)
	`

	tag, err := db.Exec(ctx, query, start, end, ids)
	if err != nil {
		return fmt.Errorf("failed to move schedules: %w", err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return fmt.Errorf("moved %d of %d schedules: %w", tag.RowsAffected(), len(ids), ErrNotFound)
	}
	return nil
}

// DeleteSchedules removes every listed schedule; callers pass a transaction
func DeleteSchedules(ctx context.Context, db Querier, ids []int64) error {
	tag, err := db.Exec(ctx, `DELETE FROM schedules WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("failed to delete schedules: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// IsNotFound reports whether err is the store's not-found sentinel
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, pgx.ErrNoRows)
}

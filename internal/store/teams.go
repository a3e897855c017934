package store

import (
	"context"
	"fmt"

	"github.com/HVLAB-SJ/hvlab-go/internal/calendar"
)

// LoadTeamDirectory reads the teams table into the alias map the calendar
// pipeline matches attendees against.
func LoadTeamDirectory(ctx context.Context, db Querier) (calendar.TeamDirectory, error) {
	rows, err := db.Query(ctx, `SELECT name, members FROM teams`)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	dir := calendar.TeamDirectory{}
	for rows.Next() {
		var name string
		var members []string
		if err := rows.Scan(&name, &members); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		dir[name] = members
	}
	return dir, rows.Err()
}

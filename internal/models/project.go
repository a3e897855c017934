package models

import (
	"time"
)

// Project represents an interior renovation project
type Project struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Location  string     `json:"location"` // address text, may contain a unit token like "2105호"
	Status    string     `json:"status"`   // planned, in_progress, completed
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ProjectListResponse is the response for project list queries
type ProjectListResponse struct {
	Projects []Project `json:"projects"`
	Total    int       `json:"total"`
}

package models

import (
	"time"
)

// Schedule represents a single manually created schedule entry
type Schedule struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	Project     string     `json:"project"`
	Attendees   []string   `json:"attendees"`
	Time        *string    `json:"time,omitempty"` // "HH:MM" or "-" when unset
	Type        *string    `json:"type,omitempty"` // construction, material, inspection, meeting, other
	Description *string    `json:"description,omitempty"`
	ASRequestID *int64     `json:"as_request_id,omitempty"`
	CreatedBy   *string    `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// CreateScheduleRequest is the request body for creating a schedule
type CreateScheduleRequest struct {
	Title       string   `json:"title" binding:"required"`
	Start       string   `json:"start" binding:"required"` // YYYY-MM-DD
	End         string   `json:"end,omitempty"`
	Project     string   `json:"project" binding:"required"`
	Attendees   []string `json:"attendees,omitempty"`
	Time        *string  `json:"time,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// UpdateScheduleRequest is a partial patch against a schedule
type UpdateScheduleRequest struct {
	Title       *string   `json:"title,omitempty"`
	Start       *string   `json:"start,omitempty"`
	End         *string   `json:"end,omitempty"`
	Project     *string   `json:"project,omitempty"`
	Attendees   *[]string `json:"attendees,omitempty"`
	Time        *string   `json:"time,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Description *string   `json:"description,omitempty"`
}

// MoveSchedulesRequest moves every listed schedule to a new date range
type MoveSchedulesRequest struct {
	IDs   []int64 `json:"ids" binding:"required"`
	Start string  `json:"start" binding:"required"` // YYYY-MM-DD
	End   string  `json:"end,omitempty"`
}

// CopySchedulesRequest duplicates every listed schedule at a new date
type CopySchedulesRequest struct {
	IDs  []int64 `json:"ids" binding:"required"`
	Date string  `json:"date" binding:"required"` // YYYY-MM-DD
}

// DeleteSchedulesRequest removes every listed schedule in one transaction
type DeleteSchedulesRequest struct {
	IDs []int64 `json:"ids" binding:"required"`
}

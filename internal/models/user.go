package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleManager    = "manager"
	RoleStaff      = "staff"
	RoleFieldStaff = "field_staff" // restricted cohort: sees only permitted projects
)

// User represents an application user
type User struct {
	ID              uuid.UUID  `json:"id"`
	Username        string     `json:"username"`
	Name            string     `json:"name"` // display name used for attendee matching
	Role            string     `json:"role"`
	LoginEnabled    bool       `json:"login_enabled"`
	AllowedProjects []string   `json:"allowed_projects,omitempty"` // field_staff only
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// CalendarPrefs is the typed per-user calendar state that the web client
// previously scattered across localStorage keys.
type CalendarPrefs struct {
	LastProjectFilter string   `json:"last_project_filter"`
	HiddenEventIDs    []string `json:"hidden_event_ids"`
	AppliedProcessIDs []string `json:"applied_process_ids"`
}

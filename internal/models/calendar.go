package models

import (
	"time"
)

// Event types produced by the calendar adapters
const (
	EventConstruction    = "construction"
	EventMaterial        = "material"
	EventInspection      = "inspection"
	EventMeeting         = "meeting"
	EventOther           = "other"
	EventASVisit         = "as_visit"
	EventExpectedPayment = "expected_payment"
)

// PrivateProjectSentinel marks a personal schedule not tied to any project
const PrivateProjectSentinel = "비공개"

// PersonalScheduleLabel is the display name used for private schedules
const PersonalScheduleLabel = "[개인일정]"

// CalendarEvent is the uniform display event derived from schedules,
// AS requests and expected payment milestones. Instances are ephemeral:
// recomputed from the raw snapshots on every request, never persisted.
type CalendarEvent struct {
	ID                  string    `json:"id"`
	OriginalTitle       string    `json:"original_title"`
	Title               string    `json:"title"`
	Start               time.Time `json:"start"`
	End                 time.Time `json:"end"`
	ProjectName         string    `json:"project_name"`          // display form, possibly abbreviated
	OriginalProjectName string    `json:"original_project_name"` // authoritative for filtering
	Type                string    `json:"type"`
	AssignedTo          []string  `json:"assigned_to"`
	AllDay              bool      `json:"all_day"`
	IsASVisit           bool      `json:"is_as_visit"`
	IsExpectedPayment   bool      `json:"is_expected_payment"`
	Time                *string   `json:"time,omitempty"`
	Description         *string   `json:"description,omitempty"`
	MergedEventIDs      []string  `json:"merged_event_ids,omitempty"`
	ScheduleIDs         []int64   `json:"schedule_ids,omitempty"` // underlying raw schedule rows, for writes
}

// CalendarResponse is the API response for the consolidated calendar view
type CalendarResponse struct {
	Project string          `json:"project"`
	Events  []CalendarEvent `json:"events"`
	Total   int             `json:"total"`
}

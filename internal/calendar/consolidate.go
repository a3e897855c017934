package calendar

import (
	"github.com/HVLAB-SJ/hvlab-go/internal/models"
)

// Options selects the view the pipeline derives
type Options struct {
	Project string // AllProjects or an exact project name
	Viewer  Viewer
	Teams   TeamDirectory
}

// Consolidate runs the full derivation pipeline over a raw snapshot:
// adapt the three sources, apply the project/scope filter, merge or order
// same-day events, then assign synthetic render timestamps.
func Consolidate(src Sources, opts Options) []models.CalendarEvent {
	if opts.Project == "" {
		opts.Project = AllProjects
	}

	events := Adapt(src, opts.Viewer)
	events = FilterScope(events, opts.Project, opts.Viewer)
	events = MergeOrOrder(events, opts.Project, opts.Viewer, opts.Teams)
	return Resequence(events, opts.Project, opts.Viewer, opts.Teams)
}

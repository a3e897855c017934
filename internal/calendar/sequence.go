package calendar

import (
	"sort"
	"time"

	"github.com/HVLAB-SJ/hvlab-go/internal/models"
)

// othersOffset separates non-viewer events from viewer events within a day
const othersOffset = 1000 * time.Millisecond

// Resequence assigns synthetic sub-day start times so that the decided
// within-day order survives a plain sort by timestamp. The calendar day of
// every event is preserved; the millisecond offsets exist only for stable
// rendering and are never persisted.
//
// Specific project: the day's events get startOfDay + 0ms, 1ms, 2ms… in
// the order MergeOrOrder produced (creation order). All projects: viewer
// events get offsets 0, 1, 2…ms and everyone else's start at 1000ms, so
// viewer events always sort first within the day.
func Resequence(events []models.CalendarEvent, project string, viewer Viewer, teams TeamDirectory) []models.CalendarEvent {
	out := make([]models.CalendarEvent, len(events))
	copy(out, events)

	viewerIdx := make(map[string]int)
	otherIdx := make(map[string]int)

	for i := range out {
		day := startOfDay(out[i].Start)
		key := dayKey(out[i].Start)

		var synthetic time.Time
		if project != AllProjects {
			synthetic = day.Add(time.Duration(viewerIdx[key]) * time.Millisecond)
			viewerIdx[key]++
		} else if isViewerAttendee(out[i].AssignedTo, viewer, teams) {
			synthetic = day.Add(time.Duration(viewerIdx[key]) * time.Millisecond)
			viewerIdx[key]++
		} else {
			synthetic = day.Add(othersOffset + time.Duration(otherIdx[key])*time.Millisecond)
			otherIdx[key]++
		}

		// Only the start moves; End keeps its own day so multi-day
		// schedules still span their full range.
		if !out[i].End.IsZero() && out[i].End.After(synthetic) {
			out[i].End = startOfDay(out[i].End).Add(synthetic.Sub(day))
		} else {
			out[i].End = synthetic
		}
		out[i].Start = synthetic
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// dayKey is the local calendar day of a timestamp as YYYY-MM-DD
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// startOfDay truncates a timestamp to local midnight
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package calendar

import (
	"sort"
	"strconv"
	"strings"

	"github.com/HVLAB-SJ/hvlab-go/internal/models"
)

// MergeOrOrder decides how same-day events are combined and ordered.
//
// For the all-projects view, events sharing (day, display project, attendee
// set) fold into one visual event; AS visits and expected payments always
// stay singletons. For a specific project nothing merges and events keep
// creation order (ascending numeric id) within the day.
func MergeOrOrder(events []models.CalendarEvent, project string, viewer Viewer, teams TeamDirectory) []models.CalendarEvent {
	if project != AllProjects {
		out := make([]models.CalendarEvent, len(events))
		copy(out, events)
		sort.SliceStable(out, func(i, j int) bool {
			di, dj := dayKey(out[i].Start), dayKey(out[j].Start)
			if di != dj {
				return di < dj
			}
			return creationOrder(out[i]) < creationOrder(out[j])
		})
		return out
	}

	merged := mergeAll(events)

	// Viewer-assigned events always render before everyone else's,
	// ties broken by start time.
	sort.SliceStable(merged, func(i, j int) bool {
		di, dj := dayKey(merged[i].Start), dayKey(merged[j].Start)
		if di != dj {
			return di < dj
		}
		mi := isViewerAttendee(merged[i].AssignedTo, viewer, teams)
		mj := isViewerAttendee(merged[j].AssignedTo, viewer, teams)
		if mi != mj {
			return mi
		}
		return merged[i].Start.Before(merged[j].Start)
	})
	return merged
}

// mergeAll partitions events into merge groups and folds each group.
// AS visit and expected payment events are never grouped.
func mergeAll(events []models.CalendarEvent) []models.CalendarEvent {
	type group struct {
		members []models.CalendarEvent
	}

	var order []string
	groups := make(map[string]*group)
	singletonSeq := 0

	for _, ev := range events {
		var key string
		if ev.IsASVisit || ev.IsExpectedPayment {
			key = "single:" + strconv.Itoa(singletonSeq)
			singletonSeq++
		} else {
			key = mergeKey(ev)
		}
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		g.members = append(g.members, ev)
	}

	out := make([]models.CalendarEvent, 0, len(order))
	for _, key := range order {
		out = append(out, fold(groups[key].members))
	}
	return out
}

// mergeKey identifies events that render as one: same calendar day, same
// display project, same attendee set regardless of order.
func mergeKey(ev models.CalendarEvent) string {
	attendees := make([]string, len(ev.AssignedTo))
	copy(attendees, ev.AssignedTo)
	sort.Strings(attendees)
	return dayKey(ev.Start) + "|" + ev.ProjectName + "|" + strings.Join(attendees, ",")
}

// fold combines a merge group into a single visual event. A group of one
// passes through untouched.
func fold(members []models.CalendarEvent) models.CalendarEvent {
	if len(members) == 1 {
		return members[0]
	}

	ev := members[0]

	var titles, times, descs, ids []string
	var attendees []string
	seenTitle := make(map[string]bool)
	seenTime := make(map[string]bool)
	seenAttendee := make(map[string]bool)
	allDay := true
	var scheduleIDs []int64

	for _, m := range members {
		title := stripProjectPrefix(m.OriginalTitle, m.ProjectName)
		if !seenTitle[title] {
			seenTitle[title] = true
			titles = append(titles, title)
		}
		if m.Time != nil && !seenTime[*m.Time] {
			seenTime[*m.Time] = true
			times = append(times, *m.Time)
		}
		if m.Description != nil && *m.Description != "" {
			descs = append(descs, *m.Description)
		} else {
			descs = append(descs, m.OriginalTitle)
		}
		for _, a := range m.AssignedTo {
			if !seenAttendee[a] {
				seenAttendee[a] = true
				attendees = append(attendees, a)
			}
		}
		ids = append(ids, m.ID)
		scheduleIDs = append(scheduleIDs, m.ScheduleIDs...)
		if m.Start.Before(ev.Start) {
			ev.Start = m.Start
		}
		if m.End.After(ev.End) {
			ev.End = m.End
		}
		if !m.AllDay {
			allDay = false
		}
	}

	ev.OriginalTitle = strings.Join(titles, ", ")
	ev.Title = ev.OriginalTitle
	if len(times) > 0 {
		ev.Title += " - " + strings.Join(times, ", ")
	}
	desc := strings.Join(descs, "\n")
	ev.Description = &desc
	ev.AssignedTo = attendees
	ev.AllDay = allDay
	ev.Time = nil
	ev.MergedEventIDs = ids
	ev.ScheduleIDs = scheduleIDs
	return ev
}

// stripProjectPrefix drops a display project name already embedded at the
// front of a constituent title so the merged title does not repeat it.
func stripProjectPrefix(title, projectName string) string {
	if projectName == "" {
		return title
	}
	trimmed := strings.TrimPrefix(title, projectName)
	if trimmed == title {
		return title
	}
	return strings.TrimLeft(trimmed, " -")
}

// creationOrder extracts the numeric id used for within-day ordering in
// the specific-project view. Schedule-backed events use their first raw
// schedule id; other events fall back to the digits of their event id.
func creationOrder(ev models.CalendarEvent) int64 {
	if len(ev.ScheduleIDs) > 0 {
		return ev.ScheduleIDs[0]
	}
	start := 0
	for start < len(ev.ID) && (ev.ID[start] < '0' || ev.ID[start] > '9') {
		start++
	}
	end := start
	for end < len(ev.ID) && ev.ID[end] >= '0' && ev.ID[end] <= '9' {
		end++
	}
	n, err := strconv.ParseInt(ev.ID[start:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

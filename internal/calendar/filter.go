package calendar

import (
	"github.com/HVLAB-SJ/hvlab-go/internal/models"
)

// FilterScope reduces the adapted event set to what the active project
// filter and the viewer's access scope permit. Matching always uses
// OriginalProjectName; the abbreviated display name is never compared.
func FilterScope(events []models.CalendarEvent, project string, viewer Viewer) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0, len(events))

	var allowed map[string]bool
	if viewer.Restricted() {
		allowed = make(map[string]bool, len(viewer.AllowedProjects))
		for _, p := range viewer.AllowedProjects {
			allowed[p] = true
		}
	}

	for _, ev := range events {
		if allowed != nil {
			// Personal schedules stay visible to restricted users
			if !allowed[ev.OriginalProjectName] && ev.OriginalProjectName != models.PrivateProjectSentinel {
				continue
			}
		}
		if project != AllProjects && ev.OriginalProjectName != project {
			continue
		}
		out = append(out, ev)
	}
	return out
}

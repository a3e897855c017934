// Package calendar derives the display-ready calendar event list from the
// raw schedule, AS request and construction payment snapshots. Everything
// in this package is a pure transformation: it never touches the database
// and its synthetic timestamps are never written back.
package calendar

// AllProjects is the project filter value meaning "no project restriction"
const AllProjects = "all"

// TeamWildcard marks an event assigned to everyone
const TeamWildcard = "전체"

// TeamDirectory maps a team alias (e.g. "필드팀") to its member names.
// Loaded from the teams table; replaces the inline member-name lists the
// old client repeated at each call site.
type TeamDirectory map[string][]string

// IsMember reports whether name belongs to the named team
func (d TeamDirectory) IsMember(team, name string) bool {
	for _, m := range d[team] {
		if m == name {
			return true
		}
	}
	return false
}

// Viewer identifies the requesting user for scope and ordering decisions
type Viewer struct {
	Name            string
	Role            string
	AllowedProjects []string // non-nil for the restricted field-staff cohort
}

// Restricted reports whether the viewer only sees a permitted project set
func (v Viewer) Restricted() bool {
	return v.AllowedProjects != nil
}

// isViewerAttendee reports whether the viewer counts as an attendee of the
// event: named directly, covered by the wildcard token, or a member of a
// team alias listed as attendee.
func isViewerAttendee(attendees []string, v Viewer, teams TeamDirectory) bool {
	for _, a := range attendees {
		if a == v.Name || a == TeamWildcard {
			return true
		}
		if teams.IsMember(a, v.Name) {
			return true
		}
	}
	return false
}

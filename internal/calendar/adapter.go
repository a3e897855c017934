package calendar

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/HVLAB-SJ/hvlab-go/internal/models"
)

// Sources is the raw in-memory snapshot the pipeline derives events from
type Sources struct {
	Schedules  []models.Schedule
	ASRequests []models.ASRequest
	Payments   []models.ConstructionPayment
	Projects   []models.Project
}

// unitPattern matches a unit token in a project location string:
// digits optionally prefixed by one letter, followed by 호
// (e.g. "서울 강남구 ... 2105호" → "2105", "B102호" → "B102").
var unitPattern = regexp.MustCompile(`([A-Za-z]?\d+)호`)

// DisplayProjectName builds the abbreviated display form of a project name:
// first two characters of the name plus the unit token from the location,
// joined as "prefix_unit". Without a unit token only the prefix is used.
// The private sentinel renders as the personal-schedule label.
func DisplayProjectName(name, location string) string {
	if name == models.PrivateProjectSentinel {
		return models.PersonalScheduleLabel
	}
	if name == "" {
		return ""
	}

	runes := []rune(name)
	prefix := name
	if len(runes) > 2 {
		prefix = string(runes[:2])
	}

	if m := unitPattern.FindStringSubmatch(location); m != nil {
		return prefix + "_" + m[1]
	}
	return prefix
}

// Adapt converts the raw snapshot into the uniform CalendarEvent list.
// Expected-payment events are only emitted for manager-role viewers.
func Adapt(src Sources, viewer Viewer) []models.CalendarEvent {
	locations := make(map[string]string, len(src.Projects))
	for _, p := range src.Projects {
		locations[p.Name] = p.Location
	}

	events := adaptSchedules(src.Schedules, locations)
	events = append(events, adaptASRequests(src.ASRequests, locations)...)
	if viewer.Role == models.RoleManager {
		events = append(events, adaptPayments(src.Payments, locations)...)
	}
	return events
}

// adaptSchedules maps manual schedule rows to calendar events. Schedules
// linked to an AS request are skipped: the AS adapter already represents
// them and a second event would duplicate the visit.
func adaptSchedules(schedules []models.Schedule, locations map[string]string) []models.CalendarEvent {
	events := make([]models.CalendarEvent, 0, len(schedules))
	for _, s := range schedules {
		if s.ASRequestID != nil {
			continue
		}

		ev := models.CalendarEvent{
			ID:                  "s" + strconv.FormatInt(s.ID, 10),
			OriginalTitle:       s.Title,
			Title:               s.Title,
			Start:               s.Start,
			End:                 s.End,
			ProjectName:         DisplayProjectName(s.Project, locations[s.Project]),
			OriginalProjectName: s.Project,
			Type:                models.EventOther,
			AssignedTo:          s.Attendees,
			AllDay:              true,
			Description:         s.Description,
			ScheduleIDs:         []int64{s.ID},
		}
		if s.Type != nil && *s.Type != "" {
			ev.Type = *s.Type
		}
		if hasTime(s.Time) {
			ev.Title = s.Title + " - " + *s.Time
			ev.Time = s.Time
			ev.AllDay = false
		}
		events = append(events, ev)
	}
	return events
}

// adaptASRequests maps AS visit requests with a scheduled date to events.
// These are never mergeable and never editable through the calendar.
func adaptASRequests(requests []models.ASRequest, locations map[string]string) []models.CalendarEvent {
	events := make([]models.CalendarEvent, 0, len(requests))
	for _, r := range requests {
		if r.ScheduledVisitDate == nil {
			continue
		}

		display := DisplayProjectName(r.Project, locations[r.Project])
		ev := models.CalendarEvent{
			ID:                  "as" + strconv.FormatInt(r.ID, 10),
			OriginalTitle:       "[AS] " + display,
			Title:               "[AS] " + display,
			Start:               *r.ScheduledVisitDate,
			End:                 *r.ScheduledVisitDate,
			ProjectName:         display,
			OriginalProjectName: r.Project,
			Type:                models.EventASVisit,
			AssignedTo:          r.AssignedTo,
			AllDay:              true,
			IsASVisit:           true,
			Description:         r.Description,
		}
		if hasTime(r.ScheduledVisitTime) {
			ev.Title = ev.Title + " - " + *r.ScheduledVisitTime
			ev.Time = r.ScheduledVisitTime
			ev.AllDay = false
		}
		events = append(events, ev)
	}
	return events
}

// milestoneKeys maps milestone display names to stable id suffixes
var milestoneKeys = map[string]string{
	models.MilestoneContract: "contract",
	models.MilestoneStart:    "start",
	models.MilestoneMiddle:   "middle",
	models.MilestoneFinal:    "final",
}

// adaptPayments emits up to four expected-payment milestone events per
// construction payment record. A milestone is skipped when it is already
// received or has no configured expected date.
func adaptPayments(payments []models.ConstructionPayment, locations map[string]string) []models.CalendarEvent {
	var events []models.CalendarEvent
	for _, p := range payments {
		display := DisplayProjectName(p.Project, locations[p.Project])
		for _, milestone := range models.MilestoneOrder {
			if milestoneReceived(p.Payments, milestone) {
				continue
			}
			date := p.ExpectedPaymentDates.ByMilestone(milestone)
			if date == nil {
				continue
			}

			amount := milestoneAmount(p, milestone)
			desc := fmt.Sprintf("%s 예상 수금액 %s원", display, formatWon(amount))
			events = append(events, models.CalendarEvent{
				ID:                  fmt.Sprintf("pm%d-%s", p.ID, milestoneKeys[milestone]),
				OriginalTitle:       "[수금일정] " + milestone,
				Title:               "[수금일정] " + milestone,
				Start:               *date,
				End:                 *date,
				ProjectName:         display,
				OriginalProjectName: p.Project,
				Type:                models.EventExpectedPayment,
				AssignedTo:          []string{},
				AllDay:              true,
				IsExpectedPayment:   true,
				Description:         &desc,
			})
		}
	}
	return events
}

// milestoneReceived checks the comma-joined type field of every received
// payment entry for the milestone name.
func milestoneReceived(entries []models.PaymentEntry, milestone string) bool {
	for _, e := range entries {
		for _, t := range strings.Split(e.Type, ",") {
			if strings.TrimSpace(t) == milestone {
				return true
			}
		}
	}
	return false
}

// milestoneAmount is the milestone's fixed percentage of the VAT-inclusive
// contract total, rounded to the nearest won.
func milestoneAmount(p models.ConstructionPayment, milestone string) int64 {
	pct := models.MilestonePercent[milestone]
	return int64(math.Round(float64(p.TotalWithVAT()) * float64(pct) / 100))
}

// formatWon renders an amount with thousands separators (12345678 → "12,345,678")
func formatWon(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// hasTime reports whether a time-of-day value is actually set;
// "-" is the legacy placeholder for "no time".
func hasTime(t *string) bool {
	return t != nil && *t != "" && *t != "-"
}

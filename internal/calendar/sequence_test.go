package calendar

import (
	"testing"
	"time"

	"github.com/HVLAB-SJ/hvlab-go/internal/models"
)

func TestResequence_SpecificProjectOffsets(t *testing.T) {
	events := []models.CalendarEvent{
		schedEvent(3, "철거", "강남 오피스텔", "김민수"),
		schedEvent(7, "전기", "강남 오피스텔", "박지은"),
		schedEvent(12, "설비", "강남 오피스텔", "김민수"),
	}

	got := Resequence(events, "강남 오피스텔", Viewer{Name: "김민수"}, nil)
	day := date(2025, 3, 10)
	for i, ev := range got {
		want := day.Add(time.Duration(i) * time.Millisecond)
		if !ev.Start.Equal(want) {
			t.Errorf("event %d: got start %v, want %v", i, ev.Start, want)
		}
	}
}

func TestResequence_AllProjectsViewerFirst(t *testing.T) {
	mine := schedEvent(1, "철거", "강남 오피스텔", "김민수")
	other := schedEvent(2, "설비", "반포 자이", "박지은")
	other2 := schedEvent(3, "목공", "한남 더힐", "박지은")

	// Input already ordered viewer-first by MergeOrOrder.
	got := Resequence([]models.CalendarEvent{mine, other, other2}, AllProjects, Viewer{Name: "김민수"}, nil)

	day := date(2025, 3, 10)
	if !got[0].Start.Equal(day) {
		t.Errorf("viewer event: got start %v, want %v", got[0].Start, day)
	}
	if !got[1].Start.Equal(day.Add(1000 * time.Millisecond)) {
		t.Errorf("first other event: got start %v, want +1000ms", got[1].Start)
	}
	if !got[2].Start.Equal(day.Add(1001 * time.Millisecond)) {
		t.Errorf("second other event: got start %v, want +1001ms", got[2].Start)
	}

	// Viewer events must precede others once sorted by timestamp.
	if got[0].ID != "s1" {
		t.Errorf("got first event %s, want viewer's s1", got[0].ID)
	}
}

func TestResequence_DayRoundTrip(t *testing.T) {
	events := []models.CalendarEvent{}
	for i := int64(1); i <= 5; i++ {
		ev := schedEvent(i, "철거", "강남 오피스텔", "김민수")
		ev.Start = time.Date(2025, 3, 10, 23, 50, 0, 0, time.Local)
		ev.End = ev.Start
		events = append(events, ev)
	}

	got := Resequence(events, AllProjects, Viewer{Name: "김민수"}, nil)
	for _, ev := range got {
		if dayKey(ev.Start) != "2025-03-10" {
			t.Errorf("event %s: synthetic start changed the calendar day to %s", ev.ID, dayKey(ev.Start))
		}
	}
}

func TestResequence_MultiDayEndPreserved(t *testing.T) {
	long := schedEvent(1, "철거", "강남 오피스텔", "김민수")
	long.End = long.Start.AddDate(0, 0, 3)
	short := schedEvent(2, "설비", "강남 오피스텔", "김민수")

	got := Resequence([]models.CalendarEvent{long, short}, "강남 오피스텔", Viewer{Name: "김민수"}, nil)
	if dayKey(got[0].End) != "2025-03-13" {
		t.Errorf("multi-day event: got end day %s, want 2025-03-13", dayKey(got[0].End))
	}
	if !got[0].End.After(got[0].Start) {
		t.Errorf("multi-day event: end %v must stay after start %v", got[0].End, got[0].Start)
	}
	if dayKey(got[1].End) != "2025-03-10" {
		t.Errorf("single-day event: got end day %s, want 2025-03-10", dayKey(got[1].End))
	}
}

func TestResequence_PerDayCountersIndependent(t *testing.T) {
	a := schedEvent(1, "철거", "강남 오피스텔", "김민수")
	b := schedEvent(2, "설비", "강남 오피스텔", "김민수")
	b.Start = date(2025, 3, 11)
	b.End = b.Start

	got := Resequence([]models.CalendarEvent{a, b}, AllProjects, Viewer{Name: "김민수"}, nil)
	if !got[0].Start.Equal(date(2025, 3, 10)) {
		t.Errorf("day one: got %v, want midnight offset 0", got[0].Start)
	}
	if !got[1].Start.Equal(date(2025, 3, 11)) {
		t.Errorf("day two: got %v, want midnight offset 0 (fresh counter)", got[1].Start)
	}
}

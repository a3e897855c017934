package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/HVLAB-SJ/hvlab-go/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func strp(s string) *string { return &s }

func i64p(n int64) *int64 { return &n }

func TestDisplayProjectName(t *testing.T) {
	tests := []struct {
		name     string
		project  string
		location string
		want     string
	}{
		{"unit token", "강남 오피스텔", "서울 강남구 테헤란로 2105호", "강남_2105"},
		{"letter prefixed unit", "반포 자이", "서울 서초구 반포동 B102호", "반포_B102"},
		{"no unit token", "한남 더힐", "서울 용산구 한남동", "한남"},
		{"short name", "목동", "양천구 목동 703호", "목동_703"},
		{"private sentinel", models.PrivateProjectSentinel, "", models.PersonalScheduleLabel},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		if got := DisplayProjectName(tt.project, tt.location); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestAdaptSchedules_SkipsASLinked(t *testing.T) {
	schedules := []models.Schedule{
		{ID: 1, Title: "철거", Start: date(2025, 3, 10), End: date(2025, 3, 10), Project: "강남 오피스텔"},
		{ID: 2, Title: "AS 방문", Start: date(2025, 3, 10), End: date(2025, 3, 10), Project: "강남 오피스텔", ASRequestID: i64p(7)},
	}

	events := adaptSchedules(schedules, nil)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1 (AS-linked schedule must be skipped)", len(events))
	}
	if events[0].ID != "s1" {
		t.Errorf("got id %q, want s1", events[0].ID)
	}
}

func TestAdaptSchedules_TimeHandling(t *testing.T) {
	schedules := []models.Schedule{
		{ID: 1, Title: "실측", Start: date(2025, 3, 10), End: date(2025, 3, 10), Project: "강남 오피스텔", Time: strp("10:00")},
		{ID: 2, Title: "철거", Start: date(2025, 3, 10), End: date(2025, 3, 10), Project: "강남 오피스텔", Time: strp("-")},
		{ID: 3, Title: "설비", Start: date(2025, 3, 10), End: date(2025, 3, 10), Project: "강남 오피스텔"},
	}

	events := adaptSchedules(schedules, nil)
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	if events[0].AllDay {
		t.Error("timed schedule: AllDay should be false")
	}
	if events[0].Title != "실측 - 10:00" {
		t.Errorf("timed schedule: got title %q, want %q", events[0].Title, "실측 - 10:00")
	}
	if events[0].OriginalTitle != "실측" {
		t.Errorf("timed schedule: original title must stay %q, got %q", "실측", events[0].OriginalTitle)
	}

	for _, ev := range events[1:] {
		if !ev.AllDay {
			t.Errorf("event %s: placeholder/missing time must yield AllDay", ev.ID)
		}
		if ev.Title != ev.OriginalTitle {
			t.Errorf("event %s: no time suffix expected, got %q", ev.ID, ev.Title)
		}
	}
}

func TestAdaptSchedules_MissingProjectLinkage(t *testing.T) {
	// A schedule whose project has no matching project row still produces
	// an event, just with a bare prefix display name.
	schedules := []models.Schedule{
		{ID: 9, Title: "자재 입고", Start: date(2025, 3, 11), End: date(2025, 3, 11), Project: "성수 창고"},
	}
	events := adaptSchedules(schedules, map[string]string{})
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].ProjectName != "성수" {
		t.Errorf("got display name %q, want %q", events[0].ProjectName, "성수")
	}
	if events[0].OriginalProjectName != "성수 창고" {
		t.Errorf("original project name must be preserved, got %q", events[0].OriginalProjectName)
	}
}

func TestAdaptASRequests(t *testing.T) {
	visit := date(2025, 4, 1)
	requests := []models.ASRequest{
		{ID: 3, Project: "강남 오피스텔", AssignedTo: models.StringList{"현장팀"}, ScheduledVisitDate: &visit},
		{ID: 4, Project: "강남 오피스텔", AssignedTo: models.StringList{"김민수"}}, // no visit date
	}
	locations := map[string]string{"강남 오피스텔": "테헤란로 2105호"}

	events := adaptASRequests(requests, locations)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1 (dateless request omitted)", len(events))
	}

	ev := events[0]
	if ev.Type != models.EventASVisit || !ev.IsASVisit {
		t.Errorf("got type %q isASVisit=%v, want as_visit/true", ev.Type, ev.IsASVisit)
	}
	if !strings.HasPrefix(ev.Title, "[AS] ") {
		t.Errorf("got title %q, want [AS] prefix", ev.Title)
	}
	if ev.ID != "as3" {
		t.Errorf("got id %q, want as3", ev.ID)
	}
}

func TestAdaptPayments_MilestoneGating(t *testing.T) {
	contract := date(2025, 2, 1)
	middle := date(2025, 5, 1)
	payments := []models.ConstructionPayment{
		{
			ID:            5,
			Project:       "강남 오피스텔",
			TotalAmount:   100000000,
			VATType:       "separate",
			VATPercentage: 10,
			VATAmount:     10000000,
			Payments: []models.PaymentEntry{
				{ID: 1, Type: "착수금,중도금", Amount: 88000000, ReceivedAt: date(2025, 3, 1)},
			},
			ExpectedPaymentDates: models.ExpectedPaymentDates{
				Contract: &contract,
				Middle:   &middle, // received, must be gated out
			},
		},
	}

	events := adaptPayments(payments, nil)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1 (received milestone and dateless milestones omitted)", len(events))
	}

	ev := events[0]
	if ev.Title != "[수금일정] "+models.MilestoneContract {
		t.Errorf("got title %q, want %q", ev.Title, "[수금일정] 계약금")
	}
	if !ev.IsExpectedPayment || ev.Type != models.EventExpectedPayment {
		t.Errorf("got type %q isExpectedPayment=%v", ev.Type, ev.IsExpectedPayment)
	}
	// 10% of 110,000,000 (total + separate VAT)
	if ev.Description == nil || !strings.Contains(*ev.Description, "11,000,000") {
		t.Errorf("description should carry the rounded milestone amount, got %v", ev.Description)
	}
}

func TestAdapt_PaymentsManagerOnly(t *testing.T) {
	contract := date(2025, 2, 1)
	src := Sources{
		Payments: []models.ConstructionPayment{
			{ID: 1, Project: "강남 오피스텔", TotalAmount: 50000000, VATType: "included",
				ExpectedPaymentDates: models.ExpectedPaymentDates{Contract: &contract}},
		},
	}

	if events := Adapt(src, Viewer{Name: "김민수", Role: models.RoleStaff}); len(events) != 0 {
		t.Fatalf("staff viewer: got %d payment events, want 0", len(events))
	}
	if events := Adapt(src, Viewer{Name: "김실장", Role: models.RoleManager}); len(events) != 1 {
		t.Fatalf("manager viewer: got %d payment events, want 1", len(events))
	}
}

func TestFormatWon(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{11000000, "11,000,000"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		if got := formatWon(tt.in); got != tt.want {
			t.Errorf("formatWon(%d): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

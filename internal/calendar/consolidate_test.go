package calendar

import (
	"testing"

	"github.com/HVLAB-SJ/hvlab-go/internal/models"
)

// End-to-end pipeline checks over a realistic mixed snapshot.

func consolidateFixture() Sources {
	visit := date(2025, 4, 1)
	contract := date(2025, 2, 1)
	return Sources{
		Schedules: []models.Schedule{
			{ID: 1, Title: "철거", Start: date(2025, 3, 10), End: date(2025, 3, 10),
				Project: "강남 오피스텔", Attendees: []string{"김민수"}},
			{ID: 2, Title: "설비", Start: date(2025, 3, 10), End: date(2025, 3, 10),
				Project: "강남 오피스텔", Attendees: []string{"김민수"}},
			{ID: 3, Title: "타일", Start: date(2025, 3, 10), End: date(2025, 3, 10),
				Project: "반포 자이", Attendees: []string{"박지은"}},
		},
		ASRequests: []models.ASRequest{
			{ID: 4, Project: "강남 오피스텔", AssignedTo: models.StringList{"현장팀"}, ScheduledVisitDate: &visit},
		},
		Payments: []models.ConstructionPayment{
			{ID: 5, Project: "반포 자이", TotalAmount: 100000000, VATType: "separate", VATAmount: 10000000,
				ExpectedPaymentDates: models.ExpectedPaymentDates{Contract: &contract}},
		},
		Projects: []models.Project{
			{ID: 1, Name: "강남 오피스텔", Location: "테헤란로 2105호"},
			{ID: 2, Name: "반포 자이", Location: "반포동 B102호"},
		},
	}
}

func TestConsolidate_AllProjectsManager(t *testing.T) {
	got := Consolidate(consolidateFixture(), Options{
		Project: AllProjects,
		Viewer:  Viewer{Name: "김민수", Role: models.RoleManager},
	})

	// 철거+설비 merge into one; 타일, AS visit and payment stay distinct.
	if len(got) != 4 {
		t.Fatalf("got %d events, want 4", len(got))
	}

	var merged *models.CalendarEvent
	for i := range got {
		if got[i].MergedEventIDs != nil {
			if merged != nil {
				t.Fatal("more than one merged event")
			}
			merged = &got[i]
		}
	}
	if merged == nil {
		t.Fatal("no merged event produced")
	}
	if merged.Title != "철거, 설비" {
		t.Errorf("got merged title %q, want %q", merged.Title, "철거, 설비")
	}
	if dayKey(merged.Start) != "2025-03-10" {
		t.Errorf("merged event day drifted to %s", dayKey(merged.Start))
	}
}

func TestConsolidate_StaffSeesNoPayments(t *testing.T) {
	got := Consolidate(consolidateFixture(), Options{
		Project: AllProjects,
		Viewer:  Viewer{Name: "박지은", Role: models.RoleStaff},
	})
	for _, ev := range got {
		if ev.IsExpectedPayment {
			t.Fatalf("staff viewer received expected-payment event %s", ev.ID)
		}
	}
}

func TestConsolidate_SpecificProjectNoMerge(t *testing.T) {
	got := Consolidate(consolidateFixture(), Options{
		Project: "강남 오피스텔",
		Viewer:  Viewer{Name: "김민수", Role: models.RoleStaff},
	})

	// Both 강남 schedules plus nothing else on 2025-03-10; AS visit keeps
	// its own day. No merging in the specific view.
	for _, ev := range got {
		if ev.MergedEventIDs != nil {
			t.Fatalf("specific project view merged event %s", ev.ID)
		}
		if ev.OriginalProjectName != "강남 오피스텔" {
			t.Fatalf("foreign project event %s leaked through the filter", ev.ID)
		}
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3 (two schedules + AS visit)", len(got))
	}
	if got[0].ID != "s1" || got[1].ID != "s2" {
		t.Errorf("creation order violated: %s, %s", got[0].ID, got[1].ID)
	}
}

package handlers

import (
	"testing"

	"github.com/HVLAB-SJ/hvlab-go/internal/models"
)

func TestFieldStaffProjects_FailsClosed(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want []string
	}{
		{"missing users row", nil, []string{}},
		{"row without project list", &models.User{Name: "최실장"}, []string{}},
		{
			"configured cohort",
			&models.User{Name: "최실장", AllowedProjects: []string{"강남", "서초"}},
			[]string{"강남", "서초"},
		},
	}

	for _, tt := range tests {
		got := fieldStaffProjects(tt.user)
		if got == nil {
			t.Fatalf("%s: cohort must never be nil", tt.name)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("%s: got %v, want %v", tt.name, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("%s: got %v, want %v", tt.name, got, tt.want)
			}
		}
	}
}

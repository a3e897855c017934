package handlers

import (
	"net/http"
	"time"

	"github.com/HVLAB-SJ/hvlab-go/internal/calendar"
	"github.com/HVLAB-SJ/hvlab-go/internal/middleware"
	"github.com/HVLAB-SJ/hvlab-go/internal/models"
	"github.com/HVLAB-SJ/hvlab-go/internal/store"
	"github.com/gin-gonic/gin"
)

// GetCalendarEvents derives the consolidated event list for the requested
// project filter and date window. The derivation is recomputed from the
// current snapshots on every call; nothing here is persisted.
func GetCalendarEvents(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	name, _ := middleware.GetAuthName(c)
	role, _ := middleware.GetAuthRole(c)
	ctx := c.Request.Context()

	project := c.DefaultQuery("project", calendar.AllProjects)

	start, end, err := dateWindow(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	viewer := calendar.Viewer{Name: name, Role: role}
	if role == models.RoleFieldStaff {
		user, err := store.GetUserByName(ctx, db, name)
		if err != nil && !store.IsNotFound(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve viewer", "details": err.Error()})
			return
		}
		viewer.AllowedProjects = fieldStaffProjects(user)
	}

	schedules, err := store.ListSchedules(ctx, db, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schedules", "details": err.Error()})
		return
	}
	asRequests, err := store.ListASRequests(ctx, db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load AS requests", "details": err.Error()})
		return
	}
	payments, err := store.ListPayments(ctx, db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments", "details": err.Error()})
		return
	}
	projects, err := store.ListProjects(ctx, db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects", "details": err.Error()})
		return
	}
	teams, err := store.LoadTeamDirectory(ctx, db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load teams", "details": err.Error()})
		return
	}

	events := calendar.Consolidate(calendar.Sources{
		Schedules:  schedules,
		ASRequests: asRequests,
		Payments:   payments,
		Projects:   projects,
	}, calendar.Options{
		Project: project,
		Viewer:  viewer,
		Teams:   teams,
	})

	c.JSON(http.StatusOK, models.CalendarResponse{
		Project: project,
		Events:  events,
		Total:   len(events),
	})
}

// fieldStaffProjects resolves the calendar cohort for a field-staff viewer.
// A missing users row or an unconfigured project list fails closed: the
// viewer gets an empty cohort, not unrestricted access.
func fieldStaffProjects(user *models.User) []string {
	if user == nil || user.AllowedProjects == nil {
		return []string{}
	}
	return user.AllowedProjects
}

// dateWindow parses the query range, defaulting to two months back and
// four months ahead of today.
func dateWindow(startStr, endStr string) (time.Time, time.Time, error) {
	now := time.Now()
	start := now.AddDate(0, -2, 0)
	end := now.AddDate(0, 4, 0)

	var err error
	if startStr != "" {
		start, err = time.ParseInLocation("2006-01-02", startStr, time.Local)
		if err != nil {
			return start, end, err
		}
	}
	if endStr != "" {
		end, err = time.ParseInLocation("2006-01-02", endStr, time.Local)
		if err != nil {
			return start, end, err
		}
	}
	return start, end, nil
}

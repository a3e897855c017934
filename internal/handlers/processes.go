package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/HVLAB-SJ/hvlab-go/internal/calendar"
	"github.com/HVLAB-SJ/hvlab-go/internal/middleware"
	"github.com/HVLAB-SJ/hvlab-go/internal/models"
	"github.com/HVLAB-SJ/hvlab-go/internal/store"
	"github.com/gin-gonic/gin"
)

// constructionProcesses is the fixed sidebar process list, in site order
var constructionProcesses = []string{
	"철거", "설비", "전기", "목공", "타일", "도장", "필름",
	"도배", "마루", "조명", "가구", "입주청소",
}

// DropGuard deduplicates drop gestures: a drag that fires twice within the
// window creates one schedule, not two.
type DropGuard struct {
	mu     sync.Mutex
	window time.Duration
	seen   map[string]time.Time
	now    func() time.Time
}

// NewDropGuard creates a guard with the given dedupe window
func NewDropGuard(window time.Duration) *DropGuard {
	return &DropGuard{
		window: window,
		seen:   make(map[string]time.Time),
		now:    time.Now,
	}
}

// FirstSeen reports whether this gesture id is new within the window,
// recording it either way. Stale entries are pruned as a side effect.
func (g *DropGuard) FirstSeen(gestureID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	for id, at := range g.seen {
		if now.Sub(at) > g.window {
			delete(g.seen, id)
		}
	}

	if _, dup := g.seen[gestureID]; dup {
		return false
	}
	g.seen[gestureID] = now
	return true
}

// ListProcesses returns the fixed sidebar process list
func ListProcesses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"processes": constructionProcesses})
}

// DropProcessRequest is the payload for a sidebar process drop
type DropProcessRequest struct {
	GestureID string `json:"gesture_id" binding:"required"`
	Process   string `json:"process" binding:"required"`
	Project   string `json:"project" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
}

// DropProcess creates a construction schedule titled with the dropped
// process name for the active single project. Dropping while the filter
// is "all projects" is rejected with a warning.
func DropProcess(guard *DropGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		db, ok := middleware.GetDB(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
			return
		}

		var req DropProcessRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}

		if req.Project == calendar.AllProjects {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Select a project first",
				"warning": "공정은 특정 프로젝트를 선택한 상태에서만 추가할 수 있습니다",
			})
			return
		}

		date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date. Use YYYY-MM-DD"})
			return
		}

		if !guard.FirstSeen(req.GestureID) {
			c.JSON(http.StatusOK, gin.H{"duplicate": true, "message": "Drop already processed"})
			return
		}

		name, _ := middleware.GetAuthName(c)
		scheduleType := models.EventConstruction
		schedule := models.Schedule{
			Title:     req.Process,
			Start:     date,
			End:       date,
			Project:   req.Project,
			Attendees: []string{name},
			Type:      &scheduleType,
			CreatedBy: &name,
		}

		id, err := store.CreateSchedule(c.Request.Context(), db, schedule)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule", "details": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": id, "process": req.Process})
	}
}

package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/HVLAB-SJ/hvlab-go/internal/middleware"
	"github.com/HVLAB-SJ/hvlab-go/internal/models"
	"github.com/HVLAB-SJ/hvlab-go/internal/store"
	"github.com/HVLAB-SJ/hvlab-go/internal/undo"
	"github.com/gin-gonic/gin"
)

// CreateSchedule handles inline adds from the calendar: a new schedule for
// the active project with the current user as sole attendee unless the
// request names attendees explicitly.
func CreateSchedule(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	var req models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Title must not be empty"})
		return
	}

	start, err := time.ParseInLocation("2006-01-02", req.Start, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date. Use YYYY-MM-DD"})
		return
	}
	end := start
	if req.End != "" {
		end, err = time.ParseInLocation("2006-01-02", req.End, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date. Use YYYY-MM-DD"})
			return
		}
	}

	name, _ := middleware.GetAuthName(c)
	attendees := req.Attendees
	if len(attendees) == 0 {
		attendees = []string{name}
	}

	schedule := models.Schedule{
		Title:       title,
		Start:       start,
		End:         end,
		Project:     req.Project,
		Attendees:   attendees,
		Time:        req.Time,
		Type:        req.Type,
		Description: req.Description,
		CreatedBy:   &name,
	}

	id, err := store.CreateSchedule(c.Request.Context(), db, schedule)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Schedule created"})
}

// UpdateSchedule applies a partial patch to one schedule. Inline title
// edits of a merged event patch its first underlying id only.
func UpdateSchedule(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID"})
		return
	}

	var patch models.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Title must not be empty"})
		return
	}

	if err := store.UpdateSchedule(c.Request.Context(), db, id, patch); err != nil {
		if store.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update schedule", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "message": "Schedule updated"})
}

// MoveSchedules moves every listed schedule (a merged event's full id set)
// to a new date range in one transaction, so a drag never leaves the
// backend partially moved.
func MoveSchedules(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	var req models.MoveSchedulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids must not be empty"})
		return
	}

	start, err := time.ParseInLocation("2006-01-02", req.Start, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date. Use YYYY-MM-DD"})
		return
	}
	end := start
	if req.End != "" {
		end, err = time.ParseInLocation("2006-01-02", req.End, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date. Use YYYY-MM-DD"})
			return
		}
	}

	ctx := c.Request.Context()
	tx, err := db.Begin(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	defer tx.Rollback(ctx)

	if err := store.MoveSchedules(ctx, tx, req.IDs, start, end); err != nil {
		if store.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "One or more schedules not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move schedules", "details": err.Error()})
		return
	}

	if err := tx.Commit(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"moved": len(req.IDs), "start": req.Start})
}

// CopySchedules duplicates every listed schedule at the drop date with
// fresh ids; the originals are untouched.
func CopySchedules(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	var req models.CopySchedulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids must not be empty"})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date. Use YYYY-MM-DD"})
		return
	}

	ctx := c.Request.Context()
	originals, err := store.GetSchedulesByIDs(ctx, db, req.IDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schedules", "details": err.Error()})
		return
	}
	if len(originals) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedules not found"})
		return
	}

	name, _ := middleware.GetAuthName(c)

	tx, err := db.Begin(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	defer tx.Rollback(ctx)

	created := make([]int64, 0, len(originals))
	for _, s := range originals {
		dup := s
		dup.Start = date
		dup.End = date
		dup.CreatedBy = &name
		id, err := store.CreateSchedule(ctx, tx, dup)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to copy schedules", "details": err.Error()})
			return
		}
		created = append(created, id)
	}

	if err := tx.Commit(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"created": created, "date": req.Date})
}

// DeleteSchedules removes every listed schedule in one transaction and
// pushes the pre-delete snapshot onto the caller's undo stack.
func DeleteSchedules(undoStack *undo.Stack) gin.HandlerFunc {
	return func(c *gin.Context) {
		db, ok := middleware.GetDB(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
			return
		}

		var req models.DeleteSchedulesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}
		if len(req.IDs) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ids must not be empty"})
			return
		}

		ctx := c.Request.Context()
		snapshot, err := store.GetSchedulesByIDs(ctx, db, req.IDs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schedules", "details": err.Error()})
			return
		}
		if len(snapshot) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedules not found"})
			return
		}

		tx, err := db.Begin(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}
		defer tx.Rollback(ctx)

		if err := store.DeleteSchedules(ctx, tx, req.IDs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete schedules", "details": err.Error()})
			return
		}

		if err := tx.Commit(ctx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		name, _ := middleware.GetAuthName(c)
		undoStack.Push(name, undo.Entry{Schedules: snapshot})

		c.JSON(http.StatusOK, gin.H{"deleted": len(snapshot), "undoable": true})
	}
}

// UndoDelete pops the caller's most recent deletion and re-creates the
// schedules. This is a re-creation, not a rollback: restored records get
// fresh ids.
func UndoDelete(undoStack *undo.Stack) gin.HandlerFunc {
	return func(c *gin.Context) {
		db, ok := middleware.GetDB(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
			return
		}

		name, _ := middleware.GetAuthName(c)
		entry, ok := undoStack.Pop(name)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Nothing to undo"})
			return
		}

		ctx := c.Request.Context()
		tx, err := db.Begin(ctx)
		if err != nil {
			// Keep the entry restorable if we could not act on it.
			undoStack.Push(name, entry)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}
		defer tx.Rollback(ctx)

		restored := make([]int64, 0, len(entry.Schedules))
		for _, s := range entry.Schedules {
			id, err := store.CreateSchedule(ctx, tx, s)
			if err != nil {
				undoStack.Push(name, entry)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore schedules", "details": err.Error()})
				return
			}
			restored = append(restored, id)
		}

		if err := tx.Commit(ctx); err != nil {
			undoStack.Push(name, entry)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"restored": restored})
	}
}

package handlers

import (
	"net/http"
	"time"

	"github.com/HVLAB-SJ/hvlab-go/internal/middleware"
	"github.com/HVLAB-SJ/hvlab-go/internal/models"
	"github.com/HVLAB-SJ/hvlab-go/internal/store"
	"github.com/gin-gonic/gin"
)

// ListProjects returns every project
func ListProjects(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	projects, err := store.ListProjects(c.Request.Context(), db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ProjectListResponse{Projects: projects, Total: len(projects)})
}

// CreateProjectRequest is the request body for creating a project
type CreateProjectRequest struct {
	Name      string  `json:"name" binding:"required"`
	Location  string  `json:"location,omitempty"`
	Status    string  `json:"status,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`
}

// CreateProject adds a project. Routed behind RequireManager.
func CreateProject(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	project := models.Project{
		Name:     req.Name,
		Location: req.Location,
		Status:   req.Status,
	}
	for _, p := range []struct {
		raw  *string
		dest **time.Time
	}{
		{req.StartDate, &project.StartDate},
		{req.EndDate, &project.EndDate},
	} {
		if p.raw == nil {
			continue
		}
		d, err := time.ParseInLocation("2006-01-02", *p.raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}
		*p.dest = &d
	}

	id, err := store.CreateProject(c.Request.Context(), db, project)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Project created"})
}

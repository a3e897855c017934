package handlers

import (
	"net/http"
	"strconv"

	"github.com/HVLAB-SJ/hvlab-go/internal/middleware"
	"github.com/HVLAB-SJ/hvlab-go/internal/models"
	"github.com/HVLAB-SJ/hvlab-go/internal/store"
	"github.com/gin-gonic/gin"
)

// ListASRequests returns every AS request
func ListASRequests(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	requests, err := store.ListASRequests(c.Request.Context(), db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load AS requests", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests, "total": len(requests)})
}

// UpdateASRequest patches one AS request. Clearing the visit date removes
// its calendar entry without deleting the request.
func UpdateASRequest(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid AS request ID"})
		return
	}

	var patch models.UpdateASRequestRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if err := store.UpdateASRequest(c.Request.Context(), db, id, patch); err != nil {
		if store.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "AS request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update AS request", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "message": "AS request updated"})
}

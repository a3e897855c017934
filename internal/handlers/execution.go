package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/HVLAB-SJ/hvlab-go/internal/middleware"
	"github.com/HVLAB-SJ/hvlab-go/internal/models"
	"github.com/HVLAB-SJ/hvlab-go/internal/store"
	"github.com/gin-gonic/gin"
)

// ListExecutionEntries returns the execution ledger with its totals,
// optionally filtered to one project
func ListExecutionEntries(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	entries, err := store.ListExecutionEntries(c.Request.Context(), db, c.Query("project"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load execution entries", "details": err.Error()})
		return
	}

	summary := models.SummarizeExecution(entries)
	c.JSON(http.StatusOK, gin.H{
		"entries":     entries,
		"total":       len(entries),
		"amount":      summary.Total,
		"by_category": summary.ByCategory,
	})
}

// CreateExecutionEntry books a spend against a project
func CreateExecutionEntry(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	var req models.CreateExecutionEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Amount must be positive"})
		return
	}

	entryDate, err := time.ParseInLocation("2006-01-02", req.EntryDate, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry_date format. Use YYYY-MM-DD"})
		return
	}

	name, _ := middleware.GetAuthName(c)
	id, err := store.CreateExecutionEntry(c.Request.Context(), db, models.ExecutionEntry{
		Project:       req.Project,
		EntryDate:     entryDate,
		Category:      req.Category,
		Vendor:        req.Vendor,
		Description:   req.Description,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		CreatedBy:     &name,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create execution entry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateExecutionEntry applies a partial patch to one ledger entry
func UpdateExecutionEntry(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	var req models.UpdateExecutionEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if req.EntryDate != nil {
		if _, err := time.ParseInLocation("2006-01-02", *req.EntryDate, time.Local); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry_date format. Use YYYY-MM-DD"})
			return
		}
	}
	if req.Amount != nil && *req.Amount <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Amount must be positive"})
		return
	}

	if err := store.UpdateExecutionEntry(c.Request.Context(), db, id, req); err != nil {
		if store.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Execution entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update execution entry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "updated": true})
}

// DeleteExecutionEntry removes one ledger entry
func DeleteExecutionEntry(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	if err := store.DeleteExecutionEntry(c.Request.Context(), db, id); err != nil {
		if store.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Execution entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete execution entry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/HVLAB-SJ/hvlab-go/internal/middleware"
	"github.com/HVLAB-SJ/hvlab-go/internal/models"
	"github.com/HVLAB-SJ/hvlab-go/internal/store"
	"github.com/gin-gonic/gin"
)

// CreateEstimateRequest is the request body for creating an estimate
type CreateEstimateRequest struct {
	Project string `json:"project" binding:"required"`
	VATType string `json:"vat_type,omitempty"` // separate (default) or included
	Items   []struct {
		ProductID *int64  `json:"product_id,omitempty"`
		Name      string  `json:"name" binding:"required"`
		Quantity  float64 `json:"quantity"`
		UnitPrice int64   `json:"unit_price"`
	} `json:"items" binding:"required"`
}

// CreateEstimate computes totals server-side and stores the estimate with
// its items in one transaction.
func CreateEstimate(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	var req CreateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Estimate needs at least one item"})
		return
	}

	estimate := models.Estimate{
		Project: req.Project,
		VATType: req.VATType,
	}
	if estimate.VATType == "" {
		estimate.VATType = "separate"
	}
	for _, item := range req.Items {
		qty := item.Quantity
		if qty == 0 {
			qty = 1
		}
		estimate.Items = append(estimate.Items, models.EstimateItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  qty,
			UnitPrice: item.UnitPrice,
		})
	}
	estimate.Recalculate()

	ctx := c.Request.Context()
	tx, err := db.Begin(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	defer tx.Rollback(ctx)

	id, err := store.CreateEstimate(ctx, tx, estimate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create estimate", "details": err.Error()})
		return
	}

	if err := tx.Commit(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          id,
		"subtotal":    estimate.Subtotal,
		"vat_amount":  estimate.VATAmount,
		"grand_total": estimate.GrandTotal,
	})
}

// GetEstimate returns one estimate with items
func GetEstimate(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid estimate ID"})
		return
	}

	estimate, err := store.GetEstimate(c.Request.Context(), db, id)
	if err != nil {
		if store.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load estimate", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, estimate)
}

// ListEstimates returns estimate headers, optionally for one project
func ListEstimates(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	estimates, err := store.ListEstimates(c.Request.Context(), db, c.Query("project"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load estimates", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"estimates": estimates, "total": len(estimates)})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/HVLAB-SJ/hvlab-go/internal/middleware"
	"github.com/HVLAB-SJ/hvlab-go/internal/models"
	"github.com/HVLAB-SJ/hvlab-go/internal/store"
	"github.com/gin-gonic/gin"
)

// ListProducts returns the spec-book catalog, optionally filtered by category
func ListProducts(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	products, err := store.ListProducts(c.Request.Context(), db, c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
}

// CreateProduct adds a spec-book entry. Routed behind RequireManager.
func CreateProduct(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if product.Category == "" || product.Name == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Category and name are required"})
		return
	}

	id, err := store.CreateProduct(c.Request.Context(), db, product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Product created"})
}

// DeleteProduct removes a spec-book entry. Routed behind RequireManager.
func DeleteProduct(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := store.DeleteProduct(c.Request.Context(), db, id); err != nil {
		if store.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "message": "Product deleted"})
}

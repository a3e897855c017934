package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dbKey = "db"

// Database injects the application database pool into the request context
func Database(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dbKey, pool)
		c.Next()
	}
}

// GetDB returns the database pool from the request context
func GetDB(c *gin.Context) (*pgxpool.Pool, bool) {
	v, exists := c.Get(dbKey)
	if !exists {
		return nil, false
	}
	pool, ok := v.(*pgxpool.Pool)
	return pool, ok
}

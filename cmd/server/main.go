package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HVLAB-SJ/hvlab-go/internal/auth"
	"github.com/HVLAB-SJ/hvlab-go/internal/config"
	"github.com/HVLAB-SJ/hvlab-go/internal/database"
	"github.com/HVLAB-SJ/hvlab-go/internal/handlers"
	"github.com/HVLAB-SJ/hvlab-go/internal/middleware"
	"github.com/HVLAB-SJ/hvlab-go/internal/undo"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

var Version = "dev"

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		time.Local = loc
	} else {
		log.Printf("⚠️ Unknown timezone %q, using system default", cfg.Timezone)
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer)
	undoStack := undo.New(time.Duration(cfg.UndoTTLMinutes) * time.Minute)
	dropGuard := handlers.NewDropGuard(10 * time.Second)

	// Periodic undo-stack expiry sweep
	jobs := cron.New()
	if _, err := jobs.AddFunc(cfg.SweepCron, func() {
		if removed := undoStack.Sweep(); removed > 0 {
			log.Printf("🧹 Swept %d expired undo entries", removed)
		}
	}); err != nil {
		log.Fatalf("Invalid sweep_cron %q: %v", cfg.SweepCron, err)
	}
	jobs.Start()
	defer jobs.Stop()

	// Initialize Gin
	r := gin.Default()
	r.Use(middleware.Database(pool))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": Version,
		})
	})

	// Version endpoint
	r.GET("/api/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version": Version,
			"service": "hvlab-go",
		})
	})

	r.POST("/api/auth/login", handlers.Login(jwtService))

	api := r.Group("/api", middleware.RequireAuth(jwtService))
	{
		api.GET("/calendar/events", handlers.GetCalendarEvents)
		api.POST("/calendar/undo", handlers.UndoDelete(undoStack))

		api.POST("/schedules", handlers.CreateSchedule)
		api.PATCH("/schedules/:id", handlers.UpdateSchedule)
		api.POST("/schedules/move", handlers.MoveSchedules)
		api.POST("/schedules/copy", handlers.CopySchedules)
		api.POST("/schedules/delete", handlers.DeleteSchedules(undoStack))

		api.GET("/as-requests", handlers.ListASRequests)
		api.PATCH("/as-requests/:id", handlers.UpdateASRequest)

		api.GET("/processes", handlers.ListProcesses)
		api.POST("/processes/drop", handlers.DropProcess(dropGuard))

		api.GET("/projects", handlers.ListProjects)

		api.GET("/preferences/calendar", handlers.GetCalendarPrefs)
		api.PUT("/preferences/calendar", handlers.SaveCalendarPrefs)

		api.GET("/products", handlers.ListProducts)

		api.GET("/estimates", handlers.ListEstimates)
		api.GET("/estimates/:id", handlers.GetEstimate)
		api.POST("/estimates", handlers.CreateEstimate)

		manager := api.Group("", middleware.RequireManager())
		{
			manager.GET("/execution-entries", handlers.ListExecutionEntries)
			manager.POST("/execution-entries", handlers.CreateExecutionEntry)
			manager.PATCH("/execution-entries/:id", handlers.UpdateExecutionEntry)
			manager.DELETE("/execution-entries/:id", handlers.DeleteExecutionEntry)

			manager.GET("/payments", handlers.ListPayments)
			manager.PATCH("/payments/:id/expected-dates", handlers.UpdateExpectedDates)
			manager.POST("/projects", handlers.CreateProject)
			manager.POST("/products", handlers.CreateProduct)
			manager.DELETE("/products/:id", handlers.DeleteProduct)
		}
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited")
}

package http

import (
	"net/http"

	"taskboard/internal/config"
	"taskboard/internal/http/handlers"
	"taskboard/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config) {
	h := handlers.NewHandler(db)
	healthHandler := handlers.NewHealthHandler(db)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Todo Backend API"})
	})

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))

	// Auth endpoints get a stricter per-IP limiter
	authRL := middleware.SimpleRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow)
	auth := api.Group("/auth")
	{
		auth.GET("/get-session", middleware.JWT(), h.GetSession)
		auth.POST("/sign-up/email", authRL, h.SignUp)
		auth.POST("/sign-in/email", authRL, h.SignIn)
	}

	tasks := api.Group("/tasks")
	tasks.Use(middleware.JWT())
	{
		tasks.POST("/", h.CreateTask)
		tasks.GET("/", h.ListTasks)
		tasks.PUT("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
		tasks.PATCH("/:id/complete", h.ToggleTask)
	}
}

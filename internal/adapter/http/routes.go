package http

import (
	"github.com/TukaHeba/Task-System/internal/adapter/http/handlers"
	"github.com/TukaHeba/Task-System/internal/adapter/http/middleware"
	"github.com/TukaHeba/Task-System/internal/core/domain"
	"github.com/TukaHeba/Task-System/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Tasks  *handlers.TaskHandler
}

type Auth struct {
	Verifier middleware.TokenVerifier
	Users    ports.UserRepository
}

func RegisterRoutes(r *gin.Engine, h Handlers, auth Auth) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}

	tasks := api.Group("/tasks")
	tasks.Use(middleware.Authenticate(auth.Verifier, auth.Users))
	{
		writers := middleware.RequireRoles(domain.RoleAdmin, domain.RoleManager)

		tasks.GET("", h.Tasks.ListTasks)
		tasks.POST("", writers, h.Tasks.CreateTask)
		tasks.GET("/:id", h.Tasks.GetTask)
		tasks.PUT("/:id", h.Tasks.UpdateTask)
		tasks.PATCH("/:id", h.Tasks.UpdateTask)
		tasks.DELETE("/:id", h.Tasks.DeleteTask)
		tasks.POST("/:id/assign", writers, h.Tasks.AssignTask)
	}
}

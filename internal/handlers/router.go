package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/kerja-workspace/internal/constants"
	"github.com/yukikurage/kerja-workspace/internal/middleware"
	"github.com/yukikurage/kerja-workspace/internal/services"
	"github.com/yukikurage/kerja-workspace/internal/workspace"
	"go.uber.org/zap"
)

// RouterDeps are the collaborators the HTTP API is built from
type RouterDeps struct {
	Workspace    *workspace.Workspace
	AuthService  *services.AuthService
	TaskService  *services.TaskService
	SessionStore sessions.Store
	Logger       *zap.SugaredLogger
}

// NewRouter wires middleware and every route of the API
func NewRouter(deps RouterDeps) *gin.Engine {
	ws := deps.Workspace
	log := deps.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(sessions.Sessions(constants.SessionCookieName, deps.SessionStore))

	authHandler := NewAuthHandler(deps.AuthService)
	taskHandler := NewTaskHandler(ws, deps.TaskService)
	eventHandler := NewEventHandler(ws)
	userHandler := NewUserHandler(ws, deps.AuthService)
	boardHandler := NewBoardHandler(ws)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "KERJA workspace API is running",
		})
	})

	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.RequireAuth(ws), authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(ws), authHandler.GetCurrentUser)
		}

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(ws))

		protected.GET("/board", boardHandler.GetBoard)
		protected.GET("/activities", boardHandler.ListActivities)

		tasks := protected.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.POST("/generate", taskHandler.GenerateTasks)
			tasks.GET("/:id", middleware.RequireTask(ws), taskHandler.GetTask)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.PUT("/:id/status", taskHandler.ChangeStatus)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		events := protected.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.POST("", eventHandler.CreateEvent)
			events.GET("/:id", middleware.RequireEvent(ws), eventHandler.GetEvent)
			events.PATCH("/:id", eventHandler.UpdateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)
		}

		users := protected.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", middleware.RequireOwner(ws), userHandler.CreateUser)
			users.PATCH("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", middleware.RequireOwner(ws), userHandler.DeleteUser)
		}
	}

	return r
}

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tanzimhossain222/chrono-boost/internal/handler"
	"github.com/Tanzimhossain222/chrono-boost/internal/middleware"
	"github.com/Tanzimhossain222/chrono-boost/internal/service"
)

func New(
	authService *service.AuthService,
	authHandler *handler.AuthHandler,
	timerHandler *handler.TimerHandler,
	taskHandler *handler.TaskHandler,
	statsHandler *handler.StatsHandler,
	eventsHandler *handler.EventsHandler,
	corsOrigins []string,
) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), middleware.CORS(corsOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.Auth(authService))

	protected.GET("/state", timerHandler.GetState)
	protected.PUT("/settings", timerHandler.UpdateSettings)

	timer := protected.Group("/timer")
	timer.POST("/start", timerHandler.Start)
	timer.POST("/pause", timerHandler.Pause)
	timer.POST("/reset", timerHandler.Reset)
	timer.POST("/complete", timerHandler.Complete)

	tasks := protected.Group("/tasks")
	tasks.POST("", taskHandler.Add)
	tasks.POST("/:id/toggle", taskHandler.Toggle)
	tasks.PUT("/:id", taskHandler.Rename)
	tasks.DELETE("/:id", taskHandler.Remove)

	protected.GET("/stats/daily", statsHandler.Daily)
	protected.GET("/events", eventsHandler.Stream)

	return engine
}

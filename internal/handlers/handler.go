package handlers

import (
	"tabata_timer/internal/logger"
	"tabata_timer/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// state and cue stream for the shell
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/token", h.issueToken)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.controllerMiddleware)
	{
		h.registerWorkoutRoutes(api)
		h.registerSessionRoutes(api)
		h.registerProgressRoutes(api)
		h.registerAudioRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerWorkoutRoutes(api *gin.RouterGroup) {
	workouts := api.Group("/workouts")
	{
		workouts.GET("", h.listWorkouts)
		workouts.GET("/:id", h.getWorkout)
		workouts.GET("/:id/export", h.exportWorkout)
		workouts.POST("/import", h.importWorkout)
	}
}

func (h *Handler) registerSessionRoutes(api *gin.RouterGroup) {
	session := api.Group("/session")
	{
		// Body example: {"workout_id":"quick-blast","config":{"work_time":20,"rest_time":10,"pair_rest_time":60},"resume":true}
		session.POST("", h.selectWorkout)
		session.POST("/start", h.startSession)
		session.POST("/pause", h.pauseSession)
		session.POST("/stop", h.stopSession)
		session.POST("/reset", h.resetSession)
		session.POST("/resync", h.resyncSession)
		session.GET("/state", h.getSessionState)
	}
}

func (h *Handler) registerProgressRoutes(api *gin.RouterGroup) {
	progress := api.Group("/progress")
	{
		progress.GET("", h.getProgress)
		progress.GET("/:id", h.getWorkoutProgress)
		progress.DELETE("/:id", h.resetWorkoutProgress)
		progress.DELETE("", h.clearProgress)
	}
}

func (h *Handler) registerAudioRoutes(api *gin.RouterGroup) {
	audio := api.Group("/audio")
	{
		audio.GET("", h.getAudio)
		audio.PUT("", h.updateAudio)
		audio.POST("/test", h.testAudio)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}

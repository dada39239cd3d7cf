package handlers

import (
	_ "timeboard/docs"
	"timeboard/internal/display"
	"timeboard/internal/logger"
	"timeboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services, the display hub and logging.
type Handler struct {
	services *service.Service
	hub      *display.Hub
	log      *logger.Logger

	// origins allowed to open /ws; empty allows all
	origins  []string
	upgrader websocket.Upgrader
}

// NewHandler constructs a new HTTP handler with dependencies. hub may be nil;
// the display stream then carries periodic state only.
func NewHandler(services *service.Service, hub *display.Hub, log *logger.Logger) *Handler {
	h := &Handler{services: services, hub: hub, log: log}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}
	return h
}

// AllowOrigins restricts the display stream to pages served from origins,
// e.g. "http://kiosk.local:8080". Call before serving.
func (h *Handler) AllowOrigins(origins ...string) {
	h.origins = h.origins[:0]
	for _, o := range origins {
		if o = normalizeOrigin(o); o != "" {
			h.origins = append(h.origins, o)
		}
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Display stream (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerPanelRoutes(api)
		h.registerTimerRoutes(api)
		h.registerInputRoutes(api)
		h.registerSnapshotRoutes(api)
		h.registerBoardRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerPanelRoutes(api *gin.RouterGroup) {
	panel := api.Group("/panel")
	{
		panel.GET("", h.getPanel)
		// Body example: {"hours":"01","minutes":"30","seconds":"00"}
		panel.PUT("", h.setPanel)
		panel.POST("/:field/:direction", h.adjustPanel)
	}
}

func (h *Handler) registerTimerRoutes(api *gin.RouterGroup) {
	t := api.Group("/timer")
	{
		// Body example: {"duration_ms":90000}; empty body loads the panel
		t.POST("/load", h.loadTimer)
		t.POST("/toggle", h.toggleTimer)
		t.GET("/state", h.getState)
	}
}

func (h *Handler) registerInputRoutes(api *gin.RouterGroup) {
	api.POST("/input/:event", h.dispatchInput)
}

func (h *Handler) registerSnapshotRoutes(api *gin.RouterGroup) {
	snaps := api.Group("/snapshots")
	{
		snaps.POST("/:key", h.saveSnapshot)
		snaps.GET("/:key", h.getSnapshot)
		snaps.POST("/:key/restore", h.restoreSnapshot)
	}
}

func (h *Handler) registerBoardRoutes(api *gin.RouterGroup) {
	api.POST("/board/toggle", h.toggleBoard)
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}

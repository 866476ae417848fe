package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planner-backend/internal/machines"
	"planner-backend/internal/orders"
	"planner-backend/internal/planner"
	"planner-backend/internal/shared/config"
	"planner-backend/internal/shared/server/middleware"
	"planner-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config         config.Config
	MachineHandler *machines.Handler
	OrderHandler   *orders.Handler
	PlannerHandler *planner.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.MachineHandler.RegisterRoutes(api)
	deps.OrderHandler.RegisterRoutes(api)
	deps.PlannerHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

// Package router wires the REST API routes.
package router

import (
	"net/http"

	"labgas/config"
	"labgas/internal/delivery/api/middleware"
	"labgas/internal/delivery/api/response"
	"labgas/internal/delivery/api/router/handler"
	"labgas/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	CylinderHandler  *handler.CylinderHandler
	ElementHandler   *handler.ElementHandler
	SampleHandler    *handler.SampleHandler
	FlameTimeHandler *handler.FlameTimeHandler
	StatsHandler     *handler.StatsHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Metrics          *metrics.Metrics `optional:"true"`
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	cylinderHandler  *handler.CylinderHandler
	elementHandler   *handler.ElementHandler
	sampleHandler    *handler.SampleHandler
	flameTimeHandler *handler.FlameTimeHandler
	statsHandler     *handler.StatsHandler
	authMiddleware   *middleware.AuthMiddleware
	metrics          *metrics.Metrics
	config           *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		cylinderHandler:  params.CylinderHandler,
		elementHandler:   params.ElementHandler,
		sampleHandler:    params.SampleHandler,
		flameTimeHandler: params.FlameTimeHandler,
		statsHandler:     params.StatsHandler,
		authMiddleware:   params.AuthMiddleware,
		metrics:          params.Metrics,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.index)
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && metrics.Enabled(r.config) {
		e.GET(metrics.Path(r.config), echo.WrapHandler(r.metrics.Handler()))
	}

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	cylinders := api.Group("/cilindros", r.authMiddleware.Authenticate)
	{
		cylinders.GET("", r.cylinderHandler.ListCylinders)
		cylinders.POST("", r.cylinderHandler.CreateCylinder)
		cylinders.GET("/:id", r.cylinderHandler.GetCylinder)
		cylinders.PUT("/:id", r.cylinderHandler.UpdateCylinder)
		cylinders.DELETE("/:id", r.cylinderHandler.DeleteCylinder)
		cylinders.GET("/:id/label", r.cylinderHandler.CylinderLabel)
	}

	elements := api.Group("/elementos", r.authMiddleware.Authenticate)
	{
		elements.GET("", r.elementHandler.ListElements)
		elements.POST("", r.elementHandler.CreateElement)
		elements.GET("/:id", r.elementHandler.GetElement)
		elements.PUT("/:id", r.elementHandler.UpdateElement)
		elements.DELETE("/:id", r.elementHandler.DeleteElement)
	}

	samples := api.Group("/amostras", r.authMiddleware.Authenticate)
	{
		samples.GET("", r.sampleHandler.ListSamples)
		samples.POST("", r.sampleHandler.CreateSample)
		samples.GET("/:id", r.sampleHandler.GetSample)
		samples.PUT("/:id", r.sampleHandler.UpdateSample)
		samples.DELETE("/:id", r.sampleHandler.DeleteSample)
	}

	flameTimes := api.Group("/tempo-chama", r.authMiddleware.Authenticate)
	{
		flameTimes.GET("", r.flameTimeHandler.ListFlameTimes)
		flameTimes.POST("", r.flameTimeHandler.CreateFlameTime)
		flameTimes.GET("/summary", r.flameTimeHandler.Summary)
		flameTimes.GET("/:id", r.flameTimeHandler.GetFlameTime)
		flameTimes.DELETE("/:id", r.flameTimeHandler.DeleteFlameTime)
	}

	api.GET("/stats", r.statsHandler.Counts, r.authMiddleware.Authenticate)
}

func (r *router) index(c echo.Context) error {
	name := r.config.Env.AppName
	if name == "" {
		name = "LabGas Manager"
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"name":   name,
		"health": "/health",
	})
}

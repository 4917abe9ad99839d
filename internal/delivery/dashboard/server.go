// Package dashboard serves the server-rendered web app. Every page is built
// from REST API calls made with the visitor's session token.
package dashboard

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"labgas/config"
	"labgas/internal/delivery"
	"labgas/internal/delivery/middleware"
	"labgas/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

const defaultPort = 8501

type ServerParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	API    API
}

type dashboardServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer, err := NewEcho(params.Config, params.Logger, params.API)
	if err != nil {
		return nil, err
	}

	srv := &dashboardServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the dashboard echo instance with every page registered.
func NewEcho(cfg *config.Config, logger *slog.Logger, api API) (*echo.Echo, error) {
	tmpl, err := newRenderer()
	if err != nil {
		return nil, err
	}

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Renderer = tmpl
	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(middleware.NewRequestIDMiddleware(logger).Process)
	echoServer.Use(slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
		Filters:       []slogecho.Filter{slogecho.IgnorePath("/healthz")},
	}))

	appName := cfg.Env.AppName
	if appName == "" {
		appName = "LabGas"
	}

	p := &pages{
		api:      api,
		sessions: newSessions(cfg),
		appName:  appName,
	}
	registerRoutes(echoServer, p)

	return echoServer, nil
}

func registerRoutes(e *echo.Echo, p *pages) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/login", p.loginPage)
	e.POST("/login", p.login)
	e.GET("/register", p.registerPage)
	e.POST("/register", p.register)
	e.POST("/reset-password", p.resetPassword)

	app := e.Group("", p.sessions.require)
	app.GET("/", p.overview)
	app.POST("/logout", p.logout)

	app.GET("/cilindros", p.cylinders)
	app.POST("/cilindros", p.createCylinder)
	app.POST("/cilindros/:id", p.updateCylinder)
	app.POST("/cilindros/:id/excluir", p.deleteCylinder)
	app.GET("/cilindros/:id/etiqueta", p.cylinderLabel)

	app.GET("/elementos", p.elements)
	app.POST("/elementos", p.createElement)
	app.POST("/elementos/:id", p.updateElement)
	app.POST("/elementos/:id/excluir", p.deleteElement)

	app.GET("/amostras", p.samples)
	app.POST("/amostras", p.createSample)
	app.POST("/amostras/:id/excluir", p.deleteSample)

	app.GET("/tempo-chama", p.flameTimes)
	app.POST("/tempo-chama", p.createFlameTime)
	app.POST("/tempo-chama/:id/excluir", p.deleteFlameTime)

	app.GET("/perfil", p.profile)
}

func (s *dashboardServer) Serve(ctx context.Context) error {
	port := defaultPort
	if s.cfg.Dashboard != nil && s.cfg.Dashboard.Port != 0 {
		port = s.cfg.Dashboard.Port
	}

	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(port))
	s.logger.Info("Starting dashboard server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve dashboard")
	}

	return nil
}

func (s *dashboardServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down dashboard server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"go.uber.org/zap"

	"github.com/SpirahlDev/sig-backend/internal/config"
	"github.com/SpirahlDev/sig-backend/internal/delivery/http/handler"
	"github.com/SpirahlDev/sig-backend/internal/delivery/http/middleware"
)

// Server is the Fiber HTTP server wiring the site catalogue endpoints.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	siteHandler     *handler.SiteHandler
	siteTypeHandler *handler.SiteTypeHandler
	healthCheck     func(ctx context.Context) error
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	siteHandler *handler.SiteHandler,
	siteTypeHandler *handler.SiteTypeHandler,
	healthCheck func(ctx context.Context) error,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "SIG Backend",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: errorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		siteHandler:     siteHandler,
		siteTypeHandler: siteTypeHandler,
		healthCheck:     healthCheck,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Stored photos are served straight from the blob store directory.
	s.app.Static(s.config.Storage.BaseURL, s.config.Storage.Directory)

	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		if s.healthCheck != nil {
			if err := s.healthCheck(c.Context()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "unhealthy",
					"time":   time.Now(),
				})
			}
		}
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Site routes. Static paths are registered before :id so that
	// /sites/nearby is not captured as an identifier.
	sites := api.Group("/sites")
	sites.Get("/", s.siteHandler.Index)
	sites.Post("/", s.siteHandler.Store)
	sites.Get("/nearby", s.siteHandler.Nearby)
	sites.Get("/stats", s.siteHandler.Stats)
	sites.Get("/:id", s.siteHandler.Show)
	sites.Put("/:id", s.siteHandler.Update)
	sites.Delete("/:id", s.siteHandler.Destroy)
	sites.Delete("/:id/photos/:photoId", s.siteHandler.DetachPhoto)

	// Site type reference data routes
	types := api.Group("/site-types")
	types.Get("/", s.siteTypeHandler.Index)
	types.Post("/", s.siteTypeHandler.Store)
	types.Get("/stats", s.siteTypeHandler.Stats)
	types.Get("/:id", s.siteTypeHandler.Show)
	types.Put("/:id", s.siteTypeHandler.Update)
	types.Delete("/:id", s.siteTypeHandler.Destroy)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying Fiber app for in-process request tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// errorHandler catches errors that escape the handlers, e.g. routing
// failures, and renders them in the uniform envelope.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"status_code":    code,
			"status_message": err.Error(),
			"data":           nil,
		})
	}
}

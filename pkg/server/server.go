package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arthur-debert/docgen/pkg/config"
	"github.com/arthur-debert/docgen/pkg/logging"
	"github.com/arthur-debert/docgen/pkg/render"
	"github.com/arthur-debert/docgen/pkg/store"
)

var log = logging.GetLogger("server")

// Server wires the store and the render service into a fiber app.
type Server struct {
	app     *fiber.App
	store   *store.Store
	service *render.Service
}

// New builds the HTTP server around an existing store and render service.
// The /metrics endpoint and its middleware are mounted only when the central
// configuration enables them.
func New(st *store.Store, svc *render.Service, cfg *config.Config) *Server {
	s := &Server{
		store:   st,
		service: svc,
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	if cfg.Server.MetricsEnabled {
		app.Use(metricsMiddleware())
	}
	app.Use(requestLogger())

	app.Get("/health", s.handleHealth)
	if cfg.Server.MetricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := app.Group("/api/v1")
	api.Get("/templates", s.handleTemplateList)
	api.Post("/templates/:name", s.handleTemplateApply)
	api.Get("/config", s.handleConfigGet)
	api.Patch("/config/document", s.handleDocumentPatch)
	api.Patch("/config/elements/:category", s.handleElementPatch)
	api.Post("/render", s.handleRender)

	s.app = app
	return s
}

// App returns the underlying fiber app. Tests drive it through app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving on addr until the listener fails or Shutdown runs.
func (s *Server) Listen(addr string) error {
	log.Info().Str("addr", addr).Msg("HTTP server listening")
	return s.app.Listen(addr)
}

// Shutdown gracefully drains in-flight requests and stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// requestLogger logs one line per request through the shared zerolog
// pipeline, after the handler has run.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
		return err
	}
}

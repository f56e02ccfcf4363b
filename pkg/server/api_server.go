package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/BOKA26/lovotech-nexus/pkg/config"
	handlers "github.com/BOKA26/lovotech-nexus/pkg/handlers/http"
	"github.com/BOKA26/lovotech-nexus/pkg/middleware"
)

type (
	APIServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	APIServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewAPIServer(di APIServerDI) *APIServer {
	return &APIServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *APIServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting api server")
	return s.Router.Listen(addr)
}

func (s *APIServer) setupRoutes() {
	s.Router.Use(recover.New())
	s.Router.Use(s.middlewareTransport.CORSMiddleware.Middleware())

	v1 := s.Router.Group("/api/v1")
	{
		v1.Get("/version", s.handlerTransport.GetVersionHandler.Handle)
		v1.Post("/chat", s.handlerTransport.ChatCompletionHandler.Handle)

		projects := v1.Group("/projects")
		{
			projects.Get("", s.handlerTransport.ListProjectsHandler.Handle)
			projects.Post("/sync",
				s.middlewareTransport.AdminAuthMiddleware.Middleware(),
				s.handlerTransport.SyncProjectsHandler.Handle,
			)
		}
	}
}

func (s *APIServer) Shutdown() error {
	if err := s.shutdownMetricsEndpoint(); err != nil {
		s.Logger.WithError(err).Error("failed to shut down metrics server")
	}
	return s.Router.Shutdown()
}

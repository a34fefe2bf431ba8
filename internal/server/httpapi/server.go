package httpapi

import (
	"context"

	"github.com/foodprint-app/foodprint/internal/logging"
	"github.com/foodprint-app/foodprint/internal/server/auth"
	"github.com/foodprint-app/foodprint/internal/server/services"
	"github.com/gofiber/fiber/v2"
)

type Server struct {
	address string
	app     *fiber.App
	logger  logging.Logger
}

func NewServer(address string, l logging.Logger, users *services.UserService, tokens *auth.TokenIssuer) *Server {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	h := NewAuthHandler(users, l)
	RegisterRoutes(app, h, tokens)

	return &Server{
		address: address,
		app:     app,
		logger:  l.With("module", "http_server"),
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = s.app.Shutdown()
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.app.Listen(s.address); err != nil {
		return err
	}

	return nil
}

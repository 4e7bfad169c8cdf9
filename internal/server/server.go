package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"

	"rolodex/internal/database"
	"rolodex/internal/repositories"
	"rolodex/internal/services"
)

type Server struct {
	port                int
	httpServer          *http.Server
	db                  database.Service
	contactService      services.ContactService
	userService         services.UserService
	professionalService services.ProfessionalService
}

func NewServer() *Server {
	portStr := os.Getenv("PORT")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Warn().Str("port", portStr).Msg("Invalid or missing PORT environment variable. Using default 8080.")
		port = 8080
	}

	db := database.New()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.EnsureIndexes(ctx); err != nil {
		// The uniqueness pre-check in the services still applies; the
		// index just closes the check-then-insert race.
		log.Warn().Err(err).Msg("Failed to create unique email indexes")
	}

	contactRepo := repositories.NewContactRepository(db)
	userRepo := repositories.NewUserRepository(db)
	professionalRepo := repositories.NewProfessionalRepository(db)

	s := &Server{
		port:                port,
		db:                  db,
		contactService:      services.NewContactService(contactRepo),
		userService:         services.NewUserService(userRepo),
		professionalService: services.NewProfessionalService(professionalRepo),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

func (s *Server) Start() error {
	log.Info().Int("port", s.port).Msg("Starting server")
	return s.httpServer.ListenAndServe()
}

func (s *Server) GracefulShutdown(done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown with error")
	}

	if err := s.db.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database connection")
	}

	log.Info().Msg("Server exiting")
	done <- true
}

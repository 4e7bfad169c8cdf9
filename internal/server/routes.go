package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rolodex/internal/handlers"
	"rolodex/internal/middlewares"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	r.Use(middlewares.Recover)
	r.Use(middlewares.CorsMiddleware)
	r.Use(middlewares.RateLimit)
	r.Use(middlewares.NewPrometheusMiddleware().Instrument)

	ch := handlers.NewCommonHandler(s.db)
	r.HandleFunc("/", ch.HelloWorldHandler)
	r.HandleFunc("/health", ch.HealthHandler)
	r.Handle("/metrics", promhttp.Handler())

	// Static API description; kept decoupled from route registration.
	r.HandleFunc("/api-docs", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "api/openapi.json")
	}).Methods("GET")

	s.registerContactRoutes(r)
	s.registerUserRoutes(r)
	s.registerProfessionalRoutes(r)

	return r
}

func (s *Server) registerContactRoutes(r *mux.Router) {
	ch := handlers.NewContactHandler(s.contactService)

	r.HandleFunc("/contacts", ch.GetContacts).Methods("GET", "OPTIONS")
	r.HandleFunc("/contacts", ch.CreateContact).Methods("POST", "OPTIONS")
	r.HandleFunc("/contacts/{id}", ch.GetContactByID).Methods("GET", "OPTIONS")
	r.HandleFunc("/contacts/{id}", ch.UpdateContact).Methods("PUT", "OPTIONS")
	r.HandleFunc("/contacts/{id}", ch.DeleteContact).Methods("DELETE", "OPTIONS")
}

func (s *Server) registerUserRoutes(r *mux.Router) {
	uh := handlers.NewUserHandler(s.userService)

	r.HandleFunc("/users", uh.GetUsers).Methods("GET", "OPTIONS")
	r.HandleFunc("/users", uh.CreateUser).Methods("POST", "OPTIONS")
	r.HandleFunc("/users/{id}", uh.GetUserByID).Methods("GET", "OPTIONS")
	r.HandleFunc("/users/{id}", uh.UpdateUser).Methods("PUT", "OPTIONS")
	r.HandleFunc("/users/{id}", uh.DeleteUser).Methods("DELETE", "OPTIONS")
}

func (s *Server) registerProfessionalRoutes(r *mux.Router) {
	ph := handlers.NewProfessionalHandler(s.professionalService)

	r.HandleFunc("/professional", ph.GetProfessional).Methods("GET", "OPTIONS")
	r.HandleFunc("/professional", ph.CreateProfessional).Methods("POST", "OPTIONS")
	r.HandleFunc("/professional", ph.UpdateProfessional).Methods("PUT", "OPTIONS")
	r.HandleFunc("/professional", ph.DeleteProfessional).Methods("DELETE", "OPTIONS")
}

// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nutriplan/v1/internal/domain/catalog"
	"github.com/nutriplan/v1/internal/infrastructure/config"
	"github.com/nutriplan/v1/internal/infrastructure/http/handlers"
	"github.com/nutriplan/v1/internal/infrastructure/http/middleware"
	"github.com/nutriplan/v1/internal/infrastructure/monitoring"
	"github.com/nutriplan/v1/internal/ports/inbound"
)

// Server represents the JSON API HTTP server
type Server struct {
	config    *config.Config
	logger    *zap.Logger
	server    *http.Server
	router    *chi.Mux
	users     inbound.UserService
	planner   inbound.PlannerService
	analytics inbound.AnalyticsService
	foods     *catalog.Store
	metrics   *monitoring.Metrics
}

// NewServer creates a new API server instance
func NewServer(
	cfg *config.Config,
	log *zap.Logger,
	users inbound.UserService,
	planner inbound.PlannerService,
	analytics inbound.AnalyticsService,
	foods *catalog.Store,
	metrics *monitoring.Metrics,
) *Server {
	server := &Server{
		config:    cfg,
		logger:    log,
		users:     users,
		planner:   planner,
		analytics: analytics,
		foods:     foods,
		metrics:   metrics,
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        server.router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return server
}

// setupRoutes configures the JSON API routes
func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(middleware.Metrics(s.metrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(chimiddleware.Timeout(s.config.Server.RequestTimeout))
	if s.config.Server.EnableCompression {
		r.Use(chimiddleware.Compress(5))
	}
	r.Use(middleware.JSONOnly())

	r.Get(s.config.Monitoring.HealthCheckPath, s.handleHealthCheck)
	if s.config.Monitoring.EnableMetrics {
		r.Handle(s.config.Monitoring.MetricsPath, promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *Server) setupAPIV1Routes(r chi.Router) {
	authH := handlers.NewAuthHandlers(s.users, s.logger)
	planH := handlers.NewPlanHandlers(s.planner, s.logger)
	nutritionH := handlers.NewNutritionHandlers(s.analytics, s.foods, s.logger)

	// Authentication routes
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authH.Register)
		r.Post("/login", authH.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(s.users))
			r.Get("/profile", authH.GetProfile)
			r.Put("/profile", authH.UpdateProfile)
		})
	})

	// Food search is public reference data
	r.Get("/foods/search", nutritionH.SearchFoods)

	// Meal plan routes
	r.Route("/meal-plans", func(r chi.Router) {
		r.Use(middleware.Authenticate(s.users))
		r.Post("/generate", planH.GeneratePlan)
		r.Get("/", planH.ListPlans)
		r.Get("/{id}", planH.GetPlan)
		r.Delete("/{id}", planH.DeletePlan)
	})

	// Nutrition routes
	r.Route("/nutrition", func(r chi.Router) {
		r.Use(middleware.Authenticate(s.users))
		r.Get("/targets", planH.NutritionTargets)
		r.Post("/logs", nutritionH.LogFood)
		r.Get("/logs", nutritionH.ListLogs)
		r.Delete("/logs/{id}", nutritionH.DeleteLog)
		r.Get("/insights", nutritionH.Insights)
		r.Get("/summary", nutritionH.Summary)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting JSON API server",
		zap.String("address", s.server.Addr),
	)
	return s.server.ListenAndServe()
}

// Server returns the underlying HTTP server instance
func (s *Server) Server() *http.Server {
	return s.server
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server")
	return s.server.Shutdown(ctx)
}

// handleHealthCheck provides the health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","service":"%s","version":"%s","timestamp":%d}`,
		s.config.App.Name, s.config.App.Version, time.Now().Unix())
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/investdash/investment-dashboard-backend/internal/api/handlers"
	custommiddleware "github.com/investdash/investment-dashboard-backend/internal/api/middleware"
	"github.com/investdash/investment-dashboard-backend/internal/config"
	"github.com/investdash/investment-dashboard-backend/internal/service"
)

// Services bundles the service dependencies the router needs.
type Services struct {
	User       *service.UserService
	Fund       *service.FundService
	Investment *service.InvestmentService
	Dashboard  *service.DashboardService
	Perform    *service.PerformanceService
	Allocation *service.AllocationService
	Overlap    *service.OverlapService
	System     *service.SystemService
	NavSync    *service.NavSyncService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System, svc.NavSync)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
			r.With(custommiddleware.APIKey(cfg.Internal.APIKey)).
				Post("/nav-sync", systemHandler.TriggerNavSync)
		})

		r.Route("/users", func(r chi.Router) {
			userHandler := handlers.NewUserHandler(svc.User)
			investmentHandler := handlers.NewInvestmentHandler(svc.Investment)
			r.Post("/", userHandler.CreateUser)
			r.Get("/", userHandler.GetUsers)
			r.Get("/{userId}", userHandler.GetUser)
			r.Get("/{userId}/investments", investmentHandler.GetUserInvestments)
		})

		r.Route("/funds", func(r chi.Router) {
			fundHandler := handlers.NewFundHandler(svc.Fund)
			r.Post("/", fundHandler.CreateFund)
			r.Get("/", fundHandler.GetFunds)
			r.Get("/{fundId}", fundHandler.GetFund)
			r.Put("/{fundId}", fundHandler.UpdateFund)
			r.Delete("/{fundId}", fundHandler.DeleteFund)
			r.Post("/{fundId}/nav", fundHandler.AddNAVPoint)
			r.Get("/{fundId}/nav", fundHandler.GetFundHistory)
		})

		r.Route("/investments", func(r chi.Router) {
			investmentHandler := handlers.NewInvestmentHandler(svc.Investment)
			r.Post("/", investmentHandler.CreateInvestment)
			r.Route("/{investmentId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateInvestmentIDMiddleware)
				r.Get("/", investmentHandler.GetInvestment)
				r.Put("/", investmentHandler.UpdateInvestment)
				r.Delete("/", investmentHandler.DeleteInvestment)
			})
		})

		r.Route("/analysis", func(r chi.Router) {
			analysisHandler := handlers.NewAnalysisHandler(svc.Dashboard, svc.Perform, svc.Allocation, svc.Overlap)
			r.Get("/dashboard/{userId}", analysisHandler.GetDashboard)
			r.Get("/performance/{userId}", analysisHandler.GetPerformance)
			r.Get("/allocation/{userId}", analysisHandler.GetAllocation)
			r.Get("/overlap/{userId}", analysisHandler.GetOverlap)
		})
	})

	return r
}

package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	database "github.com/pkarczmarek/FinanceTracker/db"
	"github.com/pkarczmarek/FinanceTracker/internal/config"
	"github.com/pkarczmarek/FinanceTracker/internal/finance/application"
	"github.com/pkarczmarek/FinanceTracker/internal/finance/infrastructure"
	"github.com/pkarczmarek/FinanceTracker/internal/finance/interfaces"
	"github.com/pkarczmarek/FinanceTracker/internal/logger"
	"github.com/pkarczmarek/FinanceTracker/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(log zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router             *http.ServeMux
	transactionHandler *interfaces.TransactionHandler
	chartHandler       *interfaces.ChartHandler
	userHandler        *user.Handler
	dbService          *database.DBService
}

func NewServer(
	transactionHandler *interfaces.TransactionHandler,
	chartHandler *interfaces.ChartHandler,
	userHandler *user.Handler,
	dbService *database.DBService,
) *Server {
	return &Server{
		transactionHandler: transactionHandler,
		chartHandler:       chartHandler,
		userHandler:        userHandler,
		dbService:          dbService,
		router:             http.NewServeMux(),
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	stats := s.dbService.Health()
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, stats)
}

func (s *Server) RegisterRoutes() {
	apiRoutes := http.NewServeMux()

	// Incomes
	apiRoutes.Handle("POST /api/add-income", http.HandlerFunc(s.transactionHandler.AddIncome))
	apiRoutes.Handle("GET /api/get-incomes", http.HandlerFunc(s.transactionHandler.GetIncomes))
	apiRoutes.Handle("DELETE /api/delete-income/{id}", http.HandlerFunc(s.transactionHandler.DeleteIncome))

	// Expenses
	apiRoutes.Handle("POST /api/add-expense", http.HandlerFunc(s.transactionHandler.AddExpense))
	apiRoutes.Handle("GET /api/get-expenses", http.HandlerFunc(s.transactionHandler.GetExpenses))
	apiRoutes.Handle("DELETE /api/delete-expense/{id}", http.HandlerFunc(s.transactionHandler.DeleteExpense))
	apiRoutes.Handle("PUT /api/edit-expense/{id}", http.HandlerFunc(s.transactionHandler.EditExpense))

	// Budgets
	apiRoutes.Handle("POST /api/add-budget", http.HandlerFunc(s.transactionHandler.AddBudget))
	apiRoutes.Handle("GET /api/get-budgets", http.HandlerFunc(s.transactionHandler.GetBudgets))
	apiRoutes.Handle("DELETE /api/delete-budget/{id}", http.HandlerFunc(s.transactionHandler.DeleteBudget))

	// Charts and reports
	apiRoutes.Handle("GET /api/chart-data", http.HandlerFunc(s.chartHandler.GetChartData))
	apiRoutes.Handle("GET /api/report-data", http.HandlerFunc(s.chartHandler.GetReportData))

	// Users
	apiRoutes.Handle("POST /api/signup", http.HandlerFunc(s.userHandler.HandleSignUp))
	apiRoutes.Handle("POST /api/signin", http.HandlerFunc(s.userHandler.HandleSignIn))
	apiRoutes.Handle("GET /api/users", http.HandlerFunc(s.userHandler.HandleGetUsers))
	apiRoutes.Handle("DELETE /api/user/{id}", http.HandlerFunc(s.userHandler.HandleDeleteUser))

	apiRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))
	apiRoutes.Handle("GET /api/health", http.HandlerFunc(s.handleHealth))

	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", apiRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	appLogger := logger.New()

	if err := godotenv.Load(); err != nil {
		appLogger.Info().Msg("No .env file found, continuing with system environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		appLogger.Fatal().Err(err).Msg("Invalid configuration")
	}

	dbService, err := database.NewDBService(cfg.DBConnectionString)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Could not initialize database")
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB); err != nil {
		appLogger.Fatal().Err(err).Msg("Could not run migrations")
	}

	incomeRepo := infrastructure.NewIncomeRepository(dbService.DB)
	expenseRepo := infrastructure.NewExpenseRepository(dbService.DB)
	budgetRepo := infrastructure.NewBudgetRepository(dbService.DB)

	transactionService := application.NewTransactionService(incomeRepo, expenseRepo, budgetRepo)
	chartService := application.NewChartService(incomeRepo, expenseRepo, budgetRepo)

	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)
	chartHandler := interfaces.NewChartHandler(chartService, respondJSON, respondError)

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	server := NewServer(transactionHandler, chartHandler, userHandler, dbService)
	server.RegisterRoutes()

	scheduler := cron.New()
	_, err = scheduler.AddFunc("@every "+cfg.HealthCheckInterval.String(), func() {
		stats := dbService.Health()
		if stats["status"] != "up" {
			appLogger.Error().Str("error", stats["error"]).Msg("Database health check failed")
			return
		}
		appLogger.Debug().Msg("Database health check passed")
	})
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Could not schedule database health check")
	}
	scheduler.Start()
	defer scheduler.Stop()

	addr := ":" + cfg.Port
	appLogger.Info().Str("addr", addr).Msg("Starting server")
	if err := http.ListenAndServe(addr, loggingMiddleware(appLogger, server.router)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

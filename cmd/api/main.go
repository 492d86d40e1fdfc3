package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/passcheck/passcheck-go/internal/config"
	"github.com/passcheck/passcheck-go/internal/handler"
	"github.com/passcheck/passcheck-go/internal/middleware"
	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/repository"
	"github.com/passcheck/passcheck-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	defaultPolicy := model.Policy{
		MinLength:     cfg.MinLength,
		RequireDigit:  true,
		RequireCase:   true,
		RequireSymbol: true,
	}

	genService := service.NewGeneratorService()
	genHandler := handler.NewGeneratorHandler(genService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/v1/generate", genHandler.HandleGenerate)

	// Initialize DB-backed routes if the database is available. The check and
	// generate endpoints stay up either way.
	var policyRepo *repository.PolicyRepository
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed, policy store and auth routes disabled", "error", err)
	} else {
		policyRepo = repository.NewPolicyRepository(db)

		// A stored policy may override the built-in default for check and
		// registration.
		if stored := loadDefaultPolicy(policyRepo, cfg.DefaultPolicyName); stored != nil {
			defaultPolicy = *stored
		}
	}

	checkService := service.NewCheckService(policyRepo, defaultPolicy)
	checkHandler := handler.NewCheckHandler(checkService)
	r.Post("/api/v1/check", checkHandler.HandleCheck)

	if policyRepo != nil {
		policyService := service.NewPolicyService(policyRepo)
		policyHandler := handler.NewPolicyHandler(policyService)

		userRepo := repository.NewUserRepository(db)
		authService := service.NewAuthService(userRepo, defaultPolicy, cfg.JWTSecret, cfg.JWTExpiry)
		authHandler := handler.NewAuthHandler(authService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)

			r.Get("/api/v1/policies", policyHandler.HandleListPolicies)
			r.Get("/api/v1/policies/{name}", policyHandler.HandleGetPolicy)
			r.Put("/api/v1/policies/{name}", policyHandler.HandleSavePolicy)
			r.Delete("/api/v1/policies/{name}", policyHandler.HandleDeletePolicy)
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// loadDefaultPolicy fetches the named stored policy, returning nil when it
// does not exist or the lookup fails.
func loadDefaultPolicy(repo *repository.PolicyRepository, name string) *model.Policy {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stored, err := repo.GetByName(ctx, name)
	if err != nil {
		slog.Info("no stored default policy, using built-in default", "name", name)
		return nil
	}

	slog.Info("using stored default policy", "name", name, "min_length", stored.MinLength)
	return &model.Policy{
		MinLength:     stored.MinLength,
		RequireDigit:  stored.RequireDigit,
		RequireCase:   stored.RequireCase,
		RequireSymbol: stored.RequireSymbol,
	}
}

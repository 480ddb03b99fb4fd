package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskboard/panel/internal/config"
	"github.com/taskboard/panel/internal/handler"
	"github.com/taskboard/panel/internal/logging"
	"github.com/taskboard/panel/internal/repository"
	"github.com/taskboard/panel/internal/service"
	"github.com/taskboard/panel/internal/view"
	"github.com/taskboard/panel/pkg/api"
	"github.com/taskboard/panel/pkg/auth"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	views, err := view.New()
	if err != nil {
		logging.Fatal("failed to parse templates", "error", err)
	}

	// activity log is optional; without DATABASE_URL nothing is recorded
	var (
		db         repository.DB
		activities service.ActivityService
	)
	if cfg.ActivityLogEnabled() {
		pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logging.Fatal("failed to connect to database", "error", err)
		}
		defer pool.Close()
		db = pool
		activities = service.NewActivityService(repository.NewPgActivityRepository(pool))
	} else {
		slog.Info("activity log disabled: DATABASE_URL not set")
	}

	authClient := api.NewAuthClient(cfg.AuthAPI, cfg.RequestTimeout)
	projectClient := api.NewProjectClient(cfg.ProjectAPI, cfg.RequestTimeout)
	taskClient := api.NewTaskClient(cfg.TaskAPI, cfg.RequestTimeout)

	loginLimit := handler.NewRateLimiter(cfg.LoginRateLimit)
	done := make(chan struct{})
	go loginLimit.Run(done, time.Minute)

	h := handler.Routes(handler.Deps{
		Views:          views,
		Verifier:       auth.NewVerifier(cfg.JWTSecret, cfg.PreviousSecrets...),
		DB:             db,
		Auth:           service.NewAuthService(authClient, activities),
		Projects:       service.NewProjectService(projectClient, activities),
		Tasks:          service.NewTaskService(taskClient, activities),
		Users:          service.NewUserService(authClient, cfg.EmailDomain, activities),
		Activities:     activities,
		LoginLimit:     loginLimit,
		EmailDomain:    cfg.EmailDomain,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		// page renders may wait on several backend calls
		WriteTimeout: cfg.RequestTimeout + 10*time.Second,
	}

	go func() {
		slog.Info("server listening",
			"addr", server.Addr,
			"auth_api", cfg.AuthAPI,
			"project_api", cfg.ProjectAPI,
			"task_api", cfg.TaskAPI,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	close(done)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}

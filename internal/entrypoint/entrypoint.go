package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/birdwatch/internal/auth"
	"github.com/mrlokans/birdwatch/internal/config"
	"github.com/mrlokans/birdwatch/internal/database"
	"github.com/mrlokans/birdwatch/internal/database/birds"
	"github.com/mrlokans/birdwatch/internal/database/sightings"
	"github.com/mrlokans/birdwatch/internal/demo"
	http_controllers "github.com/mrlokans/birdwatch/internal/http"
	"github.com/mrlokans/birdwatch/internal/logging"
	"github.com/mrlokans/birdwatch/internal/scheduler"
	"github.com/mrlokans/birdwatch/internal/services"
	"github.com/mrlokans/birdwatch/internal/tasks"
)

// App is a fully wired server: storage, services, background tasks and
// the HTTP router.
type App struct {
	Router *gin.Engine

	log         logging.Logger
	db          *database.Database
	taskClient  *tasks.Client
	taskCancel  context.CancelFunc
	maintenance *scheduler.MaintenanceScheduler
	limiter     *auth.RateLimiter
}

// NewApp opens the database and starts background workers. Call Shutdown
// to release them.
func NewApp(cfg *config.Config, version string, log logging.Logger) (*App, error) {
	if cfg.Maintenance.Enabled && cfg.Tasks.Enabled {
		if err := scheduler.ValidateCronSchedule(cfg.Maintenance.Schedule); err != nil {
			return nil, fmt.Errorf("invalid MAINTENANCE_SCHEDULE: %w", err)
		}
	}

	db, err := database.NewDatabase(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := &App{log: log, db: db}

	birdRepo := birds.NewRepository(db.DB)
	sightingRepo := sightings.NewRepository(db.DB)

	// Keep the interface nil when the queue is disabled.
	var taskQueue http_controllers.TaskQueue
	if cfg.Tasks.Enabled {
		taskClient, err := tasks.NewClient(cfg.Database.Path, tasks.ConfigFrom(cfg.Tasks), log)
		if err != nil {
			app.Shutdown(context.Background())
			return nil, fmt.Errorf("failed to initialize task queue: %w", err)
		}
		taskClient.Register(tasks.NewCleanupOrphanSightingsQueue(sightingRepo, log))

		var taskCtx context.Context
		taskCtx, app.taskCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)

		app.taskClient = taskClient
		taskQueue = taskClient

		if cfg.Maintenance.Enabled {
			app.maintenance = scheduler.NewMaintenanceScheduler(cfg.Maintenance.Schedule, taskClient, log)
			if err := app.maintenance.Start(taskCtx); err != nil {
				app.Shutdown(context.Background())
				return nil, err
			}
		}
	} else {
		log.Info("Task queue disabled; maintenance endpoints will answer 503")
	}

	var authMiddleware *auth.Middleware
	if cfg.Auth.APIKeyHash != "" {
		app.limiter = auth.NewRateLimiter(auth.DefaultRateLimitConfig())
		authMiddleware = auth.NewMiddleware(cfg.Auth.APIKeyHash, app.limiter)
		log.Info("API key authentication enabled")
	} else {
		log.Info("Authentication: none (no API key required)")
	}

	var demoMiddleware *demo.Middleware
	if cfg.Demo.ReadOnly {
		demoMiddleware = demo.NewMiddleware(true)
		log.Info("Read-only mode enabled - write operations will be blocked")
	}

	app.Router = http_controllers.NewRouter(http_controllers.RouterConfig{
		BirdService:     services.NewBirdService(birdRepo),
		SightingService: services.NewSightingService(sightingRepo),
		Database:        db,
		BirdCounter:     birdRepo,
		SightingCounter: sightingRepo,
		AuthMiddleware:  authMiddleware,
		DemoMiddleware:  demoMiddleware,
		TaskQueue:       taskQueue,
		Logger:          log,
		Version:         version,
	})

	return app, nil
}

// Shutdown stops background work and closes the database. Safe to call
// on a partially built App.
func (a *App) Shutdown(ctx context.Context) {
	if a.maintenance != nil {
		a.maintenance.Stop()
	}
	if a.taskClient != nil {
		if !a.taskClient.Stop(ctx) {
			a.log.Warn("Task queue did not drain before the shutdown deadline")
		}
		if a.taskCancel != nil {
			a.taskCancel()
		}
		if err := a.taskClient.Close(); err != nil {
			a.log.Errorf("Error closing task client: %v", err)
		}
	}
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Errorf("Error closing database: %v", err)
		}
	}
}

// Serve runs the HTTP server until SIGINT or SIGTERM, then shuts down
// gracefully within the configured timeout.
func Serve(app *App, cfg *config.Config) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		app.log.Infof("Starting server at %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if err != nil {
			app.Shutdown(context.Background())
			return fmt.Errorf("listen: %w", err)
		}
	case <-quit:
	}
	app.log.Infof("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := srv.Shutdown(ctx)
	app.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	app.log.Info("Server exiting")
	return nil
}

// Run builds the application from cfg and serves it.
func Run(cfg *config.Config, version string) error {
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Infof("Starting Birdwatch v%s", version)

	app, err := NewApp(cfg, version, log)
	if err != nil {
		return err
	}
	return Serve(app, cfg)
}

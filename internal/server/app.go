// Package server wires the clipboard sync service together: configuration,
// storage, token handling, the fanout hub, the HTTP/websocket API and the
// background eviction loop, with graceful shutdown on OS signals.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/clipsync/internal/broadcast"
	"github.com/dmitrijs2005/clipsync/internal/logging"
	"github.com/dmitrijs2005/clipsync/internal/server/auth"
	"github.com/dmitrijs2005/clipsync/internal/server/config"
	"github.com/dmitrijs2005/clipsync/internal/server/models"
	"github.com/dmitrijs2005/clipsync/internal/server/repositories/clipboard"
	"github.com/dmitrijs2005/clipsync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/clipsync/internal/server/rest"
	"github.com/dmitrijs2005/clipsync/internal/server/services"
)

type App struct {
	config           *config.Config
	logger           logging.Logger
	repos            repomanager.RepositoryManager
	authService      *services.AuthService
	userService      *services.UserService
	deviceService    *services.DeviceService
	clipboardService *services.ClipboardService
}

func NewApp(cfg *config.Config) (*App, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("signing key is not configured")
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var repos repomanager.RepositoryManager
	if cfg.DatabaseDSN != "" {
		pm, err := repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		repos = pm
	} else {
		repos = repomanager.NewMemoryRepositoryManager()
	}

	hub := broadcast.NewHub[models.Clipboard](cfg.BroadcastCapacity)

	authService := services.NewAuthService(cfg, auth.NewBlacklist())
	userService := services.NewUserService(repos.Users(), authService, cfg.MinPasswordLength)
	deviceService := services.NewDeviceService(repos.Devices())
	clipboardService := services.NewClipboardService(clipboard.NewMemoryRepository(), hub, cfg.MaxContentSize, cfg.RetentionPeriod)

	return &App{
		config:           cfg,
		logger:           logger,
		repos:            repos,
		authService:      authService,
		userService:      userService,
		deviceService:    deviceService,
		clipboardService: clipboardService,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	handler := rest.NewHandler(app.authService, app.userService, app.deviceService, app.clipboardService, app.logger)

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: handler.Router(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, "http shutdown error", "error", err.Error())
		}
	}()

	app.logger.Info(ctx, "http server listening", "addr", app.config.EndpointAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, "http server error", "error", err.Error())
		cancelFunc()
	}
}

// startEvictionLoop periodically drops clipboard entries older than the
// retention period. Eviction is maintenance work and runs off the request
// path.
func (app *App) startEvictionLoop(ctx context.Context) {
	ticker := time.NewTicker(app.config.EvictionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			evicted, err := app.clipboardService.EvictExpired(ctx)
			if err != nil {
				app.logger.Error(ctx, "eviction error", "error", err.Error())
				continue
			}
			if evicted > 0 {
				app.logger.Info(ctx, "evicted expired clipboard entries", "count", evicted)
			}
		}
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app")

	app.initSignalHandler(cancelFunc)

	if err := app.repos.RunMigrations(ctx); err != nil {
		app.logger.Error(ctx, "migration error", "error", err.Error())
		return
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startEvictionLoop(ctx)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "storage close error", "error", err.Error())
	}

	app.logger.Info(ctx, "app stopped")
}

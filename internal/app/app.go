package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/1739467001-svg/kaiyan/internal/config"
	"github.com/1739467001-svg/kaiyan/internal/domain"
	"github.com/1739467001-svg/kaiyan/internal/handler"
	"github.com/1739467001-svg/kaiyan/internal/i18n"
	"github.com/1739467001-svg/kaiyan/internal/middleware"
	"github.com/1739467001-svg/kaiyan/internal/notification"
	"github.com/1739467001-svg/kaiyan/internal/repository"
	"github.com/1739467001-svg/kaiyan/internal/router"
	"github.com/1739467001-svg/kaiyan/internal/scheduler"
	"github.com/1739467001-svg/kaiyan/internal/service"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"kaiyan",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	defaultLang := domain.Language(a.cfg.Locale.Default)

	catalogRepo := repository.NewCatalogRepo(defaultLang)
	orderRepo := repository.NewOrderRepo()
	translator := i18n.New(defaultLang)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	catalogService := service.NewCatalogService(catalogRepo)
	bookingService := service.NewBookingService(
		catalogRepo,
		orderRepo,
		n,
		a.cfg.Booking.ConfirmationDisplay,
		a.cfg.Booking.FlowTTL,
		a.log,
	)
	sessionService := service.NewSessionService(
		a.cfg.Admin.Username,
		a.cfg.Admin.Password,
		a.cfg.Session.TTL,
		a.cfg.Session.LoginDelay,
		a.log,
	)
	localeService := service.NewLocaleService(translator, catalogRepo, a.log)
	dashboardService := service.NewDashboardService()

	a.scheduler = scheduler.New(
		sessionService,
		bookingService,
		a.cfg.Sweeper.Interval,
		a.log,
	)

	h := handler.NewHandler(catalogService, bookingService, sessionService, localeService, dashboardService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.AdminAuth(sessionService),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

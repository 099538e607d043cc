package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hestiadash/hestia/internal/bang"
	bangStore "github.com/hestiadash/hestia/internal/bang/store"
	"github.com/hestiadash/hestia/internal/config"
	"github.com/hestiadash/hestia/internal/dashboard"
	"github.com/hestiadash/hestia/internal/database"
	hestiaHttp "github.com/hestiadash/hestia/internal/http"
	bangHandler "github.com/hestiadash/hestia/internal/http/bang"
	dashboardHandler "github.com/hestiadash/hestia/internal/http/dashboard"
	financeHandler "github.com/hestiadash/hestia/internal/http/finance"
	linkHandler "github.com/hestiadash/hestia/internal/http/link"
	reminderHandler "github.com/hestiadash/hestia/internal/http/reminder"
	userHandler "github.com/hestiadash/hestia/internal/http/user"
	"github.com/hestiadash/hestia/internal/ledger"
	ledgerStore "github.com/hestiadash/hestia/internal/ledger/store"
	"github.com/hestiadash/hestia/internal/link"
	linkStore "github.com/hestiadash/hestia/internal/link/store"
	"github.com/hestiadash/hestia/internal/reminder"
	reminderStore "github.com/hestiadash/hestia/internal/reminder/store"
	"github.com/hestiadash/hestia/internal/user"
	userStore "github.com/hestiadash/hestia/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetLogLoggerLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DB.Migrate {
		if err := database.Migrate(cfg.ConnectionString()); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	db, err := database.New(ctx, cfg.Database())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		userService     = user.NewService(userStore.New(db))
		bangService     = bang.NewService(bangStore.New(db))
		linkService     = link.NewService(linkStore.New(db))
		reminderService = reminder.NewService(reminderStore.New(db))
		ledgerService   = ledger.NewService(ledgerStore.New(db))
		homeService     = dashboard.NewService(linkService, userService, reminderService, ledgerService)
	)

	handlers := hestiaHttp.Handlers{
		Users: userHandler.NewHandler(userService, userHandler.Options{
			SignupEnabled:  cfg.Features.Signup,
			DefaultBangURL: cfg.Features.DefaultBang,
		}),
		Bangs:     bangHandler.NewHandler(bangService, cfg.App.Name),
		Links:     linkHandler.NewHandler(linkService),
		Reminders: reminderHandler.NewHandler(reminderService),
		Finance:   financeHandler.NewHandler(ledgerService, cfg.Finance.HistoryLimit),
		Dashboard: dashboardHandler.NewHandler(homeService),
	}

	router := hestiaHttp.New(hestiaHttp.Options{
		Timeout:        cfg.Server.Timeout,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, hestiaHttp.NewMetrics(), userService, handlers)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr, "signup", cfg.Features.Signup)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

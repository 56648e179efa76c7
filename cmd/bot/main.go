package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/soralabs/warehouse-bot/internal/bot"
	"github.com/soralabs/warehouse-bot/internal/config"
	"github.com/soralabs/warehouse-bot/internal/domain/audit"
	"github.com/soralabs/warehouse-bot/internal/domain/notify"
	"github.com/soralabs/warehouse-bot/internal/domain/products"
	"github.com/soralabs/warehouse-bot/internal/domain/reports"
	"github.com/soralabs/warehouse-bot/internal/domain/users"
	"github.com/soralabs/warehouse-bot/internal/infra/db"
	httpx "github.com/soralabs/warehouse-bot/internal/infra/http"
	"github.com/soralabs/warehouse-bot/internal/infra/logger"
	"github.com/soralabs/warehouse-bot/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/subosito/gotenv"
)

const updateTimeoutSec = 30

func runMigrations(dsn string, log *slog.Logger) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	_ = gotenv.Load()

	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN, log); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	usersRepo := users.NewRepo(pool)
	productsRepo := products.NewRepo(pool)
	reportsRepo := reports.NewRepo(pool)
	auditRepo := audit.NewRepo(pool)
	notifyRepo := notify.NewRepo(pool)

	// Главный администратор заводится заранее, чтобы решения о доступе
	// не зависели от его первого сообщения
	if _, err := usersRepo.Register(ctx, cfg.Telegram.AdminID, "", "", true); err != nil {
		log.Error("admin seed failed", "err", err)
		return
	}

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Error("telegram auth failed", "err", err)
		return
	}
	log.Info("telegram authorized", "bot", api.Self.UserName)

	b := bot.New(api, log, usersRepo, productsRepo, reportsRepo, auditRepo, notifyRepo,
		session.NewStore(), cfg.Telegram.AdminID,
		cfg.Warehouse.LowStockThreshold, cfg.Reports.StartingCash)
	go func() {
		if err := b.Run(ctx, updateTimeoutSec); err != nil && ctx.Err() == nil {
			log.Error("bot loop error", "err", err)
		}
	}()

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}

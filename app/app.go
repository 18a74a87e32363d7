// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"errors"
	"go-bank-ledger/config"
	"go-bank-ledger/db"
	"go-bank-ledger/handler"
	"go-bank-ledger/logger"
	"go-bank-ledger/repository"
	"go-bank-ledger/router"
	"go-bank-ledger/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// App is the fully wired service graph. DB and Redis are nil when the
// memory backend or no cache is in use.
type App struct {
	DB    *sql.DB
	Redis *redis.Client

	Accounts     *service.AccountService
	ATMs         *service.ATMService
	Ledger       *service.LedgerService
	Transactions *service.TransactionService

	Router http.Handler
}

// NewWithBackend wires services, handlers and the router on top of an existing
// storage backend. cache may be nil.
func NewWithBackend(backend repository.Backend, cache service.ICacheClient, ledgerCfg config.LedgerConfig) *App {
	policy := service.NewWithdrawalPolicy(decimal.NewFromFloat(ledgerCfg.DailyWithdrawalLimit))

	a := &App{
		Accounts:     service.NewAccountService(backend.Accounts, cache),
		ATMs:         service.NewATMService(backend.ATMs),
		Ledger:       service.NewLedgerService(backend.Store, policy, service.WithCache(cache)),
		Transactions: service.NewTransactionService(backend.Accounts, backend.Transactions),
	}

	a.Router = router.NewRouter(
		handler.NewAccountHandler(a.Accounts),
		handler.NewATMHandler(a.ATMs),
		handler.NewTransactionHandler(a.Ledger, a.Transactions),
	)
	return a
}

// New connects the storage selected by cfg.Storage.Driver, applies migrations
// when asked to, attaches Redis when enabled and wires everything together.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	var (
		backend  repository.Backend
		database *sql.DB
	)

	switch cfg.Storage.Driver {
	case "memory":
		logger.Log.Warn("Using in-memory storage; data will not survive a restart")
		backend = repository.NewMemoryStore().Backend()
	default:
		conn, err := db.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		if cfg.Migrations.AutoMigrate {
			if err := db.RunMigrations(cfg.Migrations.Path, cfg.Database.URL()); err != nil {
				conn.Close()
				return nil, err
			}
		}
		database = conn
		backend = repository.NewPostgresBackend(conn)
	}

	// A nil *redis.Client must not reach the services as a non-nil interface.
	var (
		cache service.ICacheClient
		rdb   *redis.Client
	)
	if cfg.Redis.Enabled {
		client, err := db.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			if database != nil {
				database.Close()
			}
			return nil, err
		}
		rdb, cache = client, client
	}

	a := NewWithBackend(backend, cache, cfg.Ledger)
	a.DB = database
	a.Redis = rdb
	return a, nil
}

// Close releases the database pool and the Redis client, if any.
func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

// Run loads config.yml from the working directory, starts the HTTP server and
// blocks until SIGINT or SIGTERM, then shuts down gracefully.
func Run() {
	logger.Init()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalf("Error loading configuration: %v", err)
	}
	logger.Configure(cfg.Log.Level, cfg.Log.Format)
	logger.Log.WithField("storage", cfg.Storage.Driver).Info("Configuration loaded successfully")

	a, err := New(context.Background(), cfg)
	if err != nil {
		logger.Log.Fatalf("Error initializing application: %v", err)
	}
	defer a.Close()

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Errorf("Server forced to shutdown: %v", err)
		return
	}

	logger.Log.Info("Server exited properly")
}


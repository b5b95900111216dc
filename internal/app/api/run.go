package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	invoiceserver "github.com/Mr-dragon5/invoice-dashboard/server"

	authmemory "github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/adapters/memory"
	authpostgres "github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/adapters/persistence/postgres"
	credentials "github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/adapters/provider/credentials"
	authapp "github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/application"
	authdomain "github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/domain"
	authports "github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/ports"

	rediscache "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/adapters/cache/redis"
	invoicesmemory "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/adapters/memory"
	invoicesobs "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/adapters/observability"
	invoicespostgres "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/adapters/persistence/postgres"
	invoicesworkflows "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/adapters/workflows"
	invoicesapp "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/application"
	invoicesports "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/ports"

	platformmigrations "github.com/Mr-dragon5/invoice-dashboard/internal/platform/migrations"
	platformobservability "github.com/Mr-dragon5/invoice-dashboard/internal/platform/observability"
	platformpostgres "github.com/Mr-dragon5/invoice-dashboard/internal/platform/postgres"
	platformredis "github.com/Mr-dragon5/invoice-dashboard/internal/platform/redis"
)

// Run boots the invoice dashboard HTTP API with observability, repositories,
// the page cache, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "invoice-dashboard-api"
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := connectPostgres(ctx, cfg, logger)
	defer cleanupDB()

	redisClient, cleanupRedis := connectRedis(ctx, cfg, logger)
	defer cleanupRedis()

	var viewCache invoicesports.ViewCache = invoicesports.NoopViewCache
	if redisClient != nil {
		viewCache = rediscache.NewViewCache(redisClient)
	}

	var invoiceRepo invoicesports.Repository
	if db != nil {
		invoiceRepo = invoicespostgres.NewRepository(db)
	} else {
		invoiceRepo = invoicesmemory.NewRepository()
	}
	invoiceService := invoicesobs.New(
		invoicesapp.NewService(invoiceRepo, viewCache),
		invoicesobs.WithLogger(logger),
		invoicesobs.WithTracer(instruments.Tracer("internal.invoices.application")),
		invoicesobs.WithMeter(instruments.Meter("internal.invoices.application")),
	)

	var invoiceWorkflows invoicesports.WorkflowOrchestrator = invoicesworkflows.NewInlineInvoiceWorkflows(invoiceService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, running invoice creation inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		invoiceWorkflows = invoicesworkflows.NewTemporalInvoiceWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	authService := buildAuthService(ctx, cfg, db, logger)

	handlers := invoiceserver.ApiHandleFunctions{
		InvoiceAPI: invoiceserver.NewInvoiceAPI(invoiceService, invoiceWorkflows),
		AuthAPI:    invoiceserver.NewAuthAPI(authService),
	}

	router := invoiceserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("invoice dashboard API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("invoice dashboard API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// buildAuthService wires the credential provider against Postgres when a
// connection is available and memory otherwise. A seed user from the
// environment lets a fresh deployment log in.
func buildAuthService(ctx context.Context, cfg Config, db *gorm.DB, logger *slog.Logger) *authapp.Service {
	var (
		users    authports.UserRepository
		sessions authports.SessionStore
	)
	if db != nil {
		users = authpostgres.NewUserRepository(db)
		sessions = authpostgres.NewSessionStore(db, time.Duration(cfg.SessionTTLHours)*time.Hour)
	} else {
		users = authmemory.NewUserRepository()
		sessions = authmemory.NewSessionStore()
	}
	if cfg.SeedUserEmail != "" && cfg.SeedUserPassword != "" {
		user, err := authdomain.NewUser("", cfg.SeedUserEmail, cfg.SeedUserPassword)
		if err == nil {
			user.Name = cfg.SeedUserName
			_, err = users.Save(ctx, user)
		}
		if err != nil {
			logger.Warn("failed to seed dashboard user", slog.String("error", err.Error()))
		}
	}
	return authapp.NewService(credentials.New(users, sessions))
}

func connectPostgres(ctx context.Context, cfg Config, logger *slog.Logger) (*gorm.DB, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return nil, func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, func() {}
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Warn("failed to run migrations", slog.String("error", err.Error()))
	}
	logger.Info("postgres connection established")
	return db, func() { _ = sqlDB.Close() }
}

func connectRedis(ctx context.Context, cfg Config, logger *slog.Logger) (*goredis.Client, func()) {
	if cfg.RedisAddr == "" {
		logger.Warn("REDIS_ADDR not set, page cache invalidation disabled")
		return nil, func() {}
	}
	client, err := platformredis.Connect(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("failed to connect to redis, page cache invalidation disabled", slog.String("error", err.Error()))
		return nil, func() {}
	}
	logger.Info("redis connection established")
	return client, func() { _ = client.Close() }
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

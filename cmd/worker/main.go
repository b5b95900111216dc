package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	rediscache "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/adapters/cache/redis"
	invoicesmemory "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/adapters/memory"
	invoicesobs "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/adapters/observability"
	invoicespostgres "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/adapters/persistence/postgres"
	invoicesapp "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/application"
	invoicesports "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/ports"
	invoiceactivities "github.com/Mr-dragon5/invoice-dashboard/internal/durable/temporal/activities/invoices"
	invoiceworkflows "github.com/Mr-dragon5/invoice-dashboard/internal/durable/temporal/workflows/invoices"
	platformobservability "github.com/Mr-dragon5/invoice-dashboard/internal/platform/observability"
	platformpostgres "github.com/Mr-dragon5/invoice-dashboard/internal/platform/postgres"
	platformredis "github.com/Mr-dragon5/invoice-dashboard/internal/platform/redis"
)

func main() {
	ctx := context.Background()
	const serviceName = "invoice-dashboard-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	invoiceRepo, cleanupRepo := buildInvoiceRepository(ctx, logger)
	defer cleanupRepo()

	viewCache, cleanupCache := buildViewCache(ctx, logger)
	defer cleanupCache()

	invoiceService := invoicesobs.New(
		invoicesapp.NewService(invoiceRepo, viewCache),
		invoicesobs.WithLogger(logger),
		invoicesobs.WithTracer(instruments.Tracer("internal.invoices.application")),
		invoicesobs.WithMeter(instruments.Meter("internal.invoices.application")),
	)
	activities := invoiceactivities.NewActivities(invoiceService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, invoiceworkflows.InvoiceCreationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(invoiceworkflows.InvoiceCreationWorkflow, workflow.RegisterOptions{Name: invoiceworkflows.InvoiceCreationWorkflowName})
	w.RegisterActivityWithOptions(activities.PersistInvoice, activity.RegisterOptions{Name: invoiceactivities.PersistInvoiceActivityName})

	logger.Info("worker listening", slog.String("taskQueue", invoiceworkflows.InvoiceCreationTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildInvoiceRepository(ctx context.Context, logger *slog.Logger) (invoicesports.Repository, func()) {
	dsn := strings.TrimSpace(os.Getenv("POSTGRES_DSN"))
	if dsn == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory invoice repository")
		return invoicesmemory.NewRepository(), func() {}
	}
	db, err := platformpostgres.Connect(ctx, dsn)
	if err != nil {
		logger.Warn("worker failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return invoicesmemory.NewRepository(), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("worker failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return invoicesmemory.NewRepository(), func() {}
	}
	logger.Info("worker invoice repository configured with postgres")
	return invoicespostgres.NewRepository(db), func() { _ = sqlDB.Close() }
}

func buildViewCache(ctx context.Context, logger *slog.Logger) (invoicesports.ViewCache, func()) {
	client, cleanup := platformredis.ConnectFromEnv(ctx, logger)
	if client == nil {
		return invoicesports.NoopViewCache, cleanup
	}
	return rediscache.NewViewCache(client), cleanup
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

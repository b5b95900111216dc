package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	types "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/application/types"
	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/domain"
	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/ports"
)

const tracerName = "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/adapters/observability/service"

// Service decorates the invoices application port with tracing, logging,
// and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// Create runs the creation pipeline with instrumentation.
func (s *Service) Create(ctx context.Context, input types.CreateInvoiceInput) (types.MutationResult, error) {
	ctx, span := s.startSpan(ctx, "Service.Create")
	defer span.End()

	s.logInfo(ctx, "creating invoice")
	result, err := s.inner.Create(ctx, input)
	if err != nil {
		return result, s.handleError(ctx, span, err, "failed to create invoice")
	}
	if result.Failed() {
		span.SetAttributes(attribute.Int("invoice.validation.field_count", len(result.Errors)))
		s.metrics.recordRejected(ctx, "create")
		s.logInfo(ctx, "invoice creation rejected by validation", slog.Int("fields", len(result.Errors)))
		return result, nil
	}
	s.metrics.recordCreated(ctx, domain.Status(input.Form["status"]))
	s.logInfo(ctx, "invoice created", slog.String("redirect", result.RedirectTo))
	return result, nil
}

// Update runs the update pipeline with instrumentation.
func (s *Service) Update(ctx context.Context, input types.UpdateInvoiceInput) (types.MutationResult, error) {
	ctx, span := s.startSpan(ctx, "Service.Update", attribute.String("invoice.id", input.ID))
	defer span.End()

	s.logInfo(ctx, "updating invoice", slog.String("invoice.id", input.ID))
	result, err := s.inner.Update(ctx, input)
	if err != nil {
		return result, s.handleError(ctx, span, err, "failed to update invoice", slog.String("invoice.id", input.ID))
	}
	if result.Failed() {
		span.SetAttributes(attribute.Int("invoice.validation.field_count", len(result.Errors)))
		s.metrics.recordRejected(ctx, "update")
		s.logInfo(ctx, "invoice update rejected by validation", slog.String("invoice.id", input.ID))
		return result, nil
	}
	s.metrics.recordUpdated(ctx)
	s.logInfo(ctx, "invoice updated", slog.String("invoice.id", input.ID))
	return result, nil
}

// Delete removes an invoice with instrumentation.
func (s *Service) Delete(ctx context.Context, input types.InvoiceIdentifier) error {
	ctx, span := s.startSpan(ctx, "Service.Delete", attribute.String("invoice.id", input.ID))
	defer span.End()

	s.logInfo(ctx, "deleting invoice", slog.String("invoice.id", input.ID))
	if err := s.inner.Delete(ctx, input); err != nil {
		return s.handleError(ctx, span, err, "failed to delete invoice", slog.String("invoice.id", input.ID))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "invoice deleted", slog.String("invoice.id", input.ID))
	return nil
}

// GetByID loads a single invoice.
func (s *Service) GetByID(ctx context.Context, input types.InvoiceIdentifier) (*domain.Invoice, error) {
	ctx, span := s.startSpan(ctx, "Service.GetByID", attribute.String("invoice.id", input.ID))
	defer span.End()

	invoice, err := s.inner.GetByID(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load invoice", slog.String("invoice.id", input.ID))
	}
	return invoice, nil
}

// List returns all invoices.
func (s *Service) List(ctx context.Context) ([]*domain.Invoice, error) {
	ctx, span := s.startSpan(ctx, "Service.List")
	defer span.End()

	invoices, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list invoices")
	}
	span.SetAttributes(attribute.Int("invoice.result.count", len(invoices)))
	return invoices, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	invoicesCreated  metric.Int64Counter
	invoicesUpdated  metric.Int64Counter
	invoicesDeleted  metric.Int64Counter
	invoicesRejected metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("invoices.service.created", metric.WithDescription("Number of invoices created"))
	updated, _ := m.Int64Counter("invoices.service.updated", metric.WithDescription("Number of invoices updated"))
	deleted, _ := m.Int64Counter("invoices.service.deleted", metric.WithDescription("Number of invoices deleted"))
	rejected, _ := m.Int64Counter("invoices.service.validation_rejected", metric.WithDescription("Number of mutations rejected by form validation"))
	return serviceMetrics{
		invoicesCreated:  created,
		invoicesUpdated:  updated,
		invoicesDeleted:  deleted,
		invoicesRejected: rejected,
	}
}

func (m serviceMetrics) recordCreated(ctx context.Context, status domain.Status) {
	addCounter(ctx, m.invoicesCreated, 1, attribute.String("invoice.status", string(status)))
}

func (m serviceMetrics) recordUpdated(ctx context.Context) {
	addCounter(ctx, m.invoicesUpdated, 1)
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	addCounter(ctx, m.invoicesDeleted, 1)
}

func (m serviceMetrics) recordRejected(ctx context.Context, operation string) {
	addCounter(ctx, m.invoicesRejected, 1, attribute.String("invoice.operation", operation))
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)

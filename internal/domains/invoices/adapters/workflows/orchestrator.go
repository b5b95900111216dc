package workflows

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	types "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/application/types"
	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/ports"
	invoiceworkflows "github.com/Mr-dragon5/invoice-dashboard/internal/durable/temporal/workflows/invoices"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalInvoiceWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineInvoiceWorkflows)(nil)
)

// TemporalInvoiceWorkflows starts invoice workflows on a Temporal cluster.
type TemporalInvoiceWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalInvoiceWorkflows wires a Temporal client into the orchestrator.
func NewTemporalInvoiceWorkflows(c client.Client) *TemporalInvoiceWorkflows {
	return &TemporalInvoiceWorkflows{client: c, taskQueue: invoiceworkflows.InvoiceCreationTaskQueue}
}

// CreateInvoice starts the Temporal workflow that runs the creation
// pipeline. The workflow ID is derived from the form content so a doubled
// submit of the same form attaches to the in-flight run instead of writing
// a second row.
func (o *TemporalInvoiceWorkflows) CreateInvoice(ctx context.Context, input types.CreateInvoiceInput) (types.MutationResult, error) {
	if o == nil || o.client == nil {
		return types.MutationResult{}, errors.New("temporal invoice workflows not configured")
	}
	workflowID := buildInvoiceCreationWorkflowID(input)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		invoiceworkflows.InvoiceCreationWorkflow,
		invoiceworkflows.InvoiceCreationWorkflowInput{Command: input, TraceID: workflowTraceID(ctx)},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			existingRun := o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
			var result types.MutationResult
			if err := existingRun.Get(ctx, &result); err != nil {
				return types.MutationResult{}, err
			}
			return result, nil
		}
		return types.MutationResult{}, err
	}
	var result types.MutationResult
	if err := run.Get(ctx, &result); err != nil {
		return types.MutationResult{}, err
	}
	return result, nil
}

// InlineInvoiceWorkflows executes the service directly without Temporal,
// useful for tests or dev fallbacks.
type InlineInvoiceWorkflows struct {
	service ports.Service
}

// NewInlineInvoiceWorkflows wraps the invoices service for synchronous execution.
func NewInlineInvoiceWorkflows(service ports.Service) *InlineInvoiceWorkflows {
	return &InlineInvoiceWorkflows{service: service}
}

// CreateInvoice delegates to the application service without durable orchestration.
func (o *InlineInvoiceWorkflows) CreateInvoice(ctx context.Context, input types.CreateInvoiceInput) (types.MutationResult, error) {
	if o == nil || o.service == nil {
		return types.MutationResult{}, errors.New("inline invoice workflows not configured")
	}
	return o.service.Create(ctx, input)
}

func buildInvoiceCreationWorkflowID(input types.CreateInvoiceInput) string {
	content := fmt.Sprintf("%s|%s|%s|%s",
		input.Form["customerId"],
		input.Form["amount"],
		input.Form["status"],
		time.Now().UTC().Format("2006-01-02T15:04"),
	)
	sum := sha256.Sum256([]byte(content))
	// First 16 hex chars keep workflow IDs readable while staying deterministic
	// within the dedup window.
	return fmt.Sprintf("invoice-creation-%s", hex.EncodeToString(sum[:8]))
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	traceID := spanCtx.TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}

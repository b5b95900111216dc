package invoices

import (
	"go.temporal.io/sdk/workflow"

	types "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/application/types"
	"github.com/Mr-dragon5/invoice-dashboard/internal/durable/temporal/sequences"
)

const (
	// InvoiceCreationWorkflowName is the public identifier for registering the workflow.
	InvoiceCreationWorkflowName = "invoices.workflows.Creation"
	// InvoiceCreationTaskQueue is the queue consumed by the worker processing invoice workflows.
	InvoiceCreationTaskQueue = "INVOICE_CREATION"
)

// InvoiceCreationWorkflowInput captures the payload required to run the
// invoice creation pipeline durably.
type InvoiceCreationWorkflowInput struct {
	Command types.CreateInvoiceInput
	TraceID string
}

// InvoiceCreationWorkflow orchestrates the activities needed to validate
// and persist a new invoice.
func InvoiceCreationWorkflow(ctx workflow.Context, input InvoiceCreationWorkflowInput) (types.MutationResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("InvoiceCreationWorkflow started", withTraceID(input.TraceID)...)
	result, err := sequences.RunInvoicePersistenceSequence(ctx, input.Command)
	if err != nil {
		logger.Error("InvoiceCreationWorkflow failed", withTraceID(input.TraceID, "error", err)...)
		return types.MutationResult{}, err
	}
	if result.Failed() {
		logger.Info("InvoiceCreationWorkflow rejected by validation", withTraceID(input.TraceID, "fields", len(result.Errors))...)
	} else {
		logger.Info("InvoiceCreationWorkflow completed", withTraceID(input.TraceID)...)
	}
	return result, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}

package ports

import (
	"context"

	types "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/application/types"
)

// WorkflowOrchestrator abstracts durable execution of invoice creation.
// Implementations either run the pipeline inline or hand it to a workflow
// engine.
type WorkflowOrchestrator interface {
	CreateInvoice(ctx context.Context, input types.CreateInvoiceInput) (types.MutationResult, error)
}

package invoices

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	types "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/application/types"
	invoiceports "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/ports"
)

// PersistInvoiceActivityName runs the creation pipeline against the store.
const PersistInvoiceActivityName = "invoices.activities.PersistInvoice"

// Activities groups activities that operate on the invoices bounded context.
type Activities struct {
	service invoiceports.Service
}

// NewActivities wires the invoices service into the Temporal activities bundle.
func NewActivities(service invoiceports.Service) *Activities {
	return &Activities{service: service}
}

// PersistInvoice validates and stores a new invoice, returning the pipeline
// outcome. Validation rejections complete the activity normally; only
// persistence failures are retried.
func (a *Activities) PersistInvoice(ctx context.Context, input types.CreateInvoiceInput) (types.MutationResult, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("invoice persist activity not initialized")
		return types.MutationResult{}, errors.New("invoice persist activity not initialized")
	}
	logger.Info("PersistInvoice activity started")
	result, err := a.service.Create(ctx, input)
	if err != nil {
		logger.Error("PersistInvoice activity failed", "error", err)
		return types.MutationResult{}, err
	}
	logger.Info("PersistInvoice activity completed")
	return result, nil
}

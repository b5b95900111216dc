package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	types "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/application/types"
	invoiceactivities "github.com/Mr-dragon5/invoice-dashboard/internal/durable/temporal/activities/invoices"
)

// RunInvoicePersistenceSequence executes the ordered set of activities
// needed to run the invoice creation pipeline.
func RunInvoicePersistenceSequence(ctx workflow.Context, input types.CreateInvoiceInput) (types.MutationResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("invoice persistence sequence started")
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var result types.MutationResult
	if err := workflow.ExecuteActivity(ctx, invoiceactivities.PersistInvoiceActivityName, input).Get(ctx, &result); err != nil {
		logger.Error("invoice persistence sequence failed", "error", err)
		return types.MutationResult{}, err
	}
	logger.Info("invoice persistence sequence completed")
	return result, nil
}

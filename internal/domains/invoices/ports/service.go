package ports

import (
	"context"

	types "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/application/types"
	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/domain"
)

// InvoiceListPath is the cached view every invoice mutation invalidates and
// the target successful mutations redirect to.
const InvoiceListPath = "/dashboard/invoices"

// Service exposes the invoices bounded context use cases.
type Service interface {
	Create(ctx context.Context, input types.CreateInvoiceInput) (types.MutationResult, error)
	Update(ctx context.Context, input types.UpdateInvoiceInput) (types.MutationResult, error)
	Delete(ctx context.Context, input types.InvoiceIdentifier) error
	GetByID(ctx context.Context, input types.InvoiceIdentifier) (*domain.Invoice, error)
	List(ctx context.Context) ([]*domain.Invoice, error)
}

package ports

import (
	"context"
	"errors"

	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/domain"
)

var ErrNotFound = errors.New("invoice not found")

// NewInvoice carries the fields the pipeline supplies on insert. The store
// assigns the identifier.
type NewInvoice struct {
	CustomerID  string
	AmountCents int64
	Status      domain.Status
	Date        string
}

// InvoiceChanges carries the mutable fields for an update. Identifier and
// date are immutable after creation.
type InvoiceChanges struct {
	CustomerID  string
	AmountCents int64
	Status      domain.Status
}

type Repository interface {
	Create(ctx context.Context, invoice NewInvoice) (*domain.Invoice, error)
	// Update applies changes to the row with the given id. A missing id
	// affects zero rows and is not an error.
	Update(ctx context.Context, id string, changes InvoiceChanges) error
	// Delete removes the row with the given id; missing ids are a no-op.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context) ([]*domain.Invoice, error)
}

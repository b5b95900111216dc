package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/domain"
	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository provides an in-memory implementation for development and tests.
type Repository struct {
	mu       sync.RWMutex
	invoices map[string]domain.Invoice
	newID    func() string
}

// NewRepository constructs an empty in-memory store.
func NewRepository() *Repository {
	return &Repository{
		invoices: map[string]domain.Invoice{},
		newID:    uuid.NewString,
	}
}

// WithIDGenerator overrides identifier assignment for deterministic testing.
func (r *Repository) WithIDGenerator(newID func() string) {
	if newID != nil {
		r.newID = newID
	}
}

func (r *Repository) Create(_ context.Context, invoice ports.NewInvoice) (*domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := domain.Invoice{
		ID:          r.newID(),
		Date:        invoice.Date,
		CustomerID:  invoice.CustomerID,
		AmountCents: invoice.AmountCents,
		Status:      invoice.Status,
	}
	r.invoices[stored.ID] = stored
	copy := stored
	return &copy, nil
}

func (r *Repository) Update(_ context.Context, id string, changes ports.InvoiceChanges) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.invoices[id]
	if !ok {
		// Zero rows affected; the caller is not informed either way.
		return nil
	}
	existing.CustomerID = changes.CustomerID
	existing.AmountCents = changes.AmountCents
	existing.Status = changes.Status
	r.invoices[id] = existing
	return nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.invoices, id)
	return nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	invoice, ok := r.invoices[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	copy := invoice
	return &copy, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	invoices := make([]*domain.Invoice, 0, len(r.invoices))
	for id := range r.invoices {
		copy := r.invoices[id]
		invoices = append(invoices, &copy)
	}
	sort.Slice(invoices, func(i, j int) bool {
		if invoices[i].Date != invoices[j].Date {
			return invoices[i].Date > invoices[j].Date
		}
		return invoices[i].ID < invoices[j].ID
	})
	return invoices, nil
}

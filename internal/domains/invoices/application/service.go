package application

import (
	"context"
	"time"

	types "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/application/types"
	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/domain"
	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/ports"
)

const (
	createFailedMessage = "Missing Fields. Failed to Create Invoice"
	updateFailedMessage = "Missing Fields. Failed to Update Invoice"
)

// Service orchestrates the invoices bounded context use cases: validate the
// submitted form, persist, invalidate the cached list view, and report the
// navigation target.
type Service struct {
	repo  ports.Repository
	cache ports.ViewCache
	now   func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source used to stamp invoice dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the invoices service with its dependencies.
func NewService(repo ports.Repository, cache ports.ViewCache, opts ...Option) *Service {
	if cache == nil {
		cache = ports.NoopViewCache
	}
	s := &Service{repo: repo, cache: cache, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Create validates the creation form and persists a new invoice with a
// server-stamped date. Validation failures come back inside the result with
// every field message collected; persistence failures are returned as
// errors so the caller knows the write did not happen.
func (s *Service) Create(ctx context.Context, input types.CreateInvoiceInput) (types.MutationResult, error) {
	mutation, fieldErrs := domain.ParseCreateForm(input.Form)
	if len(fieldErrs) > 0 {
		return types.MutationResult{Errors: fieldErrs, Message: createFailedMessage}, nil
	}
	invoice := ports.NewInvoice{
		CustomerID:  mutation.CustomerID,
		AmountCents: domain.CentsFromAmount(mutation.Amount),
		Status:      mutation.Status,
		Date:        s.now().UTC().Format(domain.DateLayout),
	}
	if _, err := s.repo.Create(ctx, invoice); err != nil {
		return types.MutationResult{}, mapError(err)
	}
	s.invalidateListView(ctx)
	return types.MutationResult{RedirectTo: ports.InvoiceListPath}, nil
}

// Update validates the update form and applies the mutable fields to an
// existing invoice. Identifier and date are left untouched, and updating a
// missing id affects zero rows without signalling the caller.
func (s *Service) Update(ctx context.Context, input types.UpdateInvoiceInput) (types.MutationResult, error) {
	mutation, fieldErrs := domain.ParseUpdateForm(input.Form)
	if len(fieldErrs) > 0 {
		return types.MutationResult{Errors: fieldErrs, Message: updateFailedMessage}, nil
	}
	changes := ports.InvoiceChanges{
		CustomerID:  mutation.CustomerID,
		AmountCents: domain.CentsFromAmount(mutation.Amount),
		Status:      mutation.Status,
	}
	if err := s.repo.Update(ctx, input.ID, changes); err != nil {
		return types.MutationResult{}, mapError(err)
	}
	s.invalidateListView(ctx)
	return types.MutationResult{RedirectTo: ports.InvoiceListPath}, nil
}

// Delete removes an invoice by its trusted identifier. Missing ids are a
// no-op. No navigation target is produced.
func (s *Service) Delete(ctx context.Context, input types.InvoiceIdentifier) error {
	if err := s.repo.Delete(ctx, input.ID); err != nil {
		return mapError(err)
	}
	s.invalidateListView(ctx)
	return nil
}

// GetByID loads a single invoice.
func (s *Service) GetByID(ctx context.Context, input types.InvoiceIdentifier) (*domain.Invoice, error) {
	return s.repo.GetByID(ctx, input.ID)
}

// List returns all invoices for the dashboard list view.
func (s *Service) List(ctx context.Context) ([]*domain.Invoice, error) {
	return s.repo.List(ctx)
}

// Cache invalidation is a fire-and-forget signal; a stale page is preferable
// to failing a mutation that already committed.
func (s *Service) invalidateListView(ctx context.Context) {
	_ = s.cache.Invalidate(ctx, ports.InvoiceListPath)
}

var _ ports.Service = (*Service)(nil)

package types

import (
	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/domain"
)

// CreateInvoiceInput carries the raw creation form.
type CreateInvoiceInput struct {
	Form domain.FormValues
}

// UpdateInvoiceInput targets an existing invoice with raw form values.
type UpdateInvoiceInput struct {
	ID   string
	Form domain.FormValues
}

// InvoiceIdentifier addresses a single invoice.
type InvoiceIdentifier struct {
	ID string
}

// MutationResult is the tagged outcome of a create or update. Exactly one
// branch is populated: RedirectTo when the pipeline completed, Errors plus
// Message when validation rejected the form. Persistence failures are
// reported as errors, never folded into this type.
type MutationResult struct {
	RedirectTo string             `json:"redirectTo,omitempty"`
	Errors     domain.FieldErrors `json:"errors,omitempty"`
	Message    string             `json:"message,omitempty"`
}

// Failed reports whether the result carries validation errors.
func (r MutationResult) Failed() bool {
	return len(r.Errors) > 0
}

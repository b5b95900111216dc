package mapper

import (
	"net/url"

	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/domain"
)

// Invoice form field names as submitted by the dashboard.
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

// FromPostForm lifts the invoice form fields out of a parsed request body.
// Unknown fields are dropped; missing fields surface as empty strings and
// fail schema validation downstream.
func FromPostForm(values url.Values) domain.FormValues {
	return domain.FormValues{
		FieldCustomerID: values.Get(FieldCustomerID),
		FieldAmount:     values.Get(FieldAmount),
		FieldStatus:     values.Get(FieldStatus),
	}
}

// Invoice is the HTTP representation of a stored invoice. Amount is in
// integer cents, exactly as persisted.
type Invoice struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}

// FromDomain maps a domain invoice into its transport shape.
func FromDomain(invoice *domain.Invoice) Invoice {
	if invoice == nil {
		return Invoice{}
	}
	return Invoice{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     invoice.AmountCents,
		Status:     string(invoice.Status),
		Date:       invoice.Date,
	}
}

// FromDomainList maps a list of domain invoices.
func FromDomainList(invoices []*domain.Invoice) []Invoice {
	result := make([]Invoice, 0, len(invoices))
	for _, invoice := range invoices {
		result = append(result, FromDomain(invoice))
	}
	return result
}

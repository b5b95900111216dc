package domain

import (
	"math"
	"strconv"
	"strings"
)

// FormValues carries raw form fields as submitted by a client. Values are
// untyped strings until a schema validates them.
type FormValues map[string]string

// FieldErrors maps a form field to its human-readable validation messages.
type FieldErrors map[string][]string

func (f FieldErrors) add(field, message string) {
	f[field] = append(f[field], message)
}

// InvoiceMutation is the validated shape shared by the creation and update
// schemas. Both omit id and date: the store assigns the former, the
// pipeline stamps the latter.
type InvoiceMutation struct {
	CustomerID string
	Amount     float64
	Status     Status
}

// ParseCreateForm validates raw form values against the creation schema.
// Every field is checked so the caller receives the full error set rather
// than the first failure.
func ParseCreateForm(values FormValues) (InvoiceMutation, FieldErrors) {
	return parseMutationForm(values)
}

// ParseUpdateForm validates raw form values against the update schema.
// Structurally identical to the creation schema today; kept separate so the
// two can diverge without breaking callers.
func ParseUpdateForm(values FormValues) (InvoiceMutation, FieldErrors) {
	return parseMutationForm(values)
}

func parseMutationForm(values FormValues) (InvoiceMutation, FieldErrors) {
	fieldErrs := FieldErrors{}
	var mutation InvoiceMutation

	customerID := strings.TrimSpace(values["customerId"])
	if customerID == "" {
		fieldErrs.add("customerId", ErrMissingCustomer.Error())
	}
	mutation.CustomerID = customerID

	// ParseFloat accepts "NaN" and the infinities without error; neither is a
	// positive amount.
	amount, err := strconv.ParseFloat(strings.TrimSpace(values["amount"]), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		fieldErrs.add("amount", ErrInvalidAmount.Error())
	}
	mutation.Amount = amount

	status := Status(strings.TrimSpace(values["status"]))
	if !status.Valid() {
		fieldErrs.add("status", ErrInvalidStatus.Error())
	}
	mutation.Status = status

	if len(fieldErrs) > 0 {
		return InvoiceMutation{}, fieldErrs
	}
	return mutation, nil
}

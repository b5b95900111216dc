package domain

import (
	"errors"
	"math"
)

// DateLayout is the wire and storage form of an invoice date: a calendar
// day without time-of-day or zone.
const DateLayout = "2006-01-02"

// Status enumerates the payment states an invoice can be in.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Valid reports whether the status is one of the two defined values.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

var (
	ErrMissingCustomer = errors.New("please select a customer")
	ErrInvalidAmount   = errors.New("please enter a number greater than 0")
	ErrInvalidStatus   = errors.New("please select a status")
)

// Invoice is the stored aggregate. The identifier is store-assigned and the
// date is stamped by the mutation pipeline at write time; neither is ever
// accepted from a form, and neither changes on update.
type Invoice struct {
	ID          string
	Date        string
	CustomerID  string
	AmountCents int64
	Status      Status
}

// CentsFromAmount converts a currency amount into integer minor units.
// The conversion is exact only for inputs representable without binary
// rounding error; everything else rounds to the nearest cent.
func CentsFromAmount(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

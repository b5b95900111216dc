package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCreateForm_Valid(t *testing.T) {
	mutation, fieldErrs := ParseCreateForm(FormValues{
		"customerId": " cust-123 ",
		"amount":     "42.5",
		"status":     "pending",
	})
	require.Empty(t, fieldErrs)
	require.Equal(t, "cust-123", mutation.CustomerID)
	require.Equal(t, 42.5, mutation.Amount)
	require.Equal(t, StatusPending, mutation.Status)
}

func TestParseCreateForm_CollectsAllErrors(t *testing.T) {
	mutation, fieldErrs := ParseCreateForm(FormValues{
		"customerId": "",
		"amount":     "not-a-number",
		"status":     "overdue",
	})
	require.Len(t, fieldErrs, 3)
	require.Equal(t, []string{ErrMissingCustomer.Error()}, fieldErrs["customerId"])
	require.Equal(t, []string{ErrInvalidAmount.Error()}, fieldErrs["amount"])
	require.Equal(t, []string{ErrInvalidStatus.Error()}, fieldErrs["status"])
	require.Equal(t, InvoiceMutation{}, mutation)
}

func TestParseCreateForm_RejectsZeroAndNegativeAmounts(t *testing.T) {
	for _, amount := range []string{"0", "-1", "-0.01"} {
		_, fieldErrs := ParseCreateForm(FormValues{
			"customerId": "cust-1",
			"amount":     amount,
			"status":     "paid",
		})
		require.Equal(t, []string{ErrInvalidAmount.Error()}, fieldErrs["amount"], "amount %q", amount)
	}
}

func TestParseCreateForm_RejectsNonFiniteAmounts(t *testing.T) {
	for _, amount := range []string{"NaN", "Inf", "+Inf", "-Inf", "nan", "inf"} {
		mutation, fieldErrs := ParseCreateForm(FormValues{
			"customerId": "cust-1",
			"amount":     amount,
			"status":     "paid",
		})
		require.Equal(t, []string{ErrInvalidAmount.Error()}, fieldErrs["amount"], "amount %q", amount)
		require.Equal(t, InvoiceMutation{}, mutation)
	}
}

func TestParseCreateForm_MissingFields(t *testing.T) {
	_, fieldErrs := ParseCreateForm(FormValues{})
	require.Len(t, fieldErrs, 3)
}

func TestParseUpdateForm_SameSchema(t *testing.T) {
	mutation, fieldErrs := ParseUpdateForm(FormValues{
		"customerId": "cust-9",
		"amount":     "10",
		"status":     "paid",
	})
	require.Empty(t, fieldErrs)
	require.Equal(t, StatusPaid, mutation.Status)
	require.Equal(t, 10.0, mutation.Amount)
}

//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "invoice-dashboard-api"
	ConsumerName = "dashboard-portal"

	StateInvoicesBaseline = "invoices baseline"
	StateInvoiceExists    = "invoice 7b1e exists"
	StateInvoiceMissing   = "no invoice with the requested id"
)

const (
	ExistingInvoiceID = "7b1ef2a0-3c52-4d4e-9f6a-0c9a1d2e3f40"
	MissingInvoiceID  = "00000000-0000-4000-8000-000000000404"

	ExampleCustomerID  = "3958dc9e-712f-4377-85e9-fec4b6a6442a"
	ExampleAmountCents = 4250
	ExampleDate        = "2024-06-15"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the dashboard consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleInvoicePayload provides stable test data for pact interactions.
func ExampleInvoicePayload() map[string]any {
	return map[string]any{
		"id":         ExistingInvoiceID,
		"customerId": ExampleCustomerID,
		"amount":     ExampleAmountCents,
		"status":     "pending",
		"date":       ExampleDate,
	}
}

// ExampleInvoiceForm is the url-encoded creation form matching the payload.
func ExampleInvoiceForm() string {
	return "customerId=" + ExampleCustomerID + "&amount=42.5&status=pending"
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}

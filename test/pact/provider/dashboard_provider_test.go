//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pacttest "github.com/Mr-dragon5/invoice-dashboard/test/pact"

	authmemory "github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/adapters/memory"
	credentials "github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/adapters/provider/credentials"
	authapp "github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/application"
	cachememory "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/adapters/cache/memory"
	invoicesmemory "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/adapters/memory"
	invoicesobs "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/adapters/observability"
	invoicesworkflows "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/adapters/workflows"
	invoicesapp "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/application"
	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/domain"
	invoicesports "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/ports"
	invoiceserver "github.com/Mr-dragon5/invoice-dashboard/server"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestDashboardProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateInvoicesBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetInvoices(t)
			return nil, nil
		},
		pacttest.StateInvoiceExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetInvoices(t)
			if setup {
				app.seedInvoice(t, pacttest.ExistingInvoiceID)
			}
			return nil, nil
		},
		pacttest.StateInvoiceMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetInvoices(t)
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.resetInvoices(t)
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	repo   *invoicesmemory.Repository
	server *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	repo := invoicesmemory.NewRepository()
	service := invoicesobs.New(invoicesapp.NewService(repo, cachememory.NewViewCache()))
	workflows := invoicesworkflows.NewInlineInvoiceWorkflows(service)

	authService := authapp.NewService(credentials.New(authmemory.NewUserRepository(), authmemory.NewSessionStore()))

	handlers := invoiceserver.ApiHandleFunctions{
		InvoiceAPI: invoiceserver.NewInvoiceAPI(service, workflows),
		AuthAPI:    invoiceserver.NewAuthAPI(authService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = invoiceserver.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		repo:   repo,
		server: server,
	}
}

func (a *contractProviderApp) resetInvoices(t testing.TB) {
	t.Helper()
	invoices, err := a.repo.List(context.Background())
	require.NoError(t, err)
	for _, invoice := range invoices {
		_ = a.repo.Delete(context.Background(), invoice.ID)
	}
}

func (a *contractProviderApp) seedInvoice(t testing.TB, id string) {
	t.Helper()
	a.repo.WithIDGenerator(func() string { return id })
	_, err := a.repo.Create(context.Background(), invoicesports.NewInvoice{
		CustomerID:  pacttest.ExampleCustomerID,
		AmountCents: pacttest.ExampleAmountCents,
		Status:      domain.StatusPending,
		Date:        pacttest.ExampleDate,
	})
	require.NoError(t, err)
	a.repo.WithIDGenerator(uuid.NewString)
}

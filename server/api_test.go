package invoiceserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	authmemory "github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/adapters/memory"
	credentials "github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/adapters/provider/credentials"
	authapp "github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/application"
	authdomain "github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/domain"
	cachememory "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/adapters/cache/memory"
	invoicesmemory "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/adapters/memory"
	invoicesworkflows "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/adapters/workflows"
	invoicesapp "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/application"
	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/domain"
	invoicesports "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/ports"
)

type testApp struct {
	router *gin.Engine
	repo   *invoicesmemory.Repository
	cache  *cachememory.ViewCache
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := invoicesmemory.NewRepository()
	cache := cachememory.NewViewCache()
	service := invoicesapp.NewService(repo, cache)
	workflows := invoicesworkflows.NewInlineInvoiceWorkflows(service)

	users := authmemory.NewUserRepository()
	user, err := authdomain.NewUser("user-1", "user@example.com", "123456")
	require.NoError(t, err)
	_, err = users.Save(context.Background(), user)
	require.NoError(t, err)
	authService := authapp.NewService(credentials.New(users, authmemory.NewSessionStore()))

	handlers := ApiHandleFunctions{
		InvoiceAPI: NewInvoiceAPI(service, workflows),
		AuthAPI:    NewAuthAPI(authService),
	}
	router := gin.New()
	router = NewRouterWithGinEngine(router, handlers)

	return &testApp{router: router, repo: repo, cache: cache}
}

func (a *testApp) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func validInvoiceForm() url.Values {
	return url.Values{
		"customerId": {"cust-123"},
		"amount":     {"42.5"},
		"status":     {"pending"},
	}
}

func TestCreateInvoice_RedirectsToListing(t *testing.T) {
	app := newTestApp(t)
	app.cache.Put(invoicesports.InvoiceListPath, []byte("stale listing"))

	rec := app.postForm("/dashboard/invoices", validInvoiceForm())
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, invoicesports.InvoiceListPath, rec.Header().Get("Location"))

	list, err := app.repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, int64(4250), list[0].AmountCents)

	_, cached := app.cache.Get(invoicesports.InvoiceListPath)
	require.False(t, cached)
}

func TestCreateInvoice_ValidationFailure(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/dashboard/invoices", url.Values{"amount": {"-3"}})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var payload struct {
		Errors  map[string][]string `json:"errors"`
		Message string              `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "Missing Fields. Failed to Create Invoice", payload.Message)
	require.Len(t, payload.Errors, 3)
	require.Contains(t, payload.Errors["customerId"], "please select a customer")
	require.Contains(t, payload.Errors["amount"], "please enter a number greater than 0")
	require.Contains(t, payload.Errors["status"], "please select a status")

	list, err := app.repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestUpdateInvoice_RedirectsToListing(t *testing.T) {
	app := newTestApp(t)
	created, err := app.repo.Create(context.Background(), invoicesports.NewInvoice{
		CustomerID:  "cust-1",
		AmountCents: 100,
		Status:      domain.StatusPending,
		Date:        "2024-06-15",
	})
	require.NoError(t, err)

	form := url.Values{
		"customerId": {"cust-2"},
		"amount":     {"10"},
		"status":     {"paid"},
	}
	rec := app.postForm("/dashboard/invoices/"+created.ID, form)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, invoicesports.InvoiceListPath, rec.Header().Get("Location"))

	updated, err := app.repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1000), updated.AmountCents)
	require.Equal(t, domain.StatusPaid, updated.Status)
	require.Equal(t, "2024-06-15", updated.Date)
}

func TestUpdateInvoice_ValidationFailure(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/dashboard/invoices/inv-1", url.Values{"status": {"overdue"}})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var payload struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "Missing Fields. Failed to Update Invoice", payload.Message)
}

func TestDeleteInvoice(t *testing.T) {
	app := newTestApp(t)
	created, err := app.repo.Create(context.Background(), invoicesports.NewInvoice{
		CustomerID:  "cust-1",
		AmountCents: 100,
		Status:      domain.StatusPending,
		Date:        "2024-06-15",
	})
	require.NoError(t, err)
	app.cache.Put(invoicesports.InvoiceListPath, []byte("stale listing"))

	req := httptest.NewRequest(http.MethodDelete, "/dashboard/invoices/"+created.ID, nil)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, err = app.repo.GetByID(context.Background(), created.ID)
	require.ErrorIs(t, err, invoicesports.ErrNotFound)
	_, cached := app.cache.Get(invoicesports.InvoiceListPath)
	require.False(t, cached)
}

func TestGetInvoice_NotFound(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices/missing", nil)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListInvoices(t *testing.T) {
	app := newTestApp(t)
	_, err := app.repo.Create(context.Background(), invoicesports.NewInvoice{
		CustomerID:  "cust-1",
		AmountCents: 4250,
		Status:      domain.StatusPending,
		Date:        "2024-06-15",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload []struct {
		ID         string `json:"id"`
		CustomerID string `json:"customerId"`
		Amount     int64  `json:"amount"`
		Status     string `json:"status"`
		Date       string `json:"date"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload, 1)
	require.Equal(t, int64(4250), payload[0].Amount)
	require.Equal(t, "pending", payload[0].Status)
}

func TestLogin_Success(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/login", url.Values{
		"email":    {"user@example.com"},
		"password": {"123456"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, invoicesports.InvoiceListPath, rec.Header().Get("Location"))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/login", url.Values{
		"email":    {"user@example.com"},
		"password": {"wrong"},
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var payload struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "Invalid credentials.", payload.Message)
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/logout", url.Values{"email": {"user@example.com"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}

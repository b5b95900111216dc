package invoiceserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	invoicehttpmapper "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/adapters/http/mapper"
	types "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/application/types"
	invoiceports "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/ports"
)

// InvoiceAPI implements the invoice dashboard endpoints.
type InvoiceAPI struct {
	service   invoiceports.Service
	workflows invoiceports.WorkflowOrchestrator
}

// NewInvoiceAPI wires dependencies. A nil orchestrator routes creation
// straight through the service.
func NewInvoiceAPI(service invoiceports.Service, workflows invoiceports.WorkflowOrchestrator) InvoiceAPI {
	return InvoiceAPI{service: service, workflows: workflows}
}

// Post /dashboard/invoices
// Create invoice from submitted form fields
func (api *InvoiceAPI) CreateInvoice(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := types.CreateInvoiceInput{Form: invoicehttpmapper.FromPostForm(c.Request.PostForm)}
	var (
		result types.MutationResult
		err    error
	)
	if api.workflows != nil {
		result, err = api.workflows.CreateInvoice(c.Request.Context(), input)
	} else {
		result, err = api.service.Create(c.Request.Context(), input)
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondMutationResult(c, result)
}

// Post /dashboard/invoices/:invoiceId
// Update invoice from submitted form fields
func (api *InvoiceAPI) UpdateInvoice(c *gin.Context) {
	id := c.Param("invoiceId")
	if strings.TrimSpace(id) == "" {
		respondError(c, http.StatusBadRequest, errors.New("invoiceId is required"))
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := types.UpdateInvoiceInput{ID: id, Form: invoicehttpmapper.FromPostForm(c.Request.PostForm)}
	result, err := api.service.Update(c.Request.Context(), input)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondMutationResult(c, result)
}

// Delete /dashboard/invoices/:invoiceId
// Delete invoice
func (api *InvoiceAPI) DeleteInvoice(c *gin.Context) {
	id := c.Param("invoiceId")
	if strings.TrimSpace(id) == "" {
		respondError(c, http.StatusBadRequest, errors.New("invoiceId is required"))
		return
	}
	if err := api.service.Delete(c.Request.Context(), types.InvoiceIdentifier{ID: id}); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get /dashboard/invoices/:invoiceId
// Get invoice by ID
func (api *InvoiceAPI) GetInvoice(c *gin.Context) {
	id := c.Param("invoiceId")
	invoice, err := api.service.GetByID(c.Request.Context(), types.InvoiceIdentifier{ID: id})
	if err != nil {
		if errors.Is(err, invoiceports.ErrNotFound) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, invoicehttpmapper.FromDomain(invoice))
}

// Get /dashboard/invoices
// List invoices, newest first
func (api *InvoiceAPI) ListInvoices(c *gin.Context) {
	invoices, err := api.service.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, invoicehttpmapper.FromDomainList(invoices))
}

// respondMutationResult renders the two branches of a mutation: validation
// failures as a 422 payload the form can re-render from, success as a
// see-other redirect to the refreshed listing.
func respondMutationResult(c *gin.Context, result types.MutationResult) {
	if result.Failed() {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	target := result.RedirectTo
	if target == "" {
		target = invoiceports.InvoiceListPath
	}
	c.Redirect(http.StatusSeeOther, target)
}

package invoiceserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authapp "github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/application"
	invoiceports "github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/ports"
)

// AuthAPI implements the login endpoints.
type AuthAPI struct {
	service *authapp.Service
}

// NewAuthAPI wires dependencies.
func NewAuthAPI(service *authapp.Service) AuthAPI {
	return AuthAPI{service: service}
}

// Post /login
// Authenticate with email and password
func (api *AuthAPI) Login(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	form := map[string]string{
		"email":    c.Request.PostForm.Get("email"),
		"password": c.Request.PostForm.Get("password"),
	}
	message, err := api.service.Authenticate(c.Request.Context(), form)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	if message != "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": message})
		return
	}
	c.Redirect(http.StatusSeeOther, invoiceports.InvoiceListPath)
}

// Post /logout
// Tear down the session for the given email
func (api *AuthAPI) Logout(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	email := c.Request.PostForm.Get("email")
	if err := api.service.Logout(c.Request.Context(), email); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

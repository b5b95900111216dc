package invoiceserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds an HTTP method and path pattern to a handler.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// Routes is a list of routes.
type Routes []Route

// ApiHandleFunctions groups the handler implementations per API section.
type ApiHandleFunctions struct {
	InvoiceAPI InvoiceAPI
	AuthAPI    AuthAPI
}

// NewRouter returns a gin engine with all dashboard routes registered.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine registers all dashboard routes on an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		{
			Name:        "ListInvoices",
			Method:      http.MethodGet,
			Pattern:     "/dashboard/invoices",
			HandlerFunc: handleFunctions.InvoiceAPI.ListInvoices,
		},
		{
			Name:        "CreateInvoice",
			Method:      http.MethodPost,
			Pattern:     "/dashboard/invoices",
			HandlerFunc: handleFunctions.InvoiceAPI.CreateInvoice,
		},
		{
			Name:        "GetInvoice",
			Method:      http.MethodGet,
			Pattern:     "/dashboard/invoices/:invoiceId",
			HandlerFunc: handleFunctions.InvoiceAPI.GetInvoice,
		},
		{
			Name:        "UpdateInvoice",
			Method:      http.MethodPost,
			Pattern:     "/dashboard/invoices/:invoiceId",
			HandlerFunc: handleFunctions.InvoiceAPI.UpdateInvoice,
		},
		{
			Name:        "DeleteInvoice",
			Method:      http.MethodDelete,
			Pattern:     "/dashboard/invoices/:invoiceId",
			HandlerFunc: handleFunctions.InvoiceAPI.DeleteInvoice,
		},
		{
			Name:        "Login",
			Method:      http.MethodPost,
			Pattern:     "/login",
			HandlerFunc: handleFunctions.AuthAPI.Login,
		},
		{
			Name:        "Logout",
			Method:      http.MethodPost,
			Pattern:     "/logout",
			HandlerFunc: handleFunctions.AuthAPI.Logout,
		},
	}
}

func defaultHandleFunc(c *gin.Context) {
	c.Status(http.StatusNotImplemented)
}

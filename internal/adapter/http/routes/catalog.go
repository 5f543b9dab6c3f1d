package routes

import (
	"photostock/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEntries  = "/entries"
	PathInvoices = "/invoices"
)

func addCatalogRoutes(rg *gin.RouterGroup, analyzeHandler *handlers.AnalyzeHandler, invoiceHandler *handlers.InvoiceHandler) {
	entries := rg.Group(PathEntries)
	{
		entries.POST("/analyze", analyzeHandler.AnalyzeEntries)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("/check-duplicates", analyzeHandler.CheckDuplicates)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.POST("", invoiceHandler.SaveInvoices)
		invoices.PATCH("/status", invoiceHandler.UpdateStatus)
		invoices.DELETE("", invoiceHandler.DeleteInvoice)
		invoices.POST("/image", invoiceHandler.OverwriteImage)
	}
}

package routes

import (
	"esquadrias_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
	PathOrders = "/orders"
)

func addSalesRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, orderHandler *handlers.OrderHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.POST("/price", quoteHandler.PriceQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PUT("/:id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
	}

	orders := rg.Group(PathOrders)
	{
		// The queue projection must register before the :id routes.
		orders.GET("/queue", quoteHandler.ListOrderQueue)
		orders.GET("/history", orderHandler.ListHistory)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id", orderHandler.UpdateOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
		orders.POST("/:id/payments", orderHandler.PayOrder)
		orders.GET("/:id/payments", orderHandler.ListPayments)
	}
}

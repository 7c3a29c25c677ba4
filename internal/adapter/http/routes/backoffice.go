package routes

import (
	"esquadrias_xpto/internal/adapter/http/handlers"
	"esquadrias_xpto/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/clientes"
	PathExpenses  = "/despesas"
	PathReports   = "/reports"
)

func addBackofficeRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler, expenseHandler *handlers.ExpenseHandler, reportHandler *handlers.ReportHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/dashboard", reportHandler.GetDashboardSummary)
	}

	// Finance data is admin-only.
	admin := rg.Group("", middleware.RequireAdmin())
	{
		expenses := admin.Group(PathExpenses)
		expenses.POST("", expenseHandler.CreateExpense)
		expenses.GET("", expenseHandler.ListExpenses)
		expenses.DELETE("/:id", expenseHandler.DeleteExpense)

		admin.GET(PathReports+"/finance", reportHandler.GetFinanceSummary)
	}
}

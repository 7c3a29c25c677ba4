package routes

import (
	"log"
	"os"
	"strconv"

	_ "esquadrias_xpto/docs" // This will be auto-generated
	"esquadrias_xpto/internal/adapter/http/handlers"
	"esquadrias_xpto/internal/adapter/http/middleware"
	repository2 "esquadrias_xpto/internal/adapter/persistence/repository"
	"esquadrias_xpto/internal/infrastructure/database"
	"esquadrias_xpto/internal/infrastructure/payments"
	"esquadrias_xpto/internal/usecase"
	"esquadrias_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	expenseRepo := repository2.NewExpenseDynamoRepository(ddb)
	profileRepo := repository2.NewProfileDynamoRepository(ddb)
	paymentRepo := repository2.NewOrderPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, orderRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, paymentRepo, paymentGateway)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	expenseUseCase := usecase.NewExpenseUseCase(expenseRepo)
	reportUseCase := usecase.NewReportUseCase(quoteRepo, orderRepo, expenseRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	expenseHandler := handlers.NewExpenseHandler(expenseUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("")
	authed.Use(middleware.Session(profileRepo))
	addSalesRoutes(authed, quoteHandler, orderHandler)
	addBackofficeRoutes(authed, customerHandler, expenseHandler, reportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

package main

import (
	_ "esquadrias_xpto/docs"
	"esquadrias_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Esquadrias XPTO API
// @version         1.0
// @description     Sales dashboard for a door and window shop (quotes, production orders, payments, expenses and finance reports) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Profile id of the signed-in employee.

func main() {
	routes.Run()
}

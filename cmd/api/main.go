package main

import (
	_ "invoicepro/docs"
	"invoicepro/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           InvoicePro Admin API
// @version         1.0
// @description     Business admin backend (leads, invoices, customers) over a managed document store.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}

package routes

import (
	"os"
	"strconv"

	_ "invoicepro/docs" // This will be auto-generated
	"invoicepro/internal/adapter/http/handlers"
	"invoicepro/internal/adapter/http/middleware"
	"invoicepro/internal/adapter/persistence/docstore"
	"invoicepro/internal/adapter/persistence/repository"
	"invoicepro/internal/infrastructure/database"
	"invoicepro/internal/infrastructure/logging"
	"invoicepro/internal/infrastructure/tasks"
	"invoicepro/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const PORT = 8080

const writeQueueSize = 16

// Run will start the server
func Run() {
	logging.Setup(os.Getenv("LOG_MODE"))

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		zap.S().Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	store := docstore.NewDynamoStore(ddb)

	leadRepo := repository.NewLeadDocRepository(store)
	optionRepo := repository.NewOptionDocRepository(store)
	invoiceRepo := repository.NewInvoiceDocRepository(store)
	customerRepo := repository.NewCustomerDocRepository(store)

	queue, err := tasks.NewQueue(writeQueueSize)
	if err != nil {
		zap.S().Fatalf("Failed to create write queue: %v", err.Error())
	}

	leadViewUseCase := usecase.NewLeadViewUseCase(leadRepo, optionRepo, queue)
	leadUseCase := usecase.NewLeadUseCase(leadRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(invoiceRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, customerRepo)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo)

	leadHandler := handlers.NewLeadHandler(leadViewUseCase, leadUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("", middleware.Session())
	addAdminRoutes(authed, leadHandler, dashboardHandler, invoiceHandler, customerHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zap.S().Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

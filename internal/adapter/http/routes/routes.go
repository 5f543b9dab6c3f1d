package routes

import (
	"context"
	"log"
	"strconv"

	_ "photostock/docs" // This will be auto-generated
	"photostock/internal/adapter/http/handlers"
	repository2 "photostock/internal/adapter/persistence/repository"
	"photostock/internal/infrastructure/database"
	"photostock/internal/infrastructure/storage"
	"photostock/internal/usecase"

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

	resultRepo := repository2.NewResultDynamoRepository(ddb)
	if err := database.EnsureResultsTable(context.Background(), ddb, resultRepo.TableName()); err != nil {
		log.Fatalf("Failed to prepare results table: %v", err)
	}

	imageStore, err := storage.NewLocalImageStore()
	if err != nil {
		log.Fatalf("Failed to prepare image store: %v", err)
	}

	analyzeUseCase := usecase.NewAnalyzeUseCase(resultRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(resultRepo, imageStore)

	analyzeHandler := handlers.NewAnalyzeHandler(analyzeUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)

	// Stored photos are served straight off disk.
	router.Static("/uploads", imageStore.Dir())

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, analyzeHandler, invoiceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

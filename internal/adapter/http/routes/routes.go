package routes

import (
	"context"
	"log"
	"strconv"

	_ "colohub/docs" // This will be auto-generated
	"colohub/internal/adapter/http/handlers"
	repository2 "colohub/internal/adapter/persistence/repository"
	"colohub/internal/catalog"
	"colohub/internal/infrastructure/database"
	"colohub/internal/store"
	"colohub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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

	stateRepo := repository2.NewSessionStateDynamoRepository(ddb)
	sessionStore := store.New(context.Background(), stateRepo)
	productCatalog := catalog.NewStaticCatalog()

	cartUseCase := usecase.NewCartUseCase(sessionStore, productCatalog)
	quoteUseCase := usecase.NewQuoteUseCase(sessionStore, productCatalog)
	orderUseCase := usecase.NewOrderUseCase(sessionStore)

	cartHandler := handlers.NewCartHandler(cartUseCase)
	catalogHandler := handlers.NewCatalogHandler(productCatalog)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCommerceRoutes(v1, cartHandler, catalogHandler, quoteHandler, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// requestID tags every request so log lines can be correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

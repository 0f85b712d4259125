package routes

import (
	"log"
	"strconv"

	_ "payment_service/docs" // swag-generated swagger spec
	"payment_service/internal/adapter/http/handlers"
	"payment_service/internal/adapter/http/middleware"
	"payment_service/internal/adapter/persistence/repository"
	"payment_service/internal/config"
	"payment_service/internal/infrastructure/database"
	"payment_service/internal/infrastructure/geo"
	"payment_service/internal/infrastructure/notifications"
	"payment_service/internal/usecase"
	"payment_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	paymentRepo := repository.NewPaymentDynamoRepository(ddb, cfg.PaymentsTable)
	dispatcher := notifications.NewWebhookNotificationDispatcher(cfg.NotificationType1URL, cfg.NotificationType2URL, cfg.NotificationTimeout)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, dispatcher, interfaces.SystemClock{})
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
}

func setMiddlewares(cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	if cfg.CountryLoggingEnabled {
		resolver := geo.NewCountryResolver(cfg.CountryLookupBaseURL, cfg.CountryLookupTimeout)
		router.Use(middleware.CountryLogging(resolver))
	}
}

package routes

import (
	"log"

	_ "freight_opcost/docs"
	"freight_opcost/internal/adapter/http/handlers"
	"freight_opcost/internal/adapter/persistence/memory"
	"freight_opcost/internal/adapter/persistence/repository"
	"freight_opcost/internal/infrastructure/config"
	"freight_opcost/internal/infrastructure/database"
	"freight_opcost/internal/infrastructure/notifications"
	"freight_opcost/internal/infrastructure/seed"
	"freight_opcost/internal/usecase"
	"freight_opcost/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const notificationHistory = 200

// Stores groups the persistence collaborators selected by STORAGE_DRIVER.
type Stores struct {
	Records    interfaces.IOperationalCostRepository
	Quotations interfaces.IQuotationStore
	AWBs       interfaces.IAWBStore
}

// Run will start the server
func Run(cfg config.Config) {
	stores, err := newStores(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	router := NewRouter(cfg, stores)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(cfg config.Config, stores Stores) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	recorder := notifications.NewRecorder(notificationHistory, notifications.LogSink{})
	uc := usecase.NewOperationalCostUseCase(
		stores.Records,
		stores.Quotations,
		stores.AWBs,
		recorder,
		nil,
		usecase.Settings{
			DefaultThresholds:     cfg.Thresholds,
			BlockCriticalApproval: cfg.BlockCriticalApproval,
		},
	)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOperationalCostRoutes(v1, handlers.NewOperationalCostHandler(uc))
	addNotificationRoutes(v1, handlers.NewNotificationHandler(recorder))
	return router
}

func newStores(cfg config.Config) (Stores, error) {
	if cfg.StorageDriver == config.StorageMemory {
		fixtures, err := seed.Load(cfg.MemorySeedFile)
		if err != nil {
			return Stores{}, err
		}
		log.Printf("[opcost][routes] using in-memory storage quotations=%d awbs=%d", len(fixtures.Quotations), len(fixtures.AWBs))
		return Stores{
			Records:    memory.NewOperationalCostRepository(),
			Quotations: memory.NewQuotationStore(fixtures.QuotationEntities()...),
			AWBs:       memory.NewAWBStore(fixtures.AWBEntities()...),
		}, nil
	}

	ddb := database.ConnectDynamoDB(cfg.DynamoDB)
	log.Printf("[opcost][routes] using dynamodb region=%s endpoint=%s", cfg.DynamoDB.Region, cfg.DynamoDB.Endpoint)
	return Stores{
		Records:    repository.NewOperationalCostDynamoRepository(ddb, cfg.OperationalCostsTable),
		Quotations: repository.NewQuotationDynamoStore(ddb, cfg.QuotationsTable),
		AWBs:       repository.NewAWBDynamoStore(ddb, cfg.AWBsTable),
	}, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

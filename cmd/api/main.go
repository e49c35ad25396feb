package main

import (
	"log"

	_ "freight_opcost/docs"
	"freight_opcost/internal/adapter/http/routes"
	"freight_opcost/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Operational Cost Variance API
// @version         1.0
// @description     Budgeted versus actual freight costs per shipment, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	routes.Run(cfg)
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"freight_opcost/internal/domain/entities"
	"freight_opcost/internal/domain/variance"

	"github.com/shopspring/decimal"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

// Config is the process configuration read from the environment.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - STORAGE_DRIVER: dynamodb | memory (default: dynamodb)
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - OPERATIONAL_COSTS_TABLE, QUOTATIONS_TABLE, AWBS_TABLE
//   - VARIANCE_WARNING_PERCENT (default: 5), VARIANCE_CRITICAL_PERCENT (default: 10)
//   - APPROVAL_BLOCK_CRITICAL (default: false)
//   - MEMORY_SEED_FILE (optional; YAML quotations/AWBs for the memory driver)
type Config struct {
	Port          string
	StorageDriver string

	DynamoDB DynamoDBConfig

	OperationalCostsTable string
	QuotationsTable       string
	AWBsTable             string

	Thresholds            entities.VarianceThresholds
	BlockCriticalApproval bool

	MemorySeedFile string
}

type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

// FromEnv builds a Config, failing on malformed values rather than silently
// falling back to defaults.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:          getenvDefault("PORT", "8080"),
		StorageDriver: strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		DynamoDB: DynamoDBConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		},
		OperationalCostsTable: getenvDefault("OPERATIONAL_COSTS_TABLE", "operational_costs"),
		QuotationsTable:       getenvDefault("QUOTATIONS_TABLE", "quotations"),
		AWBsTable:             getenvDefault("AWBS_TABLE", "awbs"),
		MemorySeedFile:        os.Getenv("MEMORY_SEED_FILE"),
	}

	switch cfg.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	default:
		return Config{}, fmt.Errorf("STORAGE_DRIVER: unsupported value %q", cfg.StorageDriver)
	}

	warning, err := getenvDecimal("VARIANCE_WARNING_PERCENT", decimal.NewFromInt(5))
	if err != nil {
		return Config{}, err
	}
	critical, err := getenvDecimal("VARIANCE_CRITICAL_PERCENT", decimal.NewFromInt(10))
	if err != nil {
		return Config{}, err
	}
	cfg.Thresholds = entities.VarianceThresholds{Warning: warning, Critical: critical}
	if err := variance.ValidateThresholds(cfg.Thresholds); err != nil {
		return Config{}, err
	}

	if cfg.BlockCriticalApproval, err = getenvBool("APPROVAL_BLOCK_CRITICAL", false); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDecimal(key string, def decimal.Decimal) (decimal.Decimal, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

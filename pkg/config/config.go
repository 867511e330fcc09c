// Package config loads the service configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries every tunable of the service. Ledger and remote-store
// settings are optional; missing values degrade the matching feature
// instead of failing startup.
type Config struct {
	HTTPPort string

	// Ledger connection.
	RPCURL                 string
	ChainId                int64
	CrowdFundingAddress    string
	ResourceSharingAddress string
	PrivateKey             string

	// Off-chain storage.
	DynamoDBTable string
	SQLitePath    string
}

// Load reads the environment, honoring a .env file when present.
func Load(log *slog.Logger) Config {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment variables")
	}

	cfg := Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		RPCURL:                 os.Getenv("LEDGER_RPC_URL"),
		CrowdFundingAddress:    os.Getenv("CROWDFUNDING_CONTRACT_ADDRESS"),
		ResourceSharingAddress: os.Getenv("RESOURCE_SHARING_CONTRACT_ADDRESS"),
		PrivateKey:             os.Getenv("LEDGER_PRIVATE_KEY"),
		DynamoDBTable:          os.Getenv("DYNAMODB_OFFCHAIN_TABLE_NAME"),
		SQLitePath:             getEnv("SQLITE_PATH", "offchain.db"),
	}

	if raw := os.Getenv("LEDGER_CHAIN_ID"); raw != "" {
		chainId, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Warn("invalid LEDGER_CHAIN_ID, ledger client will not start", "value", raw)
		} else {
			cfg.ChainId = chainId
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

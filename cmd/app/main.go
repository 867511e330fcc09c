package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/mygive/platform-core/pkg/config"
	"github.com/mygive/platform-core/pkg/handlers"
	"github.com/mygive/platform-core/pkg/ledger/eth"
	"github.com/mygive/platform-core/pkg/lifecycle"
	"github.com/mygive/platform-core/pkg/notifications"
	"github.com/mygive/platform-core/pkg/offchain"
	"github.com/mygive/platform-core/pkg/offchain/dynamodb"
	"github.com/mygive/platform-core/pkg/offchain/sqlite"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg := config.Load(log)
	ctx := context.Background()

	// Ledger client. A failed dial leaves a not-ready client; reads and
	// writes return a classified error instead of crashing the service.
	ledgerClient := eth.Dial(ctx, eth.Config{
		RPCURL:                 cfg.RPCURL,
		ChainId:                cfg.ChainId,
		CrowdFundingAddress:    cfg.CrowdFundingAddress,
		ResourceSharingAddress: cfg.ResourceSharingAddress,
		PrivateKey:             cfg.PrivateKey,
	}, log)

	// Local backend. SQLite is the durable default; an open failure
	// falls back to process memory so the service still starts.
	var local offchain.Backend
	sqliteBackend, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		log.Warn("sqlite unavailable, using in-memory local store", "path", cfg.SQLitePath, "error", err)
		local = offchain.NewMemoryBackend()
	} else {
		defer sqliteBackend.Close()
		local = sqliteBackend
	}

	// Remote backend, only when a table is configured.
	var remote offchain.Backend
	if cfg.DynamoDBTable != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			log.Warn("unable to load AWS config, remote store disabled", "error", err)
		} else {
			remote = dynamodb.New(awsdynamodb.NewFromConfig(awsCfg), cfg.DynamoDBTable)
		}
	}

	store := offchain.New(remote, local, log)
	journal := notifications.NewJournal(store, log)
	coordinator := lifecycle.New(ledgerClient, store, journal, log)

	router := handlers.NewRouter(handlers.Deps{
		Coordinator: coordinator,
		Store:       store,
		Journal:     journal,
		Log:         log,
	})

	log.Info("starting server",
		"port", cfg.HTTPPort,
		"ledger_connected", ledgerClient.Ready(),
		"remote_store", store.RemoteConfigured())

	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

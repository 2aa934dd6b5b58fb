package main

import (
	"context"

	"suntravels/internal/search/consumer"
	"suntravels/internal/search/handler"
	"suntravels/internal/search/ledger"
	"suntravels/internal/search/repository"
	"suntravels/internal/search/service"
	"suntravels/internal/search/validator"
	"suntravels/pkg/app"
	"suntravels/pkg/config"
	"suntravels/pkg/kafka"
	kafka_config "suntravels/pkg/kafka/config"
)

const ServiceName = "search"

func main() {
	cfg := config.Load(ServiceName)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}

	// Log all configuration values
	cfg.LogConfiguration()

	cfg.Log.Info("Starting Search service")
	cfg.SetMongo()

	allocLedger := ledger.NewMemoryLedger()
	searchService := initServices(cfg, allocLedger)

	allocConsumer := initConsumer(cfg, allocLedger)
	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	go func() {
		if err := allocConsumer.Start(consumerCtx); err != nil {
			cfg.Log.Error("Allocation consumer stopped", "error", err)
		}
	}()

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewHealthHandler(cfg.Client.Mongo, cfg.Log),
		handler.NewSearchHandler(searchService, cfg, cfg.Log),
	)
	serverApp.OnShutdown(func() {
		cancelConsumer()
		if err := allocConsumer.Close(); err != nil {
			cfg.Log.Error("Failed to close allocation consumer", "error", err)
		}
	})
	serverApp.OnShutdown(cfg.GracefulShutdown)
	serverApp.Run()
}

func initServices(cfg *config.Config, l ledger.Ledger) service.SearchService {
	searchValidator := validator.NewSearchValidator(cfg.Log, cfg.MaxRoomRequests)
	contractStore := repository.NewMongoContractStore(cfg)
	searchService := service.NewSearchService(
		contractStore,
		l,
		searchValidator,
		cfg,
	)

	cfg.Log.Info("Search service initialized", "database", cfg.MongoDatabaseName)
	return searchService
}

func initConsumer(cfg *config.Config, l ledger.Ledger) *kafka.Consumer {
	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	applier := consumer.NewAllocationApplier(l, cfg.Log)
	allocConsumer, err := kafka.NewConsumer(
		kafkaCfg,
		kafkaCfg.AllocationsTopic,
		kafkaCfg.AllocationsGroupID,
		kafkaCfg.AllocationsDLQTopic,
		applier.Handle,
		cfg.Log,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create allocation consumer", "error", err)
	}

	cfg.Log.Info("Allocation consumer initialized", "topic", kafkaCfg.AllocationsTopic, "group_id", kafkaCfg.AllocationsGroupID)
	return allocConsumer
}

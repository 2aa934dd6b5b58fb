package main

import (
	"suntravels/internal/inventory/handler"
	"suntravels/internal/inventory/repository"
	"suntravels/internal/inventory/service"
	"suntravels/internal/inventory/validator"
	"suntravels/pkg/app"
	"suntravels/pkg/config"
)

const ServiceName = "inventory"

func main() {
	cfg := config.Load(ServiceName)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}

	// Log all configuration values
	cfg.LogConfiguration()

	cfg.Log.Info("Starting Inventory service")
	cfg.SetMongo()

	inventoryHandler := initServices(cfg)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewHealthHandler(cfg.Client.Mongo, cfg.Log),
		inventoryHandler,
	)
	serverApp.OnShutdown(cfg.GracefulShutdown)
	serverApp.Run()
}

func initServices(cfg *config.Config) *handler.InventoryHandler {
	inventoryValidator := validator.NewInventoryValidator(cfg.Log)
	hotelRepo := repository.NewMongoHotelRepository(cfg)
	contractRepo := repository.NewMongoContractRepository(cfg)
	roomTypeRepo := repository.NewMongoRoomTypeRepository(cfg)

	hotelService := service.NewHotelService(
		hotelRepo,
		contractRepo,
		roomTypeRepo,
		inventoryValidator,
		cfg,
	)
	contractService := service.NewContractService(
		contractRepo,
		hotelRepo,
		roomTypeRepo,
		inventoryValidator,
		cfg,
	)
	roomTypeService := service.NewRoomTypeService(
		roomTypeRepo,
		contractRepo,
		inventoryValidator,
		cfg,
	)

	cfg.Log.Info("Inventory services initialized", "database", cfg.MongoDatabaseName)
	return handler.NewInventoryHandler(
		handler.NewHotelHandler(hotelService, cfg, cfg.Log),
		handler.NewContractHandler(contractService, cfg, cfg.Log),
		handler.NewRoomTypeHandler(roomTypeService, cfg.Log),
	)
}

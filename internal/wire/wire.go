// Package wire provides dependency injection for the croft application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"go.uber.org/zap"

	"github.com/example/croft/internal/adapters/sqlite"
	"github.com/example/croft/internal/app"
	"github.com/example/croft/internal/config"
	"github.com/example/croft/internal/db"
	"github.com/example/croft/internal/logging"
	"github.com/example/croft/internal/ports/primary"
)

var (
	goatService    primary.GoatService
	catalogService primary.CatalogService
	farmService    primary.FarmService
	logger         *zap.Logger
	once           sync.Once
)

// GoatService returns the singleton GoatService instance.
func GoatService() primary.GoatService {
	once.Do(initServices)
	return goatService
}

// CatalogService returns the singleton CatalogService instance.
func CatalogService() primary.CatalogService {
	once.Do(initServices)
	return catalogService
}

// FarmService returns the singleton FarmService instance.
func FarmService() primary.FarmService {
	once.Do(initServices)
	return farmService
}

// Logger returns the singleton application logger.
func Logger() *zap.Logger {
	once.Do(initServices)
	return logger
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	// Load config first so a .env file can set CROFT_DB_PATH before the
	// database path is resolved
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger = logging.Must(logging.New(cfg.Logging.Level))

	// Get database connection
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	goatRepo := sqlite.NewGoatRepository(database)
	vaccineRepo := sqlite.NewVaccineRepository(database)
	diseaseRepo := sqlite.NewDiseaseRepository(database)
	workerRepo := sqlite.NewWorkerRepository(database)
	equipmentRepo := sqlite.NewEquipmentRepository(database)
	sensorRepo := sqlite.NewSensorRepository(database)
	spaceRepo := sqlite.NewSpaceRepository(database)

	// Create services (primary ports implementation)
	goatService = app.NewGoatService(goatRepo, vaccineRepo, diseaseRepo, logging.Named(logger, "goats"))
	catalogService = app.NewCatalogService(vaccineRepo, diseaseRepo, logging.Named(logger, "catalog"))
	farmService = app.NewFarmService(workerRepo, equipmentRepo, sensorRepo, spaceRepo, logging.Named(logger, "farm"))
}

package repositories

import (
	"fmt"
	"os"
	"path/filepath"

	"rental/internal/config"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open returns the VehicleRepository selected by cfg.Driver. fs is only used by the JSON driver.
func Open(cfg config.StoreConfig, fs afero.Fs, logger *zap.Logger) (VehicleRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("driver", cfg.Driver))

	switch cfg.Driver {
	case config.DriverJSON:
		return NewJSONVehicleRepository(fs, cfg.Path, logger)
	case config.DriverMemory:
		return NewMemoryVehicleRepository(), nil
	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create directory for sqlite database: %w", err)
			}
		}
		db, err := gorm.Open(sqlite.Open(cfg.Path), gormConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
		}
		return NewGORMVehicleRepository(db, logger)
	case config.DriverPostgres:
		db, err := gorm.Open(postgres.Open(cfg.DSN), gormConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres database: %w", err)
		}
		return NewGORMVehicleRepository(db, logger)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Driver)
	}
}

// gormConfig silences GORM's own logger; failures are logged by the repository.
func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
}

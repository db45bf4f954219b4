package repositories

import (
	"errors"
	"fmt"

	"rental/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// vehicleRow is the table layout for vehicles. The auto-increment ID keeps insertion order.
type vehicleRow struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	UUID  string `gorm:"uniqueIndex;not null"`
	Name  string `gorm:"not null"`
	Brand string `gorm:"not null"`
	Price float64
}

func (vehicleRow) TableName() string { return "vehicles" }

func (row vehicleRow) toModel() models.Vehicle {
	return models.NewVehicleWithID(row.UUID, row.Name, row.Brand, row.Price)
}

// GORMVehicleRepository is a GORM implementation of VehicleRepository.
type GORMVehicleRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGORMVehicleRepository creates a new instance of GORMVehicleRepository and
// migrates the vehicles table.
func NewGORMVehicleRepository(db *gorm.DB, logger *zap.Logger) (*GORMVehicleRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := db.AutoMigrate(&vehicleRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate vehicles table: %w", err)
	}
	return &GORMVehicleRepository{
		db:     db,
		logger: logger,
	}, nil
}

// FindAll retrieves all vehicles from the database in insertion order.
func (r *GORMVehicleRepository) FindAll() []models.Vehicle {
	var rows []vehicleRow
	if err := r.db.Order("id asc").Find(&rows).Error; err != nil {
		r.logger.Error("Error reading vehicles", zap.Error(err))
		return []models.Vehicle{}
	}
	vehicles := make([]models.Vehicle, 0, len(rows))
	for _, row := range rows {
		vehicles = append(vehicles, row.toModel())
	}
	return vehicles
}

// FindByID retrieves a single vehicle by its UUID.
func (r *GORMVehicleRepository) FindByID(id string) (models.Vehicle, bool) {
	var row vehicleRow
	if err := r.db.First(&row, "uuid = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Error("Error reading vehicle", zap.String("uuid", id), zap.Error(err))
		}
		return models.Vehicle{}, false
	}
	return row.toModel(), true
}

// Save inserts a new vehicle. A UUID that is already stored is rejected by the unique index.
func (r *GORMVehicleRepository) Save(vehicle models.Vehicle) bool {
	row := vehicleRow{
		UUID:  vehicle.UUID,
		Name:  vehicle.Name,
		Brand: vehicle.Brand,
		Price: vehicle.Price,
	}
	if err := r.db.Create(&row).Error; err != nil {
		r.logger.Error("Error saving vehicle", zap.String("uuid", vehicle.UUID), zap.Error(err))
		return false
	}
	return true
}

// Update replaces name, brand and price of an existing vehicle.
func (r *GORMVehicleRepository) Update(vehicle models.Vehicle) bool {
	res := r.db.Model(&vehicleRow{}).Where("uuid = ?", vehicle.UUID).Updates(map[string]interface{}{
		"name":  vehicle.Name,
		"brand": vehicle.Brand,
		"price": vehicle.Price,
	})
	if res.Error != nil {
		r.logger.Error("Error updating vehicle", zap.String("uuid", vehicle.UUID), zap.Error(res.Error))
		return false
	}
	if res.RowsAffected == 0 {
		r.logger.Warn("Vehicle not found for update", zap.String("uuid", vehicle.UUID), zap.Error(ErrVehicleNotFound))
		return false
	}
	return true
}

// Delete deletes a vehicle by its UUID.
func (r *GORMVehicleRepository) Delete(id string) bool {
	res := r.db.Where("uuid = ?", id).Delete(&vehicleRow{})
	if res.Error != nil {
		r.logger.Error("Error deleting vehicle", zap.String("uuid", id), zap.Error(res.Error))
		return false
	}
	if res.RowsAffected == 0 {
		r.logger.Warn("Vehicle not found for deletion", zap.String("uuid", id), zap.Error(ErrVehicleNotFound))
		return false
	}
	return true
}

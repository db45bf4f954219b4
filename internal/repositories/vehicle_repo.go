package repositories

import (
	"errors"

	"rental/internal/models"
)

var (
	// ErrVehicleNotFound is returned internally when no vehicle has the requested UUID.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrDuplicateID is returned internally when saving a vehicle whose UUID is already stored.
	ErrDuplicateID = errors.New("vehicle UUID already exists")
)

// VehicleRepository defines the interface for vehicle data access.
//
// Failures never escape as errors: implementations log them and report an
// empty result (reads) or false (writes).
type VehicleRepository interface {
	FindAll() []models.Vehicle
	FindByID(id string) (models.Vehicle, bool)
	Save(vehicle models.Vehicle) bool
	Update(vehicle models.Vehicle) bool
	Delete(id string) bool
}

func indexOf(vehicles []models.Vehicle, id string) int {
	for i, v := range vehicles {
		if v.UUID == id {
			return i
		}
	}
	return -1
}

package repositories

import (
	"sync"

	"rental/internal/models"
)

// MemoryVehicleRepository is an in-memory implementation of VehicleRepository.
// Vehicles are kept in insertion order.
type MemoryVehicleRepository struct {
	vehicles []models.Vehicle
	mu       sync.RWMutex
}

// NewMemoryVehicleRepository creates a new instance of MemoryVehicleRepository.
func NewMemoryVehicleRepository(seed ...models.Vehicle) *MemoryVehicleRepository {
	r := &MemoryVehicleRepository{}
	for _, v := range seed {
		r.Save(v)
	}
	return r
}

// FindAll returns a copy of all vehicles.
func (r *MemoryVehicleRepository) FindAll() []models.Vehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Vehicle, len(r.vehicles))
	copy(out, r.vehicles)
	return out
}

// FindByID returns a vehicle by its UUID.
func (r *MemoryVehicleRepository) FindByID(id string) (models.Vehicle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := indexOf(r.vehicles, id); i >= 0 {
		return r.vehicles[i], true
	}
	return models.Vehicle{}, false
}

// Save appends a vehicle unless its UUID is already taken.
func (r *MemoryVehicleRepository) Save(vehicle models.Vehicle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if indexOf(r.vehicles, vehicle.UUID) >= 0 {
		return false
	}
	r.vehicles = append(r.vehicles, vehicle)
	return true
}

// Update replaces the descriptive fields of an existing vehicle.
func (r *MemoryVehicleRepository) Update(vehicle models.Vehicle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.vehicles, vehicle.UUID)
	if i < 0 {
		return false
	}
	r.vehicles[i] = r.vehicles[i].WithDetails(vehicle.Name, vehicle.Brand, vehicle.Price)
	return true
}

// Delete removes a vehicle by its UUID.
func (r *MemoryVehicleRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.vehicles, id)
	if i < 0 {
		return false
	}
	r.vehicles = append(r.vehicles[:i], r.vehicles[i+1:]...)
	return true
}

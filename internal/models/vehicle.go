package models

import "github.com/google/uuid"

// Vehicle represents a vehicle in the rental catalog.
// UUID is assigned once and never changes; use WithDetails to derive an updated copy.
type Vehicle struct {
	UUID  string  `json:"uuid"`
	Name  string  `json:"name" validate:"notblank"`
	Brand string  `json:"brand" validate:"notblank"`
	Price float64 `json:"price" validate:"gt=0"`
}

// NewVehicle creates a vehicle with a freshly generated UUID.
func NewVehicle(name, brand string, price float64) Vehicle {
	return NewVehicleWithID(uuid.New().String(), name, brand, price)
}

// NewVehicleWithID creates a vehicle for a known UUID, e.g. one loaded from storage
// or targeted by an update request.
func NewVehicleWithID(id, name, brand string, price float64) Vehicle {
	return Vehicle{
		UUID:  id,
		Name:  name,
		Brand: brand,
		Price: price,
	}
}

// WithDetails returns a copy of v carrying the given descriptive fields and v's UUID.
func (v Vehicle) WithDetails(name, brand string, price float64) Vehicle {
	v.Name = name
	v.Brand = brand
	v.Price = price
	return v
}

package services

import (
	"encoding/json"
	"fmt"
	"io"

	"rental/internal/models"
	"rental/internal/repositories"
	"rental/internal/validators"

	"go.uber.org/zap"
)

// Routing keys of the catalog events.
const (
	EventVehicleCreated = "vehicle.created"
	EventVehicleUpdated = "vehicle.updated"
	EventVehicleDeleted = "vehicle.deleted"
)

// EventPublisher sends catalog events. *rabbitmq.Client satisfies it.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// VehicleEvent is the JSON body published after a successful mutation.
type VehicleEvent struct {
	Event string  `json:"event"`
	UUID  string  `json:"uuid"`
	Name  string  `json:"name,omitempty"`
	Brand string  `json:"brand,omitempty"`
	Price float64 `json:"price,omitempty"`
}

// VehicleService validates vehicles before they reach the repository and
// reports every outcome to out.
type VehicleService struct {
	repo      repositories.VehicleRepository
	validator *validators.VehicleValidator
	publisher EventPublisher
	out       io.Writer
	logger    *zap.Logger
}

// NewVehicleService creates a new VehicleService. publisher may be nil to disable events.
func NewVehicleService(
	repo repositories.VehicleRepository,
	validator *validators.VehicleValidator,
	publisher EventPublisher,
	out io.Writer,
	logger *zap.Logger,
) *VehicleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VehicleService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		out:       out,
		logger:    logger,
	}
}

// AddVehicle validates the vehicle and saves it. Nothing is persisted if validation fails.
func (s *VehicleService) AddVehicle(vehicle *models.Vehicle) bool {
	if !s.validate(vehicle) {
		return false
	}

	if !s.repo.Save(*vehicle) {
		fmt.Fprintln(s.out, "✗ Failed to save vehicle to storage.")
		return false
	}

	fmt.Fprintln(s.out, "✓ Vehicle added successfully!")
	s.printDetails(*vehicle)
	s.publish(EventVehicleCreated, *vehicle)
	return true
}

// UpdateVehicle validates the vehicle and replaces the stored fields of the vehicle with the same UUID.
func (s *VehicleService) UpdateVehicle(vehicle *models.Vehicle) bool {
	if !s.validate(vehicle) {
		return false
	}

	if !s.repo.Update(*vehicle) {
		fmt.Fprintln(s.out, "✗ Failed to update vehicle in storage.")
		return false
	}

	fmt.Fprintln(s.out, "✓ Vehicle updated successfully!")
	s.printDetails(*vehicle)
	s.publish(EventVehicleUpdated, *vehicle)
	return true
}

// ListVehicles prints every stored vehicle, numbered from 1 in store order.
func (s *VehicleService) ListVehicles() []models.Vehicle {
	vehicles := s.repo.FindAll()
	if len(vehicles) == 0 {
		fmt.Fprintln(s.out, "No vehicles found.")
		return vehicles
	}

	for i, v := range vehicles {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, v.Name)
		fmt.Fprintf(s.out, "   UUID: %s\n", v.UUID)
		fmt.Fprintf(s.out, "   Brand: %s\n", v.Brand)
		fmt.Fprintf(s.out, "   Price: $%.2f\n", v.Price)
	}
	return vehicles
}

// DeleteVehicleByID removes the vehicle and reports whether it existed.
func (s *VehicleService) DeleteVehicleByID(id string) bool {
	if !s.repo.Delete(id) {
		fmt.Fprintf(s.out, "✗ Vehicle with ID %s not found.\n", id)
		return false
	}

	fmt.Fprintln(s.out, "✓ Vehicle deleted successfully!")
	s.publish(EventVehicleDeleted, models.Vehicle{UUID: id})
	return true
}

func (s *VehicleService) validate(vehicle *models.Vehicle) bool {
	result := s.validator.Validate(vehicle)
	if result.IsValid() {
		return true
	}

	fmt.Fprintln(s.out, "Validation failed:")
	for _, msg := range result.Errors() {
		fmt.Fprintf(s.out, "  - %s\n", msg)
	}
	s.logger.Debug("Vehicle rejected", zap.String("errors", result.ErrorMessage()))
	return false
}

func (s *VehicleService) printDetails(v models.Vehicle) {
	fmt.Fprintf(s.out, "  Name: %s\n", v.Name)
	fmt.Fprintf(s.out, "  Brand: %s\n", v.Brand)
	fmt.Fprintf(s.out, "  Price: $%.2f\n", v.Price)
}

// publish never changes the outcome of the operation that triggered it.
func (s *VehicleService) publish(event string, v models.Vehicle) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(VehicleEvent{
		Event: event,
		UUID:  v.UUID,
		Name:  v.Name,
		Brand: v.Brand,
		Price: v.Price,
	})
	if err != nil {
		s.logger.Warn("Failed to marshal vehicle event", zap.String("event", event), zap.Error(err))
		return
	}
	if err := s.publisher.Publish(event, body); err != nil {
		s.logger.Warn("Failed to publish vehicle event",
			zap.String("event", event),
			zap.String("uuid", v.UUID),
			zap.Error(err))
		return
	}
	s.logger.Debug("Published vehicle event", zap.String("event", event), zap.String("uuid", v.UUID))
}

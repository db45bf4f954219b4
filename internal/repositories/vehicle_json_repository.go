package repositories

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"rental/internal/models"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// emptyCollection is written when the backing file does not exist yet.
var emptyCollection = []byte("[]\n")

// JSONVehicleRepository is a VehicleRepository backed by a single JSON file.
// Every mutation reads the whole file, modifies the slice and rewrites the file.
// It does not lock; concurrent writers race and the last rewrite wins.
type JSONVehicleRepository struct {
	fs     afero.Fs
	path   string
	logger *zap.Logger
}

// NewJSONVehicleRepository creates a repository for the file at path, creating the
// file (and its parent directories) holding an empty array if it is missing.
func NewJSONVehicleRepository(fs afero.Fs, path string, logger *zap.Logger) (*JSONVehicleRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &JSONVehicleRepository{
		fs:     fs,
		path:   path,
		logger: logger.With(zap.String("store", path)),
	}
	if err := r.ensureFile(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JSONVehicleRepository) ensureFile() error {
	exists, err := afero.Exists(r.fs, r.path)
	if err != nil {
		return fmt.Errorf("failed to stat vehicle store %s: %w", r.path, err)
	}
	if exists {
		return nil
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := r.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory for vehicle store: %w", err)
		}
	}
	if err := afero.WriteFile(r.fs, r.path, emptyCollection, 0o644); err != nil {
		return fmt.Errorf("failed to create vehicle store %s: %w", r.path, err)
	}
	return nil
}

// FindAll returns every stored vehicle in file order. A missing, empty or
// unreadable file yields an empty slice.
func (r *JSONVehicleRepository) FindAll() []models.Vehicle {
	vehicles, err := r.load()
	if err != nil {
		r.logger.Error("Error reading vehicles", zap.Error(err))
		return []models.Vehicle{}
	}
	return vehicles
}

// FindByID returns the first vehicle with the given UUID.
func (r *JSONVehicleRepository) FindByID(id string) (models.Vehicle, bool) {
	vehicles := r.FindAll()
	if i := indexOf(vehicles, id); i >= 0 {
		return vehicles[i], true
	}
	return models.Vehicle{}, false
}

// Save appends the vehicle and rewrites the file.
func (r *JSONVehicleRepository) Save(vehicle models.Vehicle) bool {
	vehicles, err := r.load()
	if err != nil {
		r.logger.Error("Error saving vehicle", zap.String("uuid", vehicle.UUID), zap.Error(err))
		return false
	}
	if indexOf(vehicles, vehicle.UUID) >= 0 {
		r.logger.Error("Error saving vehicle", zap.String("uuid", vehicle.UUID), zap.Error(ErrDuplicateID))
		return false
	}
	if err := r.write(append(vehicles, vehicle)); err != nil {
		r.logger.Error("Error saving vehicle", zap.String("uuid", vehicle.UUID), zap.Error(err))
		return false
	}
	r.logger.Debug("Saved vehicle", zap.String("uuid", vehicle.UUID))
	return true
}

// Update replaces name, brand and price of the stored vehicle with the same UUID.
func (r *JSONVehicleRepository) Update(vehicle models.Vehicle) bool {
	vehicles, err := r.load()
	if err != nil {
		r.logger.Error("Error updating vehicle", zap.String("uuid", vehicle.UUID), zap.Error(err))
		return false
	}
	i := indexOf(vehicles, vehicle.UUID)
	if i < 0 {
		r.logger.Warn("Vehicle not found for update", zap.String("uuid", vehicle.UUID), zap.Error(ErrVehicleNotFound))
		return false
	}
	vehicles[i] = vehicles[i].WithDetails(vehicle.Name, vehicle.Brand, vehicle.Price)
	if err := r.write(vehicles); err != nil {
		r.logger.Error("Error updating vehicle", zap.String("uuid", vehicle.UUID), zap.Error(err))
		return false
	}
	r.logger.Debug("Updated vehicle", zap.String("uuid", vehicle.UUID))
	return true
}

// Delete removes the vehicle with the given UUID. The file is only rewritten
// when a vehicle was actually removed.
func (r *JSONVehicleRepository) Delete(id string) bool {
	vehicles, err := r.load()
	if err != nil {
		r.logger.Error("Error deleting vehicle", zap.String("uuid", id), zap.Error(err))
		return false
	}
	i := indexOf(vehicles, id)
	if i < 0 {
		r.logger.Warn("Vehicle not found for deletion", zap.String("uuid", id), zap.Error(ErrVehicleNotFound))
		return false
	}
	vehicles = append(vehicles[:i], vehicles[i+1:]...)
	if err := r.write(vehicles); err != nil {
		r.logger.Error("Error deleting vehicle", zap.String("uuid", id), zap.Error(err))
		return false
	}
	r.logger.Debug("Deleted vehicle", zap.String("uuid", id))
	return true
}

func (r *JSONVehicleRepository) load() ([]models.Vehicle, error) {
	exists, err := afero.Exists(r.fs, r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", r.path, err)
	}
	if !exists {
		return []models.Vehicle{}, nil
	}
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Vehicle{}, nil
	}
	var vehicles []models.Vehicle
	if err := json.Unmarshal(data, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.path, err)
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	return vehicles, nil
}

// write replaces the file contents by writing a temp file next to it and renaming it into place.
func (r *JSONVehicleRepository) write(vehicles []models.Vehicle) error {
	data, err := json.MarshalIndent(vehicles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode vehicles: %w", err)
	}
	data = append(data, '\n')

	tmp, err := afero.TempFile(r.fs, filepath.Dir(r.path), ".vehicles-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = r.fs.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	// temp files are created 0600
	if err := r.fs.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := r.fs.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", r.path, err)
	}
	return nil
}

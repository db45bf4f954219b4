package repositories

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"rental/internal/models"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const storePath = "/data/vehicles.json"

func newJSONRepo(t *testing.T) (*JSONVehicleRepository, afero.Fs, *observer.ObservedLogs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	core, logs := observer.New(zapcore.DebugLevel)
	repo, err := NewJSONVehicleRepository(fs, storePath, zap.New(core))
	require.NoError(t, err)
	return repo, fs, logs
}

func readStore(t *testing.T, fs afero.Fs) []byte {
	t.Helper()
	data, err := afero.ReadFile(fs, storePath)
	require.NoError(t, err)
	return data
}

func TestNewJSONVehicleRepository_CreatesEmptyFile(t *testing.T) {
	repo, fs, _ := newJSONRepo(t)

	assert.Equal(t, "[]\n", string(readStore(t, fs)))
	assert.Empty(t, repo.FindAll())
}

func TestNewJSONVehicleRepository_KeepsExistingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	existing := `[{"uuid":"a","name":"Civic","brand":"Honda","price":24000}]`
	require.NoError(t, afero.WriteFile(fs, storePath, []byte(existing), 0o644))

	repo, err := NewJSONVehicleRepository(fs, storePath, nil)
	require.NoError(t, err)

	assert.Equal(t, []models.Vehicle{{UUID: "a", Name: "Civic", Brand: "Honda", Price: 24000}}, repo.FindAll())
}

func TestJSONVehicleRepository_SaveAndFind(t *testing.T) {
	repo, fs, _ := newJSONRepo(t)
	civic := models.NewVehicle("Civic", "Honda", 24000)
	corolla := models.NewVehicle("Corolla", "Toyota", 21000)

	require.True(t, repo.Save(civic))
	require.True(t, repo.Save(corolla))

	assert.Equal(t, []models.Vehicle{civic, corolla}, repo.FindAll())

	found, ok := repo.FindByID(corolla.UUID)
	assert.True(t, ok)
	assert.Equal(t, corolla, found)

	_, ok = repo.FindByID("missing")
	assert.False(t, ok)

	// pretty printed, wire keys
	data := string(readStore(t, fs))
	assert.Contains(t, data, "\n  {\n    \"uuid\": \""+civic.UUID+"\",")
	assert.Contains(t, data, `"brand": "Honda"`)
}

func TestJSONVehicleRepository_SaveRejectsDuplicateUUID(t *testing.T) {
	repo, fs, logs := newJSONRepo(t)
	civic := models.NewVehicle("Civic", "Honda", 24000)
	require.True(t, repo.Save(civic))
	before := readStore(t, fs)

	assert.False(t, repo.Save(civic.WithDetails("Other", "Other", 1)))
	assert.Equal(t, before, readStore(t, fs))
	assert.Equal(t, 1, logs.FilterMessage("Error saving vehicle").Len())
}

func TestJSONVehicleRepository_Update(t *testing.T) {
	repo, fs, _ := newJSONRepo(t)
	civic := models.NewVehicle("Civic", "Honda", 24000)
	corolla := models.NewVehicle("Corolla", "Toyota", 21000)
	require.True(t, repo.Save(civic))
	require.True(t, repo.Save(corolla))

	assert.True(t, repo.Update(models.NewVehicleWithID(civic.UUID, "Accord", "Honda", 30000)))

	all := repo.FindAll()
	require.Len(t, all, 2)
	assert.Equal(t, models.Vehicle{UUID: civic.UUID, Name: "Accord", Brand: "Honda", Price: 30000}, all[0])
	assert.Equal(t, corolla, all[1])

	before := readStore(t, fs)
	assert.False(t, repo.Update(models.NewVehicleWithID("missing", "X", "Y", 1)))
	assert.Equal(t, before, readStore(t, fs))
}

func TestJSONVehicleRepository_Delete(t *testing.T) {
	repo, fs, logs := newJSONRepo(t)
	a := models.NewVehicle("Civic", "Honda", 24000)
	b := models.NewVehicle("Corolla", "Toyota", 21000)
	c := models.NewVehicle("Model 3", "Tesla", 40000)
	for _, v := range []models.Vehicle{a, b, c} {
		require.True(t, repo.Save(v))
	}

	assert.True(t, repo.Delete(b.UUID))
	assert.Equal(t, []models.Vehicle{a, c}, repo.FindAll())

	before := readStore(t, fs)
	assert.False(t, repo.Delete(b.UUID))
	assert.Equal(t, before, readStore(t, fs))
	assert.Equal(t, 1, logs.FilterMessage("Vehicle not found for deletion").Len())
}

func TestJSONVehicleRepository_FindAllIsIdempotent(t *testing.T) {
	repo, _, _ := newJSONRepo(t)
	require.True(t, repo.Save(models.NewVehicle("Civic", "Honda", 24000)))
	require.True(t, repo.Save(models.NewVehicle("Corolla", "Toyota", 21000)))

	assert.Equal(t, repo.FindAll(), repo.FindAll())
}

func TestJSONVehicleRepository_RoundTrip(t *testing.T) {
	repo, fs, _ := newJSONRepo(t)
	require.True(t, repo.Save(models.NewVehicle("Civic", "Honda", 24000.5)))
	require.True(t, repo.Save(models.NewVehicle("Corolla", "Toyota", 21000)))
	all := repo.FindAll()

	data, err := json.MarshalIndent(all, "", "  ")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "/copy.json", data, 0o644))

	copyRepo, err := NewJSONVehicleRepository(fs, "/copy.json", nil)
	require.NoError(t, err)
	assert.Equal(t, all, copyRepo.FindAll())
}

func TestJSONVehicleRepository_EmptyOrNullFileReadsEmpty(t *testing.T) {
	for _, content := range []string{"", "  \n", "null"} {
		repo, fs, logs := newJSONRepo(t)
		require.NoError(t, afero.WriteFile(fs, storePath, []byte(content), 0o644))

		assert.Empty(t, repo.FindAll(), "content %q", content)
		assert.Zero(t, logs.Len(), "content %q", content)
	}
}

func TestJSONVehicleRepository_MalformedFile(t *testing.T) {
	repo, fs, logs := newJSONRepo(t)
	require.NoError(t, afero.WriteFile(fs, storePath, []byte("{not json"), 0o644))

	assert.Empty(t, repo.FindAll())
	assert.Equal(t, 1, logs.FilterMessage("Error reading vehicles").Len())

	assert.False(t, repo.Save(models.NewVehicle("Civic", "Honda", 24000)))
	assert.Equal(t, "{not json", string(readStore(t, fs)))
}

func TestJSONVehicleRepository_MissingFileAfterCreation(t *testing.T) {
	repo, fs, _ := newJSONRepo(t)
	require.NoError(t, fs.Remove(storePath))

	assert.Empty(t, repo.FindAll())
	assert.True(t, repo.Save(models.NewVehicle("Civic", "Honda", 24000)))
	assert.Len(t, repo.FindAll(), 1)
}

func TestJSONVehicleRepository_ReadOnlyFs(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, storePath, []byte("[]"), 0o644))
	core, logs := observer.New(zapcore.DebugLevel)

	repo, err := NewJSONVehicleRepository(afero.NewReadOnlyFs(base), storePath, zap.New(core))
	require.NoError(t, err)

	assert.False(t, repo.Save(models.NewVehicle("Civic", "Honda", 24000)))
	assert.Equal(t, 1, logs.FilterMessage("Error saving vehicle").Len())
	assert.Empty(t, repo.FindAll())
}

func TestJSONVehicleRepository_OsFs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "vehicles.json")

	repo, err := NewJSONVehicleRepository(afero.NewOsFs(), path, nil)
	require.NoError(t, err)
	require.True(t, repo.Save(models.NewVehicle("Civic", "Honda", 24000)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var stored []models.Vehicle
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Len(t, stored, 1)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

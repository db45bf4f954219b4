package validators_test

import (
	"testing"

	"rental/internal/models"
	"rental/internal/validators"

	"github.com/stretchr/testify/assert"
)

func TestVehicleValidator_Validate(t *testing.T) {
	v := validators.NewVehicleValidator()

	tests := []struct {
		name    string
		vehicle *models.Vehicle
		want    []string
	}{
		{
			name:    "valid",
			vehicle: &models.Vehicle{UUID: "1", Name: "Civic", Brand: "Honda", Price: 24000},
			want:    []string{},
		},
		{
			name:    "nil vehicle",
			vehicle: nil,
			want:    []string{validators.MsgVehicleNil},
		},
		{
			name:    "blank name",
			vehicle: &models.Vehicle{Name: "   ", Brand: "Honda", Price: 1},
			want:    []string{validators.MsgNameEmpty},
		},
		{
			name:    "zero price",
			vehicle: &models.Vehicle{Name: "Civic", Brand: "Honda", Price: 0},
			want:    []string{validators.MsgPriceNotPos},
		},
		{
			name:    "negative price",
			vehicle: &models.Vehicle{Name: "Civic", Brand: "Honda", Price: -5},
			want:    []string{validators.MsgPriceNotPos},
		},
		{
			name:    "everything wrong keeps rule order",
			vehicle: &models.Vehicle{Name: "", Brand: "\t", Price: -1},
			want:    []string{validators.MsgNameEmpty, validators.MsgBrandEmpty, validators.MsgPriceNotPos},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(tt.vehicle)
			assert.Equal(t, tt.want, result.Errors())
			assert.Equal(t, len(tt.want) == 0, result.IsValid())
		})
	}
}

func TestValidationResult_ErrorMessage(t *testing.T) {
	result := validators.NewVehicleValidator().Validate(&models.Vehicle{Price: 10})

	assert.Equal(t, validators.MsgNameEmpty+", "+validators.MsgBrandEmpty, result.ErrorMessage())
}

func TestValidationResult_ErrorsIsCopy(t *testing.T) {
	result := validators.NewVehicleValidator().Validate(nil)

	errs := result.Errors()
	errs[0] = "changed"

	assert.Equal(t, []string{validators.MsgVehicleNil}, result.Errors())
}

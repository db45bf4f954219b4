package validators

import (
	"errors"
	"fmt"
	"strings"

	"rental/internal/models"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

// Messages reported by VehicleValidator, in the order the rules are checked.
const (
	MsgVehicleNil   = "Vehicle cannot be null."
	MsgNameEmpty    = "Vehicle name cannot be empty."
	MsgBrandEmpty   = "Vehicle brand cannot be empty."
	MsgPriceNotPos  = "Vehicle price must be greater than zero."
	msgInvalidField = "Vehicle field %s is invalid."
)

var fieldMessages = map[string]string{
	"Name":  MsgNameEmpty,
	"Brand": MsgBrandEmpty,
	"Price": MsgPriceNotPos,
}

// ValidationResult holds the violations found for a single vehicle.
type ValidationResult struct {
	errors []string
}

func (r *ValidationResult) addError(msg string) {
	r.errors = append(r.errors, msg)
}

// IsValid reports whether no rule was violated.
func (r ValidationResult) IsValid() bool {
	return len(r.errors) == 0
}

// Errors returns a copy of the violation messages.
func (r ValidationResult) Errors() []string {
	out := make([]string, len(r.errors))
	copy(out, r.errors)
	return out
}

// ErrorMessage joins all violations into one line.
func (r ValidationResult) ErrorMessage() string {
	return strings.Join(r.errors, ", ")
}

// VehicleValidator checks vehicles against the catalog rules using struct tags on models.Vehicle.
type VehicleValidator struct {
	validate *validator.Validate
}

// NewVehicleValidator creates a VehicleValidator.
func NewVehicleValidator() *VehicleValidator {
	v := validator.New()
	// notblank is not registered by default; it rejects strings that are empty after trimming.
	_ = v.RegisterValidation("notblank", nonstandard.NotBlank)
	return &VehicleValidator{validate: v}
}

// Validate returns every rule the vehicle violates. A nil vehicle yields a single error.
func (vv *VehicleValidator) Validate(vehicle *models.Vehicle) ValidationResult {
	var result ValidationResult

	if vehicle == nil {
		result.addError(MsgVehicleNil)
		return result
	}

	err := vv.validate.Struct(vehicle)
	if err == nil {
		return result
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		result.addError(err.Error())
		return result
	}

	// ValidationErrors follow struct field order: name, brand, price.
	for _, fe := range fieldErrs {
		if msg, ok := fieldMessages[fe.Field()]; ok {
			result.addError(msg)
			continue
		}
		result.addError(fmt.Sprintf(msgInvalidField, fe.Field()))
	}
	return result
}

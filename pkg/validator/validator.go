package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
)

// CustomValidator implements echo.Validator for the MeetDash request DTOs
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator with the domain validations registered.
// Required-struct mode makes `required` honor IsZero on the DateTime
// wrappers instead of treating every struct value as present.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("connector_status", validConnectorStatus)
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// validConnectorStatus accepts the connector lifecycle states
func validConnectorStatus(fl validator.FieldLevel) bool {
	switch entities.ConnectorStatus(fl.Field().String()) {
	case entities.ConnectorStatusActive, entities.ConnectorStatusInactive, entities.ConnectorStatusError:
		return true
	}
	return false
}

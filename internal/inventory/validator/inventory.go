package validator

import (
	"errors"
	"fmt"
	"strings"

	"suntravels/pkg/logger"
	"suntravels/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// InventoryValidator validates hotels, contracts and room types.
type InventoryValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewInventoryValidator(log *logger.Logger) *InventoryValidator {
	return &InventoryValidator{
		validate: validator.New(),
		logger:   log,
	}
}

func (v *InventoryValidator) ValidateHotel(hotel *model.Hotel) error {
	return v.structErr(hotel)
}

func (v *InventoryValidator) ValidateHotelUpdate(update *model.HotelUpdate) error {
	return v.structErr(update)
}

func (v *InventoryValidator) ValidateContract(contract *model.Contract) error {
	return v.structErr(contract)
}

func (v *InventoryValidator) ValidateContractUpdate(update *model.ContractUpdate) error {
	if err := v.structErr(update); err != nil {
		return err
	}

	if update.StartDate != nil && update.EndDate != nil && update.EndDate.Before(*update.StartDate) {
		return ValidationErrors{
			ValidationError{
				Field:   "EndDate",
				Message: "end_date must not be before start_date",
			},
		}
	}

	return nil
}

func (v *InventoryValidator) ValidateRoomType(roomType *model.RoomType) error {
	return v.structErr(roomType)
}

func (v *InventoryValidator) ValidateRoomTypeUpdate(update *model.RoomTypeUpdate) error {
	return v.structErr(update)
}

func (v *InventoryValidator) structErr(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *InventoryValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
		case "gtefield":
			message = fmt.Sprintf("%s must not be before %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}

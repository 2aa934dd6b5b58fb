package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

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

type SearchValidator struct {
	validate        *validator.Validate
	logger          *logger.Logger
	maxRoomRequests int
}

func NewSearchValidator(log *logger.Logger, maxRoomRequests int) *SearchValidator {
	return &SearchValidator{
		validate:        validator.New(),
		logger:          log,
		maxRoomRequests: maxRoomRequests,
	}
}

// IsSearchable reports whether the request describes a stay at all. Requests
// without a check-in date, a positive night count, or any room lines yield
// an empty result rather than an error.
func (v *SearchValidator) IsSearchable(req *model.SearchRequest) bool {
	if req == nil || req.CheckInDate.IsZero() {
		return false
	}
	if req.NumberOfNights <= 0 {
		return false
	}
	return len(req.RoomRequests) > 0
}

// ValidateSearch checks a searchable request for rejectable input. The
// caller is expected to have consulted IsSearchable first.
func (v *SearchValidator) ValidateSearch(req *model.SearchRequest) error {
	if len(req.RoomRequests) > v.maxRoomRequests {
		return ValidationErrors{
			ValidationError{
				Field:   "RoomRequests",
				Message: fmt.Sprintf("at most %d room requests allowed, got %d", v.maxRoomRequests, len(req.RoomRequests)),
			},
		}
	}

	for i, rr := range req.RoomRequests {
		if err := v.validate.Struct(rr); err != nil {
			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				return v.translateValidationErrors(fmt.Sprintf("RoomRequests[%d]", i), validationErrs)
			}
			return err
		}
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if req.CheckInDate.Before(today) {
		return ValidationErrors{
			ValidationError{
				Field:   "CheckInDate",
				Message: "check_in_date cannot be in the past",
			},
		}
	}

	return nil
}

// ValidateReportRange bounds the availability report window.
func (v *SearchValidator) ValidateReportRange(from, to time.Time, maxRangeDays int) error {
	if from.IsZero() || to.IsZero() {
		return ValidationErrors{
			ValidationError{
				Field:   "from_date",
				Message: "from_date and to_date are required",
			},
		}
	}

	if to.Sub(from) > time.Duration(maxRangeDays)*24*time.Hour {
		return ValidationErrors{
			ValidationError{
				Field:   "to_date",
				Message: fmt.Sprintf("report range must not exceed %d days", maxRangeDays),
			},
		}
	}

	return nil
}

func (v *SearchValidator) translateValidationErrors(prefix string, errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   fmt.Sprintf("%s.%s", prefix, err.Field()),
			Message: message,
		})
	}

	return validationErrors
}

package validator

import (
	"log"

	"careswipe_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules registers the enum validation tags used by the DTOs.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup misconfiguration.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-swipe-direction", validateSwipeDirection)
	mustRegister("is-job-status", validateJobStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is handled by 'required'
	}
	switch models.UserRole(value) {
	case models.UserRoleFamily, models.UserRoleCaregiver, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateSwipeDirection(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidSwipeDirection(models.SwipeDirection(value))
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.JobStatus(value) {
	case models.JobStatusDraft, models.JobStatusActive, models.JobStatusClosed:
		return true
	default:
		return false
	}
}

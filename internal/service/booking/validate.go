package booking

import (
	"fmt"
	"regexp"
	"time"

	"github.com/skyways/skybook/internal/domain"
)

var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// validatePassengers re-validates the draft the UI already checked:
// non-empty list, at least one adult, infant count within the adult
// count, and per-passenger required fields. The returned error names
// the first offending field.
func validatePassengers(passengers []domain.Passenger, now time.Time) error {
	if len(passengers) == 0 {
		return domain.NewValidationError("passengers", "at least one passenger is required")
	}

	adults, infants := 0, 0
	for i, p := range passengers {
		n := i + 1
		switch p.Type {
		case domain.PassengerAdult:
			adults++
		case domain.PassengerChild:
		case domain.PassengerInfant:
			infants++
		default:
			return domain.NewValidationError(field(n, "type"), "must be adult, child or infant")
		}
		if p.FirstName == "" {
			return domain.NewValidationError(field(n, "first name"), "is required")
		}
		if p.LastName == "" {
			return domain.NewValidationError(field(n, "last name"), "is required")
		}
		if p.DateOfBirth.IsZero() {
			return domain.NewValidationError(field(n, "date of birth"), "is required")
		}
		if p.DateOfBirth.After(now) {
			return domain.NewValidationError(field(n, "date of birth"), "must not be in the future")
		}
		if p.Passport == "" {
			return domain.NewValidationError(field(n, "passport"), "is required")
		}
		if p.Nationality == "" {
			return domain.NewValidationError(field(n, "nationality"), "is required")
		}
	}

	if adults == 0 {
		return domain.NewValidationError("passengers", "at least one adult is required")
	}
	if infants > adults {
		return domain.NewValidationError("passengers", "each infant must travel with an adult")
	}
	return nil
}

func validateContact(email, phone string) error {
	if email == "" {
		return domain.NewValidationError("contact email", "is required")
	}
	if !emailShape.MatchString(email) {
		return domain.NewValidationError("contact email", "is not a valid email address")
	}
	if phone == "" {
		return domain.NewValidationError("contact phone", "is required")
	}
	return nil
}

func field(n int, name string) string {
	return fmt.Sprintf("passenger %d %s", n, name)
}

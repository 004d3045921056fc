package validator

import (
	"fmt"
	"time"
)

// RequiredDate validates that a date was supplied.
func RequiredDate(field string, value *time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value != nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "date is required",
			Code:    "validation.date_required",
		},
	}
}

// AgeAt returns the number of whole years between birthdate and now.
// The year difference is decremented when now's month/day falls before the
// birthday's month/day. Each time's calendar fields are read in its own location.
func AgeAt(birthdate, now time.Time) int {
	age := now.Year() - birthdate.Year()

	// Adjust if birthday hasn't occurred this year
	if now.Month() < birthdate.Month() ||
		(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		age--
	}

	return age
}

// MinAgeAt validates that the person born on birthdate is at least minAge
// years old at the reference instant now. A nil birthdate fails.
func MinAgeAt(field string, birthdate *time.Time, minAge int, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			if birthdate == nil {
				return false
			}
			return AgeAt(*birthdate, now) >= minAge
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("minimum age of %d years required", minAge),
			Code:    "validation.min_age",
		},
	}
}

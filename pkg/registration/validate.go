package registration

import (
	"time"

	"github.com/dmitrymomot/signup/pkg/sanitizer"
	"github.com/dmitrymomot/signup/pkg/validator"
)

// MinimumAge is the youngest age, in whole years, accepted at registration.
const MinimumAge = 18

// Messages reported per field.
const (
	MsgFirstNameInvalid  = "First name is invalid."
	MsgLastNameInvalid   = "Last name is invalid."
	MsgEmailInvalid      = "Email address is invalid."
	MsgPasswordRequired  = "Password is required."
	MsgCityInvalid       = "City is invalid."
	MsgPostalCodeInvalid = "Postal code must contain exactly 5 digits."
	MsgBirthDateInvalid  = "You must be 18 years or older to register."
)

// Validate checks every field of r and reports the result. now is the
// reference instant for the age check. A missing birth date and an under-age
// birth date both yield MsgBirthDateInvalid.
func Validate(r Record, now time.Time) Report {
	rules := []validator.Rule{
		validator.LatinLetters(FieldFirstName, sanitizer.Trim(r.FirstName)).WithMessage(MsgFirstNameInvalid),
		validator.LatinLetters(FieldLastName, sanitizer.Trim(r.LastName)).WithMessage(MsgLastNameInvalid),
		validator.LooseEmail(FieldEmail, sanitizer.Trim(r.Email)).WithMessage(MsgEmailInvalid),
		validator.RequiredString(FieldPassword, r.Password).WithMessage(MsgPasswordRequired),
		validator.LatinLetters(FieldCity, sanitizer.Trim(r.City)).WithMessage(MsgCityInvalid),
		validator.ExactDigits(FieldPostalCode, sanitizer.Trim(r.PostalCode), 5).WithMessage(MsgPostalCodeInvalid),
		validator.RequiredDate(FieldBirthDate, r.BirthDate).WithMessage(MsgBirthDateInvalid),
		validator.MinAgeAt(FieldBirthDate, r.BirthDate, MinimumAge, now).WithMessage(MsgBirthDateInvalid),
	}

	// Apply only ever returns ValidationErrors or nil.
	verrs := validator.ExtractValidationErrors(validator.Apply(rules...))

	errs := FieldErrors{
		FirstName:  verrs.First(FieldFirstName),
		LastName:   verrs.First(FieldLastName),
		Email:      verrs.First(FieldEmail),
		Password:   verrs.First(FieldPassword),
		City:       verrs.First(FieldCity),
		PostalCode: verrs.First(FieldPostalCode),
		BirthDate:  verrs.First(FieldBirthDate),
	}

	return Report{
		Valid:  verrs.IsEmpty(),
		Errors: errs,
	}
}

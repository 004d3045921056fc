package signup

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrymomot/signup/pkg/registration"
	"github.com/dmitrymomot/signup/pkg/sanitizer"
)

// DateLayout is the wire format of the birth date field.
const DateLayout = "2006-01-02"

// Older clients post the French field names.
var formAliases = map[string][]string{
	registration.FieldCity:       {"ville"},
	registration.FieldPostalCode: {"codePostal"},
	registration.FieldBirthDate:  {"selectedDate"},
}

// DecodeForm builds a Record from submitted form values. Text values are
// NFC-normalized but otherwise kept as typed; trimming is left to the
// validator. An empty birth date decodes to nil. A birth date in neither
// DateLayout nor RFC 3339 returns an error wrapping ErrMalformedField.
func DecodeForm(values url.Values) (registration.Record, error) {
	rec := registration.Record{
		FirstName:  sanitizer.NormalizeUnicode(formValue(values, registration.FieldFirstName)),
		LastName:   sanitizer.NormalizeUnicode(formValue(values, registration.FieldLastName)),
		Email:      sanitizer.NormalizeUnicode(formValue(values, registration.FieldEmail)),
		Password:   formValue(values, registration.FieldPassword),
		City:       sanitizer.NormalizeUnicode(formValue(values, registration.FieldCity)),
		PostalCode: sanitizer.NormalizeUnicode(formValue(values, registration.FieldPostalCode)),
	}

	raw := sanitizer.Trim(formValue(values, registration.FieldBirthDate))
	if raw == "" {
		return rec, nil
	}

	birth, err := parseDate(raw)
	if err != nil {
		return registration.Record{}, fmt.Errorf("%w: %s: %q", ErrMalformedField, registration.FieldBirthDate, raw)
	}
	rec.BirthDate = &birth

	return rec, nil
}

// EncodeForm is the inverse of DecodeForm, using the canonical field names.
func EncodeForm(rec registration.Record) url.Values {
	values := url.Values{}
	values.Set(registration.FieldFirstName, rec.FirstName)
	values.Set(registration.FieldLastName, rec.LastName)
	values.Set(registration.FieldEmail, rec.Email)
	values.Set(registration.FieldPassword, rec.Password)
	values.Set(registration.FieldCity, rec.City)
	values.Set(registration.FieldPostalCode, rec.PostalCode)
	if rec.BirthDate != nil {
		values.Set(registration.FieldBirthDate, rec.BirthDate.Format(DateLayout))
	}
	return values
}

func formValue(values url.Values, field string) string {
	if values.Has(field) {
		return values.Get(field)
	}
	for _, alias := range formAliases[field] {
		if values.Has(alias) {
			return values.Get(alias)
		}
	}
	return ""
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, raw, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

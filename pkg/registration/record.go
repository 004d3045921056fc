package registration

import "time"

// Field names as used by form layers and in FieldErrors.Map.
const (
	FieldFirstName  = "firstName"
	FieldLastName   = "lastName"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldCity       = "city"
	FieldPostalCode = "postalCode"
	FieldBirthDate  = "birthDate"
)

// Fields lists every record field in form order.
var Fields = []string{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPassword,
	FieldCity,
	FieldPostalCode,
	FieldBirthDate,
}

// Record is the set of values submitted for one registration attempt.
type Record struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	City       string
	PostalCode string
	// BirthDate is nil when no date was picked.
	BirthDate *time.Time
}

// Complete reports whether every field holds a value. Form layers use it to
// enable the submit control; it does not imply the record is valid.
func Complete(r Record) bool {
	return r.FirstName != "" &&
		r.LastName != "" &&
		r.Email != "" &&
		r.Password != "" &&
		r.City != "" &&
		r.PostalCode != "" &&
		r.BirthDate != nil
}

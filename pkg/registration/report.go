package registration

// FieldErrors holds one message per record field. An empty string means the
// field passed.
type FieldErrors struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	BirthDate  string `json:"birthDate"`
}

// Report is the outcome of Validate.
type Report struct {
	// Valid is true iff every entry in Errors is empty.
	Valid  bool        `json:"valid"`
	Errors FieldErrors `json:"errors"`
}

// Get returns the message for the named field, or "" for unknown names.
func (e FieldErrors) Get(field string) string {
	switch field {
	case FieldFirstName:
		return e.FirstName
	case FieldLastName:
		return e.LastName
	case FieldEmail:
		return e.Email
	case FieldPassword:
		return e.Password
	case FieldCity:
		return e.City
	case FieldPostalCode:
		return e.PostalCode
	case FieldBirthDate:
		return e.BirthDate
	}
	return ""
}

// Map returns all seven entries keyed by field name, including empty ones.
func (e FieldErrors) Map() map[string]string {
	m := make(map[string]string, len(Fields))
	for _, f := range Fields {
		m[f] = e.Get(f)
	}
	return m
}

// Fields returns the names of failing fields in form order.
func (e FieldErrors) Fields() []string {
	var failed []string
	for _, f := range Fields {
		if e.Get(f) != "" {
			failed = append(failed, f)
		}
	}
	return failed
}

// Empty reports whether no field has a message.
func (e FieldErrors) Empty() bool {
	return e == FieldErrors{}
}
